package routes

import (
	"context"
	"log"
	"strconv"

	_ "bill_ledger/docs"
	"bill_ledger/internal/adapter/contract"
	"bill_ledger/internal/adapter/http/handlers"
	"bill_ledger/internal/adapter/http/middleware"
	"bill_ledger/internal/adapter/persistence/worldstate"
	"bill_ledger/internal/config"
	"bill_ledger/internal/infrastructure/payments"
	"bill_ledger/internal/usecase"
	"bill_ledger/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Bill       *handlers.BillHandler
	Settlement *handlers.SettlementHandler
	Contract   *handlers.ContractHandler
}

// Run wires the world state, the use cases and the HTTP server, and blocks
// serving on cfg.HTTP.Port.
func Run(cfg config.Config) {
	provider := worldstate.MustNewFromConfig(context.Background(), cfg.WorldState)
	defer provider.Close()

	router := NewRouter(buildHandlers(cfg, provider))

	err := router.Run(":" + strconv.Itoa(cfg.HTTP.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func buildHandlers(cfg config.Config, provider interfaces.IWorldStateProvider) Handlers {
	ledger := usecase.NewBillLedger()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	billUseCase := usecase.NewBillUseCase(provider, ledger)
	settlementUseCase := usecase.NewBillSettlementUseCase(provider, ledger, paymentGateway)

	return Handlers{
		Bill:       handlers.NewBillHandler(billUseCase),
		Settlement: handlers.NewSettlementHandler(settlementUseCase, cfg.Payments.MockMode),
		Contract:   handlers.NewContractHandler(contract.NewContract(provider, ledger)),
	}
}

// NewRouter builds the gin engine with middlewares, swagger and /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillRoutes(v1, h.Bill, h.Settlement)
	addContractRoutes(v1, h.Contract)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
