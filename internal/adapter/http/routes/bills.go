package routes

import (
	"bill_ledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBills    = "/bills"
	PathWebsites = "/websites"
	PathInvoke   = "/invoke"
)

func addBillRoutes(rg *gin.RouterGroup, billHandler *handlers.BillHandler, settlementHandler *handlers.SettlementHandler) {
	bills := rg.Group(PathBills)
	{
		bills.POST("", billHandler.IssueBill)
		bills.GET("/:id", billHandler.ReadBill)
		bills.GET("/:id/exists", billHandler.BillExists)
		bills.PATCH("/:id/pay", billHandler.PayBill)
		bills.DELETE("/:id", billHandler.DeleteBill)
		bills.POST("/:id/settle", settlementHandler.SettleBill)
	}

	websites := rg.Group(PathWebsites)
	{
		websites.GET("/:website/bills", billHandler.ListBillsByWebsite)
	}
}

func addContractRoutes(rg *gin.RouterGroup, contractHandler *handlers.ContractHandler) {
	rg.POST(PathInvoke, contractHandler.Invoke)
}
