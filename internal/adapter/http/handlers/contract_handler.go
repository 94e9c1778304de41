package handlers

import (
	"context"
	"log"
	"net/http"

	request "bill_ledger/internal/adapter/http/dto/request"
	"bill_ledger/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvokePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid invoke payload", http.StatusBadRequest)

// ContractInvoker runs one named ledger function.
type ContractInvoker interface {
	Invoke(ctx context.Context, fn string, args []string) ([]byte, error)
}

// ContractHandler exposes the raw function-call surface of the ledger.
type ContractHandler struct {
	contract ContractInvoker
}

func NewContractHandler(contract ContractInvoker) *ContractHandler {
	return &ContractHandler{contract: contract}
}

// Invoke godoc
// @Summary  Invoke a ledger function by name
// @Tags     contract
// @Accept   json
// @Produce  json
// @Param    call  body  request.InvokeRequest  true  "Function call"
// @Success  200
// @Success  204
// @Failure  400   {object}  pkg.HTTPError
// @Router   /invoke [post]
func (h *ContractHandler) Invoke(c *gin.Context) {
	var payload request.InvokeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvokePayload.HTTPStatus, errInvalidInvokePayload.ToHTTPError())
		return
	}
	fn := payload.ResolveFunction()
	log.Printf("[bill][handler] invoke start function=%s args=%d", fn, len(payload.Args))

	out, err := h.contract.Invoke(c.Request.Context(), fn, payload.ResolveArgs())
	if err != nil {
		writeError(c, err)
		return
	}
	if len(out) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}
