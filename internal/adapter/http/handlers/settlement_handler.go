package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "bill_ledger/internal/adapter/http/dto/response"
	"bill_ledger/internal/usecase"
	"bill_ledger/pkg"

	"github.com/gin-gonic/gin"
)

// SettlementHandler charges bills through the payment provider.
type SettlementHandler struct {
	usecase  usecase.IBillSettlementUseCase
	mockMode bool
}

func NewSettlementHandler(uc usecase.IBillSettlementUseCase, mockMode bool) *SettlementHandler {
	return &SettlementHandler{usecase: uc, mockMode: mockMode}
}

// SettleBill godoc
// @Summary  Charge a bill through Mercado Pago and mark it paid on approval
// @Tags     bills
// @Accept   json
// @Produce  json
// @Param    id       path      string                     true   "Bill ID"
// @Param    payload  body      request.SettleBillRequest  false  "Provider payload"
// @Success  200      {object}  response.SettlementResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  402      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /bills/{id}/settle [post]
func (h *SettlementHandler) SettleBill(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[bill][handler] settle start id=%s", id)

	payload, err := readPaymentPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Printf("[bill][handler] invalid payload id=%s err=%v", id, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[bill][handler] payload invalid in mock mode; fallback to empty payload id=%s err=%v", id, err)
		payload = json.RawMessage("{}")
	}

	settlement, err := h.usecase.Settle(c.Request.Context(), id, payload)
	if err != nil {
		log.Printf("[bill][handler] settle failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	log.Printf("[bill][handler] settle success id=%s provider_payment_id=%s", id, settlement.ProviderPaymentID)
	c.JSON(http.StatusOK, response.FromSettlement(settlement))
}

// readPaymentPayload accepts either a bare provider payload or one wrapped in
// {"mp_payload": ...}.
func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
