package handlers

import (
	"errors"
	"log"
	"net/http"

	"bill_ledger/internal/adapter/contract"
	request "bill_ledger/internal/adapter/http/dto/request"
	response "bill_ledger/internal/adapter/http/dto/response"
	"bill_ledger/internal/usecase"
	"bill_ledger/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBillPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid bill payload", http.StatusBadRequest)
	errInvalidPaidFilter  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter paid must be true or false", http.StatusBadRequest)
)

// BillHandler handles HTTP requests for ledger bills.
type BillHandler struct {
	usecase usecase.IBillUseCase
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

// IssueBill godoc
// @Summary  Issue a new unpaid bill
// @Tags     bills
// @Accept   json
// @Produce  json
// @Param    bill  body      request.IssueBillRequest  true  "Bill"
// @Success  201   {object}  response.BillResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Router   /bills [post]
func (h *BillHandler) IssueBill(c *gin.Context) {
	var payload request.IssueBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}
	id := payload.ResolveID()
	log.Printf("[bill][handler] issue start id=%s website=%s", id, payload.Website)

	bill, err := h.usecase.IssueBill(c.Request.Context(), id, payload.Website, payload.Domain, payload.TransactionAmnt)
	if err != nil {
		log.Printf("[bill][handler] issue failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBill(bill))
}

// ReadBill godoc
// @Summary  Read a bill
// @Tags     bills
// @Produce  json
// @Param    id   path      string  true  "Bill ID"
// @Success  200  {object}  response.BillResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  422  {object}  pkg.HTTPError
// @Router   /bills/{id} [get]
func (h *BillHandler) ReadBill(c *gin.Context) {
	id := c.Param("id")
	bill, err := h.usecase.ReadBill(c.Request.Context(), id)
	if err != nil {
		log.Printf("[bill][handler] read failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBill(bill))
}

// BillExists godoc
// @Summary  Check whether a bill exists
// @Tags     bills
// @Produce  json
// @Param    id   path      string  true  "Bill ID"
// @Success  200  {object}  response.BillExistsResponse
// @Router   /bills/{id}/exists [get]
func (h *BillHandler) BillExists(c *gin.Context) {
	id := c.Param("id")
	exists, err := h.usecase.Exists(c.Request.Context(), id)
	if err != nil {
		log.Printf("[bill][handler] exists failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.BillExistsResponse{ID: id, Exists: exists})
}

// PayBill godoc
// @Summary  Mark a bill as paid
// @Tags     bills
// @Param    id   path  string  true  "Bill ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /bills/{id}/pay [patch]
func (h *BillHandler) PayBill(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.PayBill(c.Request.Context(), id); err != nil {
		log.Printf("[bill][handler] pay failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBill godoc
// @Summary  Delete a bill
// @Tags     bills
// @Param    id   path  string  true  "Bill ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteBill(c.Request.Context(), id); err != nil {
		log.Printf("[bill][handler] delete failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBillsByWebsite godoc
// @Summary  List the paid or unpaid bills of a website
// @Tags     bills
// @Produce  json
// @Param    website  path      string  true  "Website"
// @Param    paid     query     bool    true  "Payment status"
// @Success  200      {array}   response.BillResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /websites/{website}/bills [get]
func (h *BillHandler) ListBillsByWebsite(c *gin.Context) {
	website := c.Param("website")
	wantPaid, ok := parsePaidFilter(c.Query("paid"))
	if !ok {
		c.JSON(errInvalidPaidFilter.HTTPStatus, errInvalidPaidFilter.ToHTTPError())
		return
	}

	bills, err := h.usecase.ListBillsByWebsite(c.Request.Context(), website, wantPaid)
	if err != nil {
		log.Printf("[bill][handler] list failed website=%s paid=%t err=%v", website, wantPaid, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBills(bills))
}

// parsePaidFilter only accepts the literals true and false.
func parsePaidFilter(v string) (bool, bool) {
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func writeError(c *gin.Context, err error) {
	appErr := mapBillError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillID),
		errors.Is(err, usecase.ErrInvalidPaymentPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest),
		errors.Is(err, contract.ErrInvalidArgs),
		errors.Is(err, contract.ErrUnknownFunction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillAlreadyExists):
		return pkg.NewDomainErrorSimple("BILL_ALREADY_EXISTS", "Bill already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillAlreadyPaid):
		return pkg.NewDomainErrorSimple("BILL_ALREADY_PAID", "Bill already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrMalformedRecord):
		return pkg.NewDomainErrorSimple("MALFORMED_RECORD", "Stored bill is malformed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_BILL_AMOUNT", "Bill amount is not a positive number", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSettlementDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment not approved by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
