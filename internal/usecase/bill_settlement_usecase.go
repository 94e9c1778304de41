package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"bill_ledger/internal/domain/entities"
	"bill_ledger/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
	ErrInvalidAmount               = errors.New("bill amount is not a positive number")
	ErrSettlementDeclined          = errors.New("payment not approved by provider")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

const providerStatusApproved = "approved"

// IBillSettlementUseCase charges a bill through the payment gateway and, once
// the provider approves, records it as paid on the ledger.
type IBillSettlementUseCase interface {
	Settle(ctx context.Context, id string, payload json.RawMessage) (entities.Settlement, error)
}

type BillSettlementUseCase struct {
	provider interfaces.IWorldStateProvider
	ledger   *BillLedger
	gateway  interfaces.IPaymentGateway
}

var _ IBillSettlementUseCase = (*BillSettlementUseCase)(nil)

func NewBillSettlementUseCase(provider interfaces.IWorldStateProvider, ledger *BillLedger, gateway interfaces.IPaymentGateway) *BillSettlementUseCase {
	if ledger == nil {
		ledger = NewBillLedger()
	}
	return &BillSettlementUseCase{provider: provider, ledger: ledger, gateway: gateway}
}

// Settle runs in two world-state scopes: one to load and check the bill, one
// to pay it after the provider answered. The second scope re-checks the paid
// flag, so a bill settled concurrently fails with ErrBillAlreadyPaid.
func (u *BillSettlementUseCase) Settle(ctx context.Context, id string, payload json.RawMessage) (entities.Settlement, error) {
	log.Printf("[bill][settlement] start raw_id=%q payload_len=%d", id, len(payload))
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Settlement{}, ErrInvalidBillID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[bill][settlement] invalid payload (not-json) id=%s", id)
		return entities.Settlement{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		log.Printf("[bill][settlement] gateway not configured id=%s", id)
		return entities.Settlement{}, ErrPaymentGatewayNotConfigured
	}

	var bill entities.Bill
	err := u.provider.Execute(ctx, func(stub interfaces.IWorldState) error {
		var err error
		bill, err = u.ledger.ReadBill(ctx, stub, id)
		return err
	})
	if err != nil {
		log.Printf("[bill][settlement] failed loading bill id=%s err=%v", id, err)
		return entities.Settlement{}, err
	}
	if bill.Paid {
		return entities.Settlement{}, fmt.Errorf("the bill %s has already been paid: %w", id, ErrBillAlreadyPaid)
	}

	amount, err := parseAmount(bill.TransactionAmnt)
	if err != nil {
		log.Printf("[bill][settlement] invalid amount id=%s amount=%q", id, bill.TransactionAmnt)
		return entities.Settlement{}, fmt.Errorf("bill %s: %w", id, err)
	}

	request, err := buildPaymentRequest(payload, bill, amount)
	if err != nil {
		return entities.Settlement{}, err
	}

	log.Printf("[bill][settlement] calling payment gateway id=%s amount=%.2f", id, amount)
	paymentID, status, resp, err := u.gateway.CreatePayment(ctx, request)
	if err != nil {
		log.Printf("[bill][settlement] payment gateway failed id=%s err=%v", id, err)
		switch {
		case isGatewayUnauthorized(err):
			return entities.Settlement{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.Settlement{}, ErrPaymentGatewayBadRequest
		}
		return entities.Settlement{}, err
	}
	if !strings.EqualFold(status, providerStatusApproved) {
		log.Printf("[bill][settlement] payment not approved id=%s provider_payment_id=%s status=%s", id, paymentID, status)
		return entities.Settlement{}, fmt.Errorf("bill %s: provider status %q: %w", id, status, ErrSettlementDeclined)
	}

	err = u.provider.Execute(ctx, func(stub interfaces.IWorldState) error {
		return u.ledger.PayBill(ctx, stub, id)
	})
	if err != nil {
		log.Printf("[bill][settlement] ledger pay failed id=%s provider_payment_id=%s err=%v", id, paymentID, err)
		return entities.Settlement{}, err
	}

	bill.Paid = true
	log.Printf("[bill][settlement] success id=%s provider_payment_id=%s", id, paymentID)
	return entities.Settlement{
		Bill:              bill,
		ProviderPaymentID: paymentID,
		ProviderStatus:    status,
		ProviderResponse:  resp,
	}, nil
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// buildPaymentRequest links the caller payload to the bill. The amount always
// comes from the ledger, whatever the caller sent.
func buildPaymentRequest(payload json.RawMessage, bill entities.Bill, amount float64) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		return nil, ErrInvalidPaymentPayload
	}
	if !hasNonEmptyString(req, "external_reference") {
		req["external_reference"] = bill.ID
	}
	if !hasNonEmptyString(req, "description") {
		req["description"] = fmt.Sprintf("Bill %s (%s)", bill.ID, bill.Website)
	}
	req["transaction_amount"] = amount
	return json.Marshal(req)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
