package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bill_ledger/internal/adapter/persistence/worldstate"
	mock_interfaces "bill_ledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSettlementFixture(t *testing.T, amount string) (*BillSettlementUseCase, *BillUseCase, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := worldstate.NewMemoryWorldState()
	ledger := NewBillLedger()
	bills := NewBillUseCase(store, ledger)
	if _, err := bills.IssueBill(context.Background(), "b1", "x.com", "shop", amount); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewBillSettlementUseCase(store, ledger, gateway), bills, gateway
}

func TestBillSettlementUseCase_Approved(t *testing.T) {
	uc, bills, gateway := newSettlementFixture(t, "12.50")

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req json.RawMessage) (string, string, json.RawMessage, error) {
			var body map[string]any
			if err := json.Unmarshal(req, &body); err != nil {
				t.Fatalf("request is not json: %v", err)
			}
			if body["transaction_amount"] != 12.5 {
				t.Fatalf("expected ledger amount, got %v", body["transaction_amount"])
			}
			if body["external_reference"] != "b1" {
				t.Fatalf("expected bill reference, got %v", body["external_reference"])
			}
			if body["payment_method_id"] != "pix" {
				t.Fatalf("expected caller fields to be kept, got %v", body)
			}
			return "p-1", "approved", json.RawMessage(`{"id":"p-1"}`), nil
		})

	got, err := uc.Settle(context.Background(), " b1 ", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Bill.Paid || got.ProviderPaymentID != "p-1" || got.ProviderStatus != "approved" {
		t.Fatalf("unexpected settlement: %+v", got)
	}

	stored, err := bills.ReadBill(context.Background(), "b1")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !stored.Paid {
		t.Fatalf("expected bill to be paid on the ledger")
	}
}

func TestBillSettlementUseCase_Declined(t *testing.T) {
	uc, bills, gateway := newSettlementFixture(t, "5")
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("p-2", "rejected", nil, nil)

	_, err := uc.Settle(context.Background(), "b1", nil)
	if !errors.Is(err, ErrSettlementDeclined) {
		t.Fatalf("expected ErrSettlementDeclined, got %v", err)
	}
	stored, _ := bills.ReadBill(context.Background(), "b1")
	if stored.Paid {
		t.Fatalf("declined settlement must not pay the bill")
	}
}

func TestBillSettlementUseCase_AlreadyPaid(t *testing.T) {
	uc, bills, _ := newSettlementFixture(t, "5")
	if err := bills.PayBill(context.Background(), "b1"); err != nil {
		t.Fatalf("pay failed: %v", err)
	}

	_, err := uc.Settle(context.Background(), "b1", nil)
	if !errors.Is(err, ErrBillAlreadyPaid) {
		t.Fatalf("expected ErrBillAlreadyPaid, got %v", err)
	}
}

func TestBillSettlementUseCase_Validation(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		id      string
		payload json.RawMessage
		wantErr error
	}{
		{name: "empty id", amount: "5", id: "  ", wantErr: ErrInvalidBillID},
		{name: "payload not json", amount: "5", id: "b1", payload: json.RawMessage(`{`), wantErr: ErrInvalidPaymentPayload},
		{name: "payload not object", amount: "5", id: "b1", payload: json.RawMessage(`[1]`), wantErr: ErrInvalidPaymentPayload},
		{name: "missing bill", amount: "5", id: "nope", wantErr: ErrBillNotFound},
		{name: "zero amount", amount: "0", id: "b1", wantErr: ErrInvalidAmount},
		{name: "non numeric amount", amount: "ten", id: "b1", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newSettlementFixture(t, tt.amount)
			_, err := uc.Settle(context.Background(), tt.id, tt.payload)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBillSettlementUseCase_GatewayErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "unauthorized", err: errors.New(`{"status":401,"error":"unauthorized"}`), wantErr: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400,"error":"bad_request"}`), wantErr: ErrPaymentGatewayBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, gateway := newSettlementFixture(t, "5")
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tt.err)

			_, err := uc.Settle(context.Background(), "b1", nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("other error passes through", func(t *testing.T) {
		uc, _, gateway := newSettlementFixture(t, "5")
		boom := errors.New("timeout")
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, boom)

		if _, err := uc.Settle(context.Background(), "b1", nil); !errors.Is(err, boom) {
			t.Fatalf("expected timeout, got %v", err)
		}
	})
}

func TestBillSettlementUseCase_NoGateway(t *testing.T) {
	uc := NewBillSettlementUseCase(worldstate.NewMemoryWorldState(), nil, nil)
	if _, err := uc.Settle(context.Background(), "b1", nil); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
		t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
	}
}
