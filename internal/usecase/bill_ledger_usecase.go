package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"bill_ledger/internal/domain/entities"
	"bill_ledger/internal/usecase/interfaces"
)

var (
	ErrBillNotFound      = errors.New("bill not found")
	ErrBillAlreadyExists = errors.New("bill already exists")
	ErrBillAlreadyPaid   = errors.New("bill already paid")
	ErrInvalidBillID     = errors.New("invalid bill id")
	ErrMalformedRecord   = entities.ErrMalformedRecord
)

// Open-ended range bounds: the whole world-state namespace.
const (
	scanAllStart = ""
	scanAllEnd   = ""
)

// BillLedger holds the bill state-transition rules.
//
// It keeps no state between calls: every operation receives the world-state
// handle of the current invocation and re-reads what it needs. Concurrent
// invocations on the same key are serialized by the world-state provider,
// so nothing here locks.
type BillLedger struct{}

func NewBillLedger() *BillLedger {
	return &BillLedger{}
}

// Exists reports whether a non-empty value is stored under id.
func (l *BillLedger) Exists(ctx context.Context, stub interfaces.IWorldState, id string) (bool, error) {
	raw, err := stub.GetState(ctx, id)
	if err != nil {
		return false, fmt.Errorf("bill %s: read state: %w", id, err)
	}
	return len(raw) > 0, nil
}

// IssueBill records a new unpaid bill. It fails when id is already taken.
func (l *BillLedger) IssueBill(ctx context.Context, stub interfaces.IWorldState, id, website, domain, transactionAmnt string) (entities.Bill, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Bill{}, ErrInvalidBillID
	}

	exists, err := l.Exists(ctx, stub, id)
	if err != nil {
		return entities.Bill{}, err
	}
	if exists {
		return entities.Bill{}, fmt.Errorf("the bill %s already exists: %w", id, ErrBillAlreadyExists)
	}

	bill := entities.NewBill(id, website, domain, transactionAmnt)
	if err := l.put(ctx, stub, bill); err != nil {
		return entities.Bill{}, err
	}
	log.Printf("[bill][ledger] issued id=%s website=%s", id, website)
	return bill, nil
}

// ReadBill returns the bill stored under id.
func (l *BillLedger) ReadBill(ctx context.Context, stub interfaces.IWorldState, id string) (entities.Bill, error) {
	raw, err := l.ReadBillRaw(ctx, stub, id)
	if err != nil {
		return entities.Bill{}, err
	}
	bill, err := entities.DecodeBill(raw)
	if err != nil {
		return entities.Bill{}, fmt.Errorf("bill %s: %w", id, err)
	}
	return bill, nil
}

// ReadBillRaw returns the stored bytes under id without decoding them.
func (l *BillLedger) ReadBillRaw(ctx context.Context, stub interfaces.IWorldState, id string) ([]byte, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidBillID
	}
	raw, err := stub.GetState(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("bill %s: read state: %w", id, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("the bill %s does not exist: %w", id, ErrBillNotFound)
	}
	return raw, nil
}

// PayBill flips an unpaid bill to paid. A paid bill is never modified again.
// Only the Paid field of the stored record is rewritten.
func (l *BillLedger) PayBill(ctx context.Context, stub interfaces.IWorldState, id string) error {
	raw, err := l.ReadBillRaw(ctx, stub, id)
	if err != nil {
		return err
	}
	bill, err := entities.DecodeBill(raw)
	if err != nil {
		return fmt.Errorf("bill %s: %w", id, err)
	}
	if bill.Paid {
		return fmt.Errorf("the bill %s has already been paid: %w", id, ErrBillAlreadyPaid)
	}

	paid, err := entities.MarkPaid(raw)
	if err != nil {
		return fmt.Errorf("bill %s: %w", id, err)
	}
	if err := stub.PutState(ctx, id, paid); err != nil {
		return fmt.Errorf("bill %s: write state: %w", id, err)
	}
	log.Printf("[bill][ledger] paid id=%s", id)
	return nil
}

// ListBillsByWebsite scans the whole namespace and returns, in store order,
// the bills of website whose Paid flag equals wantPaid. Values that do not
// decode as a bill are skipped.
func (l *BillLedger) ListBillsByWebsite(ctx context.Context, stub interfaces.IWorldState, website string, wantPaid bool) (result []entities.Bill, err error) {
	it, err := stub.GetStateByRange(ctx, scanAllStart, scanAllEnd)
	if err != nil {
		return nil, fmt.Errorf("range scan: %w", err)
	}
	defer func() {
		if cerr := it.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close range scan: %w", cerr)
		}
	}()

	bills := make([]entities.Bill, 0)
	for it.HasNext() {
		kv, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("range scan: %w", err)
		}
		bill, err := entities.DecodeBill(kv.Value)
		if err != nil {
			log.Printf("[bill][ledger] skipping key=%s err=%v", kv.Key, err)
			continue
		}
		if bill.MatchesWebsite(website, wantPaid) {
			bills = append(bills, bill)
		}
	}
	return bills, nil
}

// ListPaidBillsByWebsite is ListBillsByWebsite(website, true).
func (l *BillLedger) ListPaidBillsByWebsite(ctx context.Context, stub interfaces.IWorldState, website string) ([]entities.Bill, error) {
	return l.ListBillsByWebsite(ctx, stub, website, true)
}

// ListUnpaidBillsByWebsite is ListBillsByWebsite(website, false).
func (l *BillLedger) ListUnpaidBillsByWebsite(ctx context.Context, stub interfaces.IWorldState, website string) ([]entities.Bill, error) {
	return l.ListBillsByWebsite(ctx, stub, website, false)
}

// DeleteBill removes the bill stored under id.
func (l *BillLedger) DeleteBill(ctx context.Context, stub interfaces.IWorldState, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidBillID
	}
	exists, err := l.Exists(ctx, stub, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("the bill %s does not exist: %w", id, ErrBillNotFound)
	}
	if err := stub.DelState(ctx, id); err != nil {
		return fmt.Errorf("bill %s: delete state: %w", id, err)
	}
	log.Printf("[bill][ledger] deleted id=%s", id)
	return nil
}

func (l *BillLedger) put(ctx context.Context, stub interfaces.IWorldState, bill entities.Bill) error {
	raw, err := entities.EncodeBill(bill)
	if err != nil {
		return fmt.Errorf("bill %s: encode: %w", bill.ID, err)
	}
	if err := stub.PutState(ctx, bill.ID, raw); err != nil {
		return fmt.Errorf("bill %s: write state: %w", bill.ID, err)
	}
	return nil
}
