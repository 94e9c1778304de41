package usecase

import (
	"context"

	"bill_ledger/internal/domain/entities"
	"bill_ledger/internal/usecase/interfaces"
)

// IBillUseCase exposes the bill ledger to transports that do not manage
// world-state scopes themselves (HTTP, CLI). Each call runs as one
// invocation of the world-state provider.
type IBillUseCase interface {
	Exists(ctx context.Context, id string) (bool, error)
	IssueBill(ctx context.Context, id, website, domain, transactionAmnt string) (entities.Bill, error)
	ReadBill(ctx context.Context, id string) (entities.Bill, error)
	PayBill(ctx context.Context, id string) error
	ListBillsByWebsite(ctx context.Context, website string, wantPaid bool) ([]entities.Bill, error)
	DeleteBill(ctx context.Context, id string) error
}

type BillUseCase struct {
	provider interfaces.IWorldStateProvider
	ledger   *BillLedger
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(provider interfaces.IWorldStateProvider, ledger *BillLedger) *BillUseCase {
	if ledger == nil {
		ledger = NewBillLedger()
	}
	return &BillUseCase{provider: provider, ledger: ledger}
}

func (u *BillUseCase) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := u.provider.Execute(ctx, func(stub interfaces.IWorldState) error {
		var err error
		exists, err = u.ledger.Exists(ctx, stub, id)
		return err
	})
	return exists, err
}

func (u *BillUseCase) IssueBill(ctx context.Context, id, website, domain, transactionAmnt string) (entities.Bill, error) {
	var bill entities.Bill
	err := u.provider.Execute(ctx, func(stub interfaces.IWorldState) error {
		var err error
		bill, err = u.ledger.IssueBill(ctx, stub, id, website, domain, transactionAmnt)
		return err
	})
	if err != nil {
		return entities.Bill{}, err
	}
	return bill, nil
}

func (u *BillUseCase) ReadBill(ctx context.Context, id string) (entities.Bill, error) {
	var bill entities.Bill
	err := u.provider.Execute(ctx, func(stub interfaces.IWorldState) error {
		var err error
		bill, err = u.ledger.ReadBill(ctx, stub, id)
		return err
	})
	if err != nil {
		return entities.Bill{}, err
	}
	return bill, nil
}

func (u *BillUseCase) PayBill(ctx context.Context, id string) error {
	return u.provider.Execute(ctx, func(stub interfaces.IWorldState) error {
		return u.ledger.PayBill(ctx, stub, id)
	})
}

func (u *BillUseCase) ListBillsByWebsite(ctx context.Context, website string, wantPaid bool) ([]entities.Bill, error) {
	var bills []entities.Bill
	err := u.provider.Execute(ctx, func(stub interfaces.IWorldState) error {
		var err error
		bills, err = u.ledger.ListBillsByWebsite(ctx, stub, website, wantPaid)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (u *BillUseCase) DeleteBill(ctx context.Context, id string) error {
	return u.provider.Execute(ctx, func(stub interfaces.IWorldState) error {
		return u.ledger.DeleteBill(ctx, stub, id)
	})
}
