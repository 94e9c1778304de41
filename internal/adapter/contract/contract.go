// Package contract exposes the bill ledger the way a chaincode does: a
// function name plus positional string arguments in, a JSON payload out.
package contract

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"bill_ledger/internal/domain/entities"
	"bill_ledger/internal/usecase"
	"bill_ledger/internal/usecase/interfaces"
)

var (
	ErrInvalidArgs     = errors.New("invalid number of arguments")
	ErrUnknownFunction = errors.New("unknown function")
)

// Function names accepted by Invoke.
const (
	FnAssetExists                = "AssetExists"
	FnIssueBill                  = "IssueBill"
	FnReadBill                   = "ReadBill"
	FnPayBill                    = "PayBill"
	FnDeleteBill                 = "DeleteBill"
	FnGetAllBillsByWebsitePaid   = "GetAllBillsByWebsitePaid"
	FnGetAllBillsByWebsiteUnpaid = "GetAllBillsByWebsiteUnpaid"
	FnListBillsByWebsite         = "ListBillsByWebsite"
)

type handler struct {
	arity int
	run   func(ctx context.Context, stub interfaces.IWorldState, args []string) ([]byte, error)
}

type Contract struct {
	provider interfaces.IWorldStateProvider
	ledger   *usecase.BillLedger
	handlers map[string]handler
}

func NewContract(provider interfaces.IWorldStateProvider, ledger *usecase.BillLedger) *Contract {
	if ledger == nil {
		ledger = usecase.NewBillLedger()
	}
	c := &Contract{provider: provider, ledger: ledger}
	c.handlers = map[string]handler{
		FnAssetExists:                {arity: 1, run: c.assetExists},
		FnIssueBill:                  {arity: 4, run: c.issueBill},
		FnReadBill:                   {arity: 1, run: c.readBill},
		FnPayBill:                    {arity: 1, run: c.payBill},
		FnDeleteBill:                 {arity: 1, run: c.deleteBill},
		FnGetAllBillsByWebsitePaid:   {arity: 1, run: c.listPaid},
		FnGetAllBillsByWebsiteUnpaid: {arity: 1, run: c.listUnpaid},
		FnListBillsByWebsite:         {arity: 2, run: c.listByWebsite},
	}
	return c
}

// Functions returns the names Invoke dispatches.
func (c *Contract) Functions() []string {
	return []string{
		FnAssetExists, FnIssueBill, FnReadBill, FnPayBill, FnDeleteBill,
		FnGetAllBillsByWebsitePaid, FnGetAllBillsByWebsiteUnpaid, FnListBillsByWebsite,
	}
}

// Invoke runs fn as one world-state invocation. The writes of a failing
// function are discarded.
func (c *Contract) Invoke(ctx context.Context, fn string, args []string) ([]byte, error) {
	h, ok := c.handlers[fn]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, fn)
	}
	if len(args) != h.arity {
		return nil, fmt.Errorf("%s expects %d arguments, got %d: %w", fn, h.arity, len(args), ErrInvalidArgs)
	}

	var payload []byte
	err := c.provider.Execute(ctx, func(stub interfaces.IWorldState) error {
		var err error
		payload, err = h.run(ctx, stub, args)
		return err
	})
	if err != nil {
		log.Printf("[bill][contract] %s failed: %v", fn, err)
		return nil, err
	}
	return payload, nil
}

func (c *Contract) assetExists(ctx context.Context, stub interfaces.IWorldState, args []string) ([]byte, error) {
	exists, err := c.ledger.Exists(ctx, stub, args[0])
	if err != nil {
		return nil, err
	}
	return []byte(strconv.FormatBool(exists)), nil
}

func (c *Contract) issueBill(ctx context.Context, stub interfaces.IWorldState, args []string) ([]byte, error) {
	bill, err := c.ledger.IssueBill(ctx, stub, args[0], args[1], args[2], args[3])
	if err != nil {
		return nil, err
	}
	return entities.EncodeBill(bill)
}

func (c *Contract) readBill(ctx context.Context, stub interfaces.IWorldState, args []string) ([]byte, error) {
	return c.ledger.ReadBillRaw(ctx, stub, args[0])
}

func (c *Contract) payBill(ctx context.Context, stub interfaces.IWorldState, args []string) ([]byte, error) {
	return nil, c.ledger.PayBill(ctx, stub, args[0])
}

func (c *Contract) deleteBill(ctx context.Context, stub interfaces.IWorldState, args []string) ([]byte, error) {
	return nil, c.ledger.DeleteBill(ctx, stub, args[0])
}

func (c *Contract) listPaid(ctx context.Context, stub interfaces.IWorldState, args []string) ([]byte, error) {
	return c.list(ctx, stub, args[0], true)
}

func (c *Contract) listUnpaid(ctx context.Context, stub interfaces.IWorldState, args []string) ([]byte, error) {
	return c.list(ctx, stub, args[0], false)
}

func (c *Contract) listByWebsite(ctx context.Context, stub interfaces.IWorldState, args []string) ([]byte, error) {
	var wantPaid bool
	switch args[1] {
	case "true":
		wantPaid = true
	case "false":
	default:
		return nil, fmt.Errorf("paid must be true or false, got %q: %w", args[1], ErrInvalidArgs)
	}
	return c.list(ctx, stub, args[0], wantPaid)
}

func (c *Contract) list(ctx context.Context, stub interfaces.IWorldState, website string, wantPaid bool) ([]byte, error) {
	bills, err := c.ledger.ListBillsByWebsite(ctx, stub, website, wantPaid)
	if err != nil {
		return nil, err
	}
	return entities.EncodeBills(bills)
}
