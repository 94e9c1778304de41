package usecase

import (
	"context"
	"errors"
	"testing"

	"bill_ledger/internal/adapter/persistence/worldstate"
	"bill_ledger/internal/domain/entities"
	"bill_ledger/internal/usecase/interfaces"
	mock_interfaces "bill_ledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// inScope runs fn as one invocation against p and fails the test on error.
func inScope(t *testing.T, p interfaces.IWorldStateProvider, fn func(stub interfaces.IWorldState) error) {
	t.Helper()
	if err := p.Execute(context.Background(), fn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func rawState(t *testing.T, p interfaces.IWorldStateProvider, key string) []byte {
	t.Helper()
	var raw []byte
	inScope(t, p, func(stub interfaces.IWorldState) error {
		var err error
		raw, err = stub.GetState(context.Background(), key)
		return err
	})
	return raw
}

func ids(bills []entities.Bill) []string {
	out := make([]string, 0, len(bills))
	for _, b := range bills {
		out = append(out, b.ID)
	}
	return out
}

func TestBillLedger_IssueAndRead(t *testing.T) {
	ctx := context.Background()
	p := worldstate.NewMemoryWorldState()
	l := NewBillLedger()

	inScope(t, p, func(stub interfaces.IWorldState) error {
		bill, err := l.IssueBill(ctx, stub, "b1", "x.com", "shop", "10.00")
		if err != nil {
			return err
		}
		if bill.Paid || bill.ID != "b1" || bill.Website != "x.com" || bill.Domain != "shop" || bill.TransactionAmnt != "10.00" {
			t.Fatalf("unexpected issued bill: %+v", bill)
		}
		return nil
	})

	inScope(t, p, func(stub interfaces.IWorldState) error {
		got, err := l.ReadBill(ctx, stub, "b1")
		if err != nil {
			return err
		}
		want := entities.Bill{ID: "b1", Website: "x.com", Domain: "shop", TransactionAmnt: "10.00", Paid: false}
		if got != want {
			t.Fatalf("unexpected bill: %+v", got)
		}
		return nil
	})

	stored := rawState(t, p, "b1")
	if string(stored) != `{"Domain":"shop","ID":"b1","Paid":false,"TransactionAmnt":"10.00","Website":"x.com"}` {
		t.Fatalf("unexpected stored bytes: %s", stored)
	}
}

func TestBillLedger_IssueExistingLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	p := worldstate.NewMemoryWorldState()
	l := NewBillLedger()

	inScope(t, p, func(stub interfaces.IWorldState) error {
		_, err := l.IssueBill(ctx, stub, "b1", "x.com", "shop", "10")
		return err
	})
	before := rawState(t, p, "b1")

	err := p.Execute(ctx, func(stub interfaces.IWorldState) error {
		_, err := l.IssueBill(ctx, stub, "b1", "other.com", "other", "99")
		return err
	})
	if !errors.Is(err, ErrBillAlreadyExists) {
		t.Fatalf("expected ErrBillAlreadyExists, got %v", err)
	}
	if err.Error() != "the bill b1 already exists: bill already exists" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if after := rawState(t, p, "b1"); string(after) != string(before) {
		t.Fatalf("stored value changed: %s -> %s", before, after)
	}
}

func TestBillLedger_InvalidID(t *testing.T) {
	ctx := context.Background()
	p := worldstate.NewMemoryWorldState()
	l := NewBillLedger()

	err := p.Execute(ctx, func(stub interfaces.IWorldState) error {
		_, err := l.IssueBill(ctx, stub, "  ", "x.com", "d", "1")
		return err
	})
	if !errors.Is(err, ErrInvalidBillID) {
		t.Fatalf("expected ErrInvalidBillID, got %v", err)
	}
	err = p.Execute(ctx, func(stub interfaces.IWorldState) error {
		return l.DeleteBill(ctx, stub, "")
	})
	if !errors.Is(err, ErrInvalidBillID) {
		t.Fatalf("expected ErrInvalidBillID, got %v", err)
	}
}

func TestBillLedger_PayBill(t *testing.T) {
	ctx := context.Background()
	p := worldstate.NewMemoryWorldState()
	l := NewBillLedger()

	inScope(t, p, func(stub interfaces.IWorldState) error {
		_, err := l.IssueBill(ctx, stub, "b1", "x.com", "shop", "10")
		return err
	})

	t.Run("first pay flips flag", func(t *testing.T) {
		inScope(t, p, func(stub interfaces.IWorldState) error {
			return l.PayBill(ctx, stub, "b1")
		})
		inScope(t, p, func(stub interfaces.IWorldState) error {
			got, err := l.ReadBill(ctx, stub, "b1")
			if err != nil {
				return err
			}
			want := entities.Bill{ID: "b1", Website: "x.com", Domain: "shop", TransactionAmnt: "10", Paid: true}
			if got != want {
				t.Fatalf("unexpected bill after pay: %+v", got)
			}
			return nil
		})
	})

	t.Run("second pay fails without side effect", func(t *testing.T) {
		before := rawState(t, p, "b1")
		err := p.Execute(ctx, func(stub interfaces.IWorldState) error {
			return l.PayBill(ctx, stub, "b1")
		})
		if !errors.Is(err, ErrBillAlreadyPaid) {
			t.Fatalf("expected ErrBillAlreadyPaid, got %v", err)
		}
		if err.Error() != "the bill b1 has already been paid: bill already paid" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
		if after := rawState(t, p, "b1"); string(after) != string(before) {
			t.Fatalf("stored value changed: %s -> %s", before, after)
		}
	})

	t.Run("missing bill", func(t *testing.T) {
		err := p.Execute(ctx, func(stub interfaces.IWorldState) error {
			return l.PayBill(ctx, stub, "nope")
		})
		if !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})
}

func TestBillLedger_PayBillKeepsStoredFields(t *testing.T) {
	ctx := context.Background()
	p := worldstate.NewMemoryWorldState()
	p.Seed(map[string][]byte{
		"f1": []byte(`{"Domain":"d","Extra":"keep","ID":"f1","Paid":false,"TransactionAmnt":100,"Website":"x.com"}`),
	})
	l := NewBillLedger()

	inScope(t, p, func(stub interfaces.IWorldState) error {
		return l.PayBill(ctx, stub, "f1")
	})

	want := `{"Domain":"d","Extra":"keep","ID":"f1","Paid":true,"TransactionAmnt":100,"Website":"x.com"}`
	if got := rawState(t, p, "f1"); string(got) != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestBillLedger_DeleteBill(t *testing.T) {
	ctx := context.Background()
	p := worldstate.NewMemoryWorldState()
	l := NewBillLedger()

	inScope(t, p, func(stub interfaces.IWorldState) error {
		_, err := l.IssueBill(ctx, stub, "b1", "x.com", "shop", "10")
		return err
	})
	inScope(t, p, func(stub interfaces.IWorldState) error {
		return l.DeleteBill(ctx, stub, "b1")
	})

	inScope(t, p, func(stub interfaces.IWorldState) error {
		exists, err := l.Exists(ctx, stub, "b1")
		if err != nil {
			return err
		}
		if exists {
			t.Fatalf("expected bill to be gone")
		}
		_, err = l.ReadBill(ctx, stub, "b1")
		if !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
		return nil
	})

	err := p.Execute(ctx, func(stub interfaces.IWorldState) error {
		return l.DeleteBill(ctx, stub, "b1")
	})
	if !errors.Is(err, ErrBillNotFound) {
		t.Fatalf("expected ErrBillNotFound, got %v", err)
	}
	if err.Error() != "the bill b1 does not exist: bill not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestBillLedger_EmptyValueMeansAbsent(t *testing.T) {
	ctx := context.Background()
	p := worldstate.NewMemoryWorldState()
	p.Seed(map[string][]byte{"b1": {}})
	l := NewBillLedger()

	inScope(t, p, func(stub interfaces.IWorldState) error {
		exists, err := l.Exists(ctx, stub, "b1")
		if err != nil {
			return err
		}
		if exists {
			t.Fatalf("expected empty value to count as absent")
		}
		if _, err := l.ReadBill(ctx, stub, "b1"); !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
		return nil
	})
}

func TestBillLedger_ReadMalformed(t *testing.T) {
	ctx := context.Background()
	p := worldstate.NewMemoryWorldState()
	p.Seed(map[string][]byte{"junk": []byte("not json")})
	l := NewBillLedger()

	err := p.Execute(ctx, func(stub interfaces.IWorldState) error {
		_, err := l.ReadBill(ctx, stub, "junk")
		return err
	})
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestBillLedger_ListBillsByWebsite(t *testing.T) {
	ctx := context.Background()
	p := worldstate.NewMemoryWorldState()
	l := NewBillLedger()

	inScope(t, p, func(stub interfaces.IWorldState) error {
		if _, err := l.IssueBill(ctx, stub, "b1", "x.com", "d", "1"); err != nil {
			return err
		}
		if _, err := l.IssueBill(ctx, stub, "b2", "x.com", "d", "2"); err != nil {
			return err
		}
		_, err := l.IssueBill(ctx, stub, "b3", "y.com", "d", "3")
		return err
	})
	inScope(t, p, func(stub interfaces.IWorldState) error {
		return l.PayBill(ctx, stub, "b1")
	})
	p.Seed(map[string][]byte{
		"a-junk":   []byte("{oops"),
		"c-string": []byte(`{"ID":"c","Website":"x.com","Domain":"d","TransactionAmnt":"1","Paid":"true"}`),
		"d-array":  []byte(`["x.com"]`),
	})

	inScope(t, p, func(stub interfaces.IWorldState) error {
		paid, err := l.ListBillsByWebsite(ctx, stub, "x.com", true)
		if err != nil {
			return err
		}
		if got := ids(paid); len(got) != 1 || got[0] != "b1" {
			t.Fatalf("expected [b1], got %v", got)
		}

		unpaid, err := l.ListBillsByWebsite(ctx, stub, "x.com", false)
		if err != nil {
			return err
		}
		if got := ids(unpaid); len(got) != 1 || got[0] != "b2" {
			t.Fatalf("expected [b2], got %v", got)
		}

		none, err := l.ListBillsByWebsite(ctx, stub, "unknown.com", false)
		if err != nil {
			return err
		}
		if none == nil || len(none) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", none)
		}

		legacyPaid, err := l.ListPaidBillsByWebsite(ctx, stub, "x.com")
		if err != nil {
			return err
		}
		legacyUnpaid, err := l.ListUnpaidBillsByWebsite(ctx, stub, "x.com")
		if err != nil {
			return err
		}
		if len(legacyPaid) != 1 || len(legacyUnpaid) != 1 {
			t.Fatalf("legacy wrappers disagree: %v %v", ids(legacyPaid), ids(legacyUnpaid))
		}
		return nil
	})
}

func TestBillLedger_ListPartitionsWebsite(t *testing.T) {
	ctx := context.Background()
	p := worldstate.NewMemoryWorldState()
	l := NewBillLedger()

	all := []string{"k1", "k2", "k3", "k4", "k5", "k6"}
	inScope(t, p, func(stub interfaces.IWorldState) error {
		for _, id := range all {
			if _, err := l.IssueBill(ctx, stub, id, "w.net", "d", "1"); err != nil {
				return err
			}
		}
		for _, id := range []string{"k2", "k5"} {
			if err := l.PayBill(ctx, stub, id); err != nil {
				return err
			}
		}
		return nil
	})

	inScope(t, p, func(stub interfaces.IWorldState) error {
		paid, err := l.ListBillsByWebsite(ctx, stub, "w.net", true)
		if err != nil {
			return err
		}
		unpaid, err := l.ListBillsByWebsite(ctx, stub, "w.net", false)
		if err != nil {
			return err
		}
		seen := map[string]int{}
		for _, b := range append(paid, unpaid...) {
			seen[b.ID]++
		}
		if len(seen) != len(all) || len(paid)+len(unpaid) != len(all) {
			t.Fatalf("expected disjoint cover of %v, got paid=%v unpaid=%v", all, ids(paid), ids(unpaid))
		}
		if got := ids(paid); len(got) != 2 || got[0] != "k2" || got[1] != "k5" {
			t.Fatalf("expected store-ordered [k2 k5], got %v", got)
		}
		return nil
	})
}

func TestBillLedger_StoreFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("io")

	t.Run("exists read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stub := mock_interfaces.NewMockIWorldState(ctrl)
		stub.EXPECT().GetState(gomock.Any(), "b1").Return(nil, boom)

		_, err := NewBillLedger().Exists(ctx, stub, "b1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected io error, got %v", err)
		}
	})

	t.Run("issue write error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stub := mock_interfaces.NewMockIWorldState(ctrl)
		stub.EXPECT().GetState(gomock.Any(), "b1").Return(nil, nil)
		stub.EXPECT().PutState(gomock.Any(), "b1", gomock.Any()).Return(boom)

		_, err := NewBillLedger().IssueBill(ctx, stub, "b1", "x.com", "d", "1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected io error, got %v", err)
		}
	})

	t.Run("pay does not write when already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stub := mock_interfaces.NewMockIWorldState(ctrl)
		raw, _ := entities.EncodeBill(entities.Bill{ID: "b1", Website: "x.com", Paid: true})
		stub.EXPECT().GetState(gomock.Any(), "b1").Return(raw, nil)

		err := NewBillLedger().PayBill(ctx, stub, "b1")
		if !errors.Is(err, ErrBillAlreadyPaid) {
			t.Fatalf("expected ErrBillAlreadyPaid, got %v", err)
		}
	})

	t.Run("range open error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stub := mock_interfaces.NewMockIWorldState(ctrl)
		stub.EXPECT().GetStateByRange(gomock.Any(), "", "").Return(nil, boom)

		_, err := NewBillLedger().ListBillsByWebsite(ctx, stub, "x.com", true)
		if !errors.Is(err, boom) {
			t.Fatalf("expected io error, got %v", err)
		}
	})

	t.Run("iterator error closes iterator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stub := mock_interfaces.NewMockIWorldState(ctrl)
		it := mock_interfaces.NewMockIStateIterator(ctrl)
		stub.EXPECT().GetStateByRange(gomock.Any(), "", "").Return(it, nil)
		it.EXPECT().HasNext().Return(true)
		it.EXPECT().Next().Return(interfaces.StateKV{}, boom)
		it.EXPECT().Close().Return(nil)

		_, err := NewBillLedger().ListBillsByWebsite(ctx, stub, "x.com", true)
		if !errors.Is(err, boom) {
			t.Fatalf("expected io error, got %v", err)
		}
	})

	t.Run("close error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stub := mock_interfaces.NewMockIWorldState(ctrl)
		it := mock_interfaces.NewMockIStateIterator(ctrl)
		stub.EXPECT().GetStateByRange(gomock.Any(), "", "").Return(it, nil)
		it.EXPECT().HasNext().Return(false)
		it.EXPECT().Close().Return(boom)

		_, err := NewBillLedger().ListBillsByWebsite(ctx, stub, "x.com", true)
		if !errors.Is(err, boom) {
			t.Fatalf("expected close error, got %v", err)
		}
	})

	t.Run("delete error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stub := mock_interfaces.NewMockIWorldState(ctrl)
		stub.EXPECT().GetState(gomock.Any(), "b1").Return([]byte(`{}`), nil)
		stub.EXPECT().DelState(gomock.Any(), "b1").Return(boom)

		err := NewBillLedger().DeleteBill(ctx, stub, "b1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected io error, got %v", err)
		}
	})
}
