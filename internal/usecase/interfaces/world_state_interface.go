package interfaces

import "context"

// StateKV is one (key, value) pair yielded by a range scan.
type StateKV struct {
	Key   string
	Value []byte
}

// IWorldState is the key-value capability handed to the ledger for a single
// invocation. Implementations are supplied by the hosting runtime and are
// bound to that invocation's transaction scope.
//
// GetState returns nil (and no error) when the key is absent.
// GetStateByRange yields keys in [startKey, endKey) in the store's native key
// order; an empty startKey or endKey means unbounded on that side.
type IWorldState interface {
	GetState(ctx context.Context, key string) ([]byte, error)
	PutState(ctx context.Context, key string, value []byte) error
	DelState(ctx context.Context, key string) error
	GetStateByRange(ctx context.Context, startKey, endKey string) (IStateIterator, error)
}

// IStateIterator walks the result of a range scan. Callers must Close it.
type IStateIterator interface {
	HasNext() bool
	Next() (StateKV, error)
	Close() error
}

// IWorldStateProvider runs one invocation inside an isolated scope offered by
// the backing engine. Writes made through stub are applied only when fn
// returns nil.
type IWorldStateProvider interface {
	Execute(ctx context.Context, fn func(stub IWorldState) error) error
	Close() error
}
