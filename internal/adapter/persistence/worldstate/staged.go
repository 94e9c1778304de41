// Package worldstate binds the ledger's key-value capability onto concrete
// engines. Every provider runs an invocation in its own scope: reads see the
// invocation's pending writes, and the write set is applied only when the
// invocation succeeds.
package worldstate

import (
	"context"
	"errors"
	"sort"

	"bill_ledger/internal/usecase/interfaces"
)

var (
	ErrEmptyKey      = errors.New("world state: empty key")
	ErrNilValue      = errors.New("world state: nil value")
	ErrStateConflict = errors.New("world state: concurrent modification")
	ErrClosed        = errors.New("world state: provider closed")
)

// committedReader is the read side of a backend outside any scope.
type committedReader interface {
	get(ctx context.Context, key string) ([]byte, error)
	scan(ctx context.Context, startKey, endKey string) ([]interfaces.StateKV, error)
}

// stagedWrite is one buffered mutation. A nil value is a delete.
type stagedWrite struct {
	key   string
	value []byte
}

func (w stagedWrite) deleted() bool { return w.value == nil }

// observedRead remembers what a key held in the committed store when the
// scope first looked at it. Backends without native transactions use it to
// guard their commit.
type observedRead struct {
	value  []byte
	exists bool
}

// stagedState buffers writes over a committed reader.
type stagedState struct {
	committed committedReader
	writes    map[string]stagedWrite
	reads     map[string]observedRead
}

var _ interfaces.IWorldState = (*stagedState)(nil)

func newStagedState(committed committedReader) *stagedState {
	return &stagedState{
		committed: committed,
		writes:    make(map[string]stagedWrite),
		reads:     make(map[string]observedRead),
	}
}

func (s *stagedState) GetState(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if w, ok := s.writes[key]; ok {
		if w.deleted() {
			return nil, nil
		}
		return cloneBytes(w.value), nil
	}
	v, err := s.committed.get(ctx, key)
	if err != nil {
		return nil, err
	}
	if _, seen := s.reads[key]; !seen {
		s.reads[key] = observedRead{value: cloneBytes(v), exists: v != nil}
	}
	return v, nil
}

func (s *stagedState) PutState(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == nil {
		return ErrNilValue
	}
	s.writes[key] = stagedWrite{key: key, value: cloneBytes(value)}
	return nil
}

func (s *stagedState) DelState(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.writes[key] = stagedWrite{key: key}
	return nil
}

func (s *stagedState) GetStateByRange(ctx context.Context, startKey, endKey string) (interfaces.IStateIterator, error) {
	rows, err := s.committed.scan(ctx, startKey, endKey)
	if err != nil {
		return nil, err
	}
	if len(s.writes) == 0 {
		return newSliceIterator(rows), nil
	}

	merged := make(map[string][]byte, len(rows)+len(s.writes))
	for _, kv := range rows {
		merged[kv.Key] = kv.Value
	}
	for k, w := range s.writes {
		if !inRange(k, startKey, endKey) {
			continue
		}
		if w.deleted() {
			delete(merged, k)
			continue
		}
		merged[k] = cloneBytes(w.value)
	}

	out := make([]interfaces.StateKV, 0, len(merged))
	for k, v := range merged {
		out = append(out, interfaces.StateKV{Key: k, Value: v})
	}
	sortKVs(out)
	return newSliceIterator(out), nil
}

// writeSet returns the buffered writes in key order.
func (s *stagedState) writeSet() []stagedWrite {
	out := make([]stagedWrite, 0, len(s.writes))
	for _, w := range s.writes {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

// observed returns what the scope saw for key in the committed store, if it
// read it before writing.
func (s *stagedState) observed(key string) (observedRead, bool) {
	r, ok := s.reads[key]
	return r, ok
}

// sliceIterator walks a materialized range result.
type sliceIterator struct {
	rows   []interfaces.StateKV
	pos    int
	closed bool
}

func newSliceIterator(rows []interfaces.StateKV) *sliceIterator {
	return &sliceIterator{rows: rows}
}

func (it *sliceIterator) HasNext() bool {
	return !it.closed && it.pos < len(it.rows)
}

func (it *sliceIterator) Next() (interfaces.StateKV, error) {
	if !it.HasNext() {
		return interfaces.StateKV{}, errors.New("world state: iterator exhausted")
	}
	kv := it.rows[it.pos]
	it.pos++
	return interfaces.StateKV{Key: kv.Key, Value: cloneBytes(kv.Value)}, nil
}

func (it *sliceIterator) Close() error {
	it.closed = true
	return nil
}

// inRange reports whether key is in [start, end). Empty bounds are open.
func inRange(key, start, end string) bool {
	if start != "" && key < start {
		return false
	}
	if end != "" && key >= end {
		return false
	}
	return true
}

func sortKVs(kvs []interfaces.StateKV) {
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
