package worldstate

import (
	"context"
	"sort"
	"sync"

	"bill_ledger/internal/usecase/interfaces"
)

// MemoryWorldState keeps the world state in process memory.
//
// Invocations are serialized: Execute holds the store mutex for the whole
// scope, which gives every invocation a fully isolated view.
type MemoryWorldState struct {
	mu     sync.Mutex
	data   map[string][]byte
	closed bool
}

var _ interfaces.IWorldStateProvider = (*MemoryWorldState)(nil)

func NewMemoryWorldState() *MemoryWorldState {
	return &MemoryWorldState{data: make(map[string][]byte)}
}

func (m *MemoryWorldState) Execute(ctx context.Context, fn func(stub interfaces.IWorldState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	stub := newStagedState(memoryReader{m})
	if err := fn(stub); err != nil {
		return err
	}
	for _, w := range stub.writeSet() {
		if w.deleted() {
			delete(m.data, w.key)
			continue
		}
		m.data[w.key] = w.value
	}
	return nil
}

// Seed writes raw values outside any scope. Meant for fixtures and tests.
func (m *MemoryWorldState) Seed(values map[string][]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.data[k] = cloneBytes(v)
	}
}

// Len reports how many keys are committed.
func (m *MemoryWorldState) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *MemoryWorldState) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// memoryReader reads committed data. Callers already hold m.mu.
type memoryReader struct {
	m *MemoryWorldState
}

func (r memoryReader) get(_ context.Context, key string) ([]byte, error) {
	v, ok := r.m.data[key]
	if !ok {
		return nil, nil
	}
	return cloneBytes(v), nil
}

func (r memoryReader) scan(_ context.Context, startKey, endKey string) ([]interfaces.StateKV, error) {
	keys := make([]string, 0, len(r.m.data))
	for k := range r.m.data {
		if inRange(k, startKey, endKey) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]interfaces.StateKV, 0, len(keys))
	for _, k := range keys {
		out = append(out, interfaces.StateKV{Key: k, Value: cloneBytes(r.m.data[k])})
	}
	return out, nil
}
