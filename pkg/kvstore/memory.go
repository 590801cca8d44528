package kvstore

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps everything in a map. Used by tests and the "memory" driver.
type MemoryStore struct {
	writeMu sync.Mutex // serializes Update
	mu      sync.RWMutex
	data    map[string]string
	closed  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	return m.Update(ctx, func(b Bucket) error {
		return b.Set(ctx, key, value)
	})
}

func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	return m.Update(ctx, func(b Bucket) error {
		return b.Remove(ctx, key)
	})
}

func (m *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.data = make(map[string]string)
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, fn func(b Bucket) error) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	tx := &memoryTx{
		parent:  m,
		writes:  make(map[string]string),
		removed: make(map[string]bool),
	}
	if err := fn(tx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	for k := range tx.removed {
		delete(m.data, k)
	}
	for k, v := range tx.writes {
		m.data[k] = v
	}
	return nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// memoryTx stages writes until the Update closure succeeds.
type memoryTx struct {
	parent  *MemoryStore
	writes  map[string]string
	removed map[string]bool
}

func (t *memoryTx) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := t.writes[key]; ok {
		return v, true, nil
	}
	if t.removed[key] {
		return "", false, nil
	}
	return t.parent.Get(ctx, key)
}

func (t *memoryTx) Set(ctx context.Context, key, value string) error {
	delete(t.removed, key)
	t.writes[key] = value
	return nil
}

func (t *memoryTx) Remove(ctx context.Context, key string) error {
	delete(t.writes, key)
	t.removed[key] = true
	return nil
}
