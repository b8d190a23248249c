package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store used by tests and by STORE_DRIVER=memory.
// Documents live in a map guarded by an RWMutex and vanish when the
// process exits.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Read returns a copy of the document under key, or ok=false when absent.
func (m *Memory) Read(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

// Write replaces the document under key.
func (m *Memory) Write(_ context.Context, key string, raw []byte) error {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	m.mu.Lock()
	m.data[key] = cp
	m.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error { return nil }
