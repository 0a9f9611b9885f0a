package store

import (
	"context"
	"sync"
)

type counter struct {
	count     int64
	bucketKey string
}

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store implementation.
// It is safe for concurrent use. Counters are lost on process restart.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*counter
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]*counter),
	}
}

// Increment atomically adds one to the counter for key in the current window
// bucket. A stale bucket key means the window rolled over and the counter
// restarts.
func (m *MemoryStore) Increment(_ context.Context, key string, w Window) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[key]
	if !ok || c.bucketKey != w.BucketKey {
		c = &counter{bucketKey: w.BucketKey}
		m.counters[key] = c
	}

	c.count++
	return c.count, nil
}

// Get returns the current counter value for key in the active window bucket.
func (m *MemoryStore) Get(_ context.Context, key string, w Window) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[key]
	if !ok || c.bucketKey != w.BucketKey {
		return 0, nil
	}
	return c.count, nil
}

// Reset removes the counter for the given key.
func (m *MemoryStore) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.counters, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
