package store

import (
	"context"
	"time"
)

// Window describes the quota window a counter is bucketed by. The bucket key
// changes when the window rolls over, resetting the effective count. Callers
// derive it from a category's quota period so the store stays independent of
// the parent package.
type Window struct {
	Duration    time.Duration
	BucketKey   string
	BucketStart time.Time
}

// Store defines the interface for usage-counter backends. Keys are rate-limit
// category names.
type Store interface {
	// Increment atomically increments the counter for the given key in the
	// current window bucket and returns the new count.
	Increment(ctx context.Context, key string, w Window) (current int64, err error)

	// Get returns the current counter value for the key in the active window bucket.
	Get(ctx context.Context, key string, w Window) (current int64, err error)

	// Reset removes the counter for the given key.
	Reset(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
