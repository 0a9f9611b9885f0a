package polylimit

import (
	"time"

	"github.com/OxideOps/polylimit/store"
)

// Option configures the Limiter.
type Option func(*Limiter)

// WithConfig sets the rate-limit configuration. If not provided, Polymarket's
// documented defaults are used.
func WithConfig(cfg *Config) Option {
	return func(l *Limiter) {
		l.cfg = cfg
	}
}

// WithUsageStore enables usage tracking: every admitted request increments a
// per-category counter in the store. Tracking is observational only and never
// affects admission decisions.
func WithUsageStore(s store.Store) Option {
	return func(l *Limiter) {
		l.usage = s
	}
}

// WithOnWait sets a callback that fires whenever an admission step has to
// wait for a bucket to refill, with the category and the predicted delay.
// The callback runs on the admitting goroutine and should return quickly.
func WithOnWait(fn func(Category, time.Duration)) Option {
	return func(l *Limiter) {
		l.onWait = fn
	}
}
