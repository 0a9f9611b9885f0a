package polylimit

import (
	"fmt"
	"time"
)

// Quota is an immutable token-bucket rate specification: Capacity tokens are
// granted per Period, with bursts of up to Capacity permitted. A Quota is a
// plain value; the concurrency-safe bucket built from it lives in the
// registry.
type Quota struct {
	Capacity int
	Period   time.Duration
}

// NewQuota builds a Quota. A zero or negative capacity or period is a
// programmer error and panics immediately rather than surfacing later as a
// misbehaving limiter.
func NewQuota(capacity int, period time.Duration) Quota {
	if capacity <= 0 {
		panic(fmt.Sprintf("polylimit: quota capacity must be positive, got %d", capacity))
	}
	if period <= 0 {
		panic(fmt.Sprintf("polylimit: quota period must be positive, got %v", period))
	}
	return Quota{Capacity: capacity, Period: period}
}

func (q Quota) String() string {
	return fmt.Sprintf("%d/%v", q.Capacity, q.Period)
}

// MultiWindowQuota pairs a short-term burst quota with a longer sustained
// quota for endpoints limited on both windows (POST/DELETE order). Both
// buckets must independently admit a request.
type MultiWindowQuota struct {
	Burst     Quota
	Sustained Quota
}

func (m MultiWindowQuota) String() string {
	return fmt.Sprintf("burst %v, sustained %v", m.Burst, m.Sustained)
}
