package polylimit

import "golang.org/x/time/rate"

// Registry holds one concurrency-safe token bucket per configured quota,
// keyed by category. Multi-window categories hold two independent buckets,
// burst first, sustained second — admission consults them in that order.
//
// The registry's structure is immutable after construction; only the buckets'
// internal token accounting changes as requests are admitted. Buckets handle
// their own synchronization, so the registry is shared without locking.
type Registry struct {
	buckets map[Category][]*rate.Limiter
}

// NewRegistry builds a registry from a configuration. Categories with no
// quota get no bucket and are skipped entirely during admission.
func NewRegistry(cfg *Config) *Registry {
	r := &Registry{buckets: make(map[Category][]*rate.Limiter, numCategories)}

	for _, cat := range Categories() {
		if q, ok := cfg.Quota(cat); ok {
			r.buckets[cat] = []*rate.Limiter{newBucket(q)}
			continue
		}
		if mq, ok := cfg.MultiWindowQuota(cat); ok {
			r.buckets[cat] = []*rate.Limiter{newBucket(mq.Burst), newBucket(mq.Sustained)}
		}
	}

	return r
}

// Buckets returns the token buckets for a category, nil when the category is
// unlimited. The returned slice must not be modified.
func (r *Registry) Buckets(cat Category) []*rate.Limiter {
	return r.buckets[cat]
}

// Limited reports whether any bucket exists for the category.
func (r *Registry) Limited(cat Category) bool {
	return len(r.buckets[cat]) > 0
}

// newBucket converts a quota into a token bucket that refills continuously at
// capacity/period and permits bursts up to the full capacity.
func newBucket(q Quota) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(float64(q.Capacity)/q.Period.Seconds()), q.Capacity)
}
