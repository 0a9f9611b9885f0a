package polylimit

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/OxideOps/polylimit/store"
)

// Limiter is the main entry point for the polylimit library. It classifies
// outgoing HTTP requests against the Polymarket APIs and suspends callers
// until every applicable rate-limit bucket admits the request.
type Limiter struct {
	cfg      *Config
	registry *Registry
	usage    store.Store
	onWait   func(Category, time.Duration)
}

// New creates a Limiter with the given options. Without a WithConfig option,
// Polymarket's documented default limits are used.
func New(opts ...Option) *Limiter {
	l := &Limiter{}
	for _, o := range opts {
		o(l)
	}
	if l.cfg == nil {
		l.cfg = DefaultConfig()
	}
	l.registry = NewRegistry(l.cfg)
	return l
}

// Registry returns the limiter's bucket registry.
func (l *Limiter) Registry() *Registry {
	return l.registry
}

// Admit suspends the caller until every applicable bucket grants a token, in
// order from most to least specific: the endpoint bucket(s) — burst then
// sustained for multi-window endpoints — then the API-general bucket, then
// the global bucket. Steps with no configured bucket are skipped. Admission
// never rejects; the only error is a cancelled or expired context.
//
// Each step consumes one token from its bucket with no rollback across
// steps: a token spent at the endpoint tier stays spent even if the caller
// then waits (or is cancelled) at the global tier. This overconsumption
// under contention is accepted in exchange for keeping the check
// non-transactional. Cancelling the context during a wait returns the token
// reserved for that step.
func (l *Limiter) Admit(ctx context.Context, api APIType, endpoint Endpoint) error {
	if cat, ok := endpoint.category(); ok {
		if err := l.waitCategory(ctx, cat); err != nil {
			return err
		}
	}

	if cat, ok := api.generalCategory(); ok {
		if err := l.waitCategory(ctx, cat); err != nil {
			return err
		}
	}

	if err := l.waitCategory(ctx, CategoryGlobal); err != nil {
		return err
	}

	l.record(ctx, api, endpoint)
	return nil
}

// TryAdmit reports whether a request would be admitted right now, consuming
// tokens on success. It checks the same buckets in the same order as Admit
// but never waits: the first exhausted bucket denies the request. Tokens
// taken from buckets checked before the denial are not returned, matching
// Admit's non-transactional accounting.
func (l *Limiter) TryAdmit(api APIType, endpoint Endpoint) bool {
	if cat, ok := endpoint.category(); ok {
		if !l.allowCategory(cat) {
			return false
		}
	}

	if cat, ok := api.generalCategory(); ok {
		if !l.allowCategory(cat) {
			return false
		}
	}

	if !l.allowCategory(CategoryGlobal) {
		return false
	}

	l.record(context.Background(), api, endpoint)
	return true
}

// Check classifies a raw URL and method and admits the request. It is a
// convenience wrapper over Classify and Admit for callers that do not hold a
// parsed URL.
func (l *Limiter) Check(ctx context.Context, method, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("polylimit: parse url: %w", err)
	}
	api, endpoint := Classify(u, method)
	return l.Admit(ctx, api, endpoint)
}

func (l *Limiter) waitCategory(ctx context.Context, cat Category) error {
	for _, b := range l.registry.Buckets(cat) {
		if err := l.waitBucket(ctx, cat, b); err != nil {
			return err
		}
	}
	return nil
}

// waitBucket reserves a token and sleeps out the predicted delay. The
// reservation is cancelled (token returned) if the context ends first.
func (l *Limiter) waitBucket(ctx context.Context, cat Category, b *rate.Limiter) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r := b.Reserve()
	delay := r.Delay()
	if delay == 0 {
		return nil
	}

	if l.onWait != nil {
		l.onWait(cat, delay)
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (l *Limiter) allowCategory(cat Category) bool {
	for _, b := range l.registry.Buckets(cat) {
		if !b.Allow() {
			return false
		}
	}
	return true
}

// record increments the usage counter of every category the admission
// consulted, in each category's current window bucket. Recording is
// best-effort: store errors do not fail an already-admitted request and
// surface through Usage and Snapshot instead.
func (l *Limiter) record(ctx context.Context, api APIType, endpoint Endpoint) {
	if l.usage == nil {
		return
	}

	now := time.Now()
	cats := make([]Category, 0, 3)
	if cat, ok := endpoint.category(); ok {
		cats = append(cats, cat)
	}
	if cat, ok := api.generalCategory(); ok {
		cats = append(cats, cat)
	}
	cats = append(cats, CategoryGlobal)

	for _, cat := range cats {
		period, ok := l.cfg.period(cat)
		if !ok {
			// Unlimited categories have no window to bucket by.
			continue
		}
		l.usage.Increment(ctx, cat.String(), usageWindow(period, now))
	}
}

// Usage returns the number of admissions recorded for a category in its
// current window. It requires a usage store and a configured quota for the
// category.
func (l *Limiter) Usage(ctx context.Context, cat Category) (int64, error) {
	if l.usage == nil {
		return 0, fmt.Errorf("polylimit: no usage store configured")
	}
	period, ok := l.cfg.period(cat)
	if !ok {
		return 0, fmt.Errorf("polylimit: category %s has no quota", cat)
	}
	return l.usage.Get(ctx, cat.String(), usageWindow(period, time.Now()))
}

// ResetUsage clears the recorded usage for a category.
func (l *Limiter) ResetUsage(ctx context.Context, cat Category) error {
	if l.usage == nil {
		return fmt.Errorf("polylimit: no usage store configured")
	}
	return l.usage.Reset(ctx, cat.String())
}

// CategoryUsage holds a point-in-time admission count for a single category.
type CategoryUsage struct {
	Category Category
	Current  int64
}

// Snapshot returns the recorded usage for every limited category in its
// current window bucket.
func (l *Limiter) Snapshot(ctx context.Context) ([]CategoryUsage, error) {
	if l.usage == nil {
		return nil, fmt.Errorf("polylimit: no usage store configured")
	}

	now := time.Now()
	out := make([]CategoryUsage, 0, numCategories)

	for _, cat := range Categories() {
		period, ok := l.cfg.period(cat)
		if !ok {
			continue
		}
		current, err := l.usage.Get(ctx, cat.String(), usageWindow(period, now))
		if err != nil {
			return nil, fmt.Errorf("polylimit: snapshot %s: %w", cat, err)
		}
		out = append(out, CategoryUsage{Category: cat, Current: current})
	}

	return out, nil
}

// Close releases resources held by the usage store, if any.
func (l *Limiter) Close() error {
	if l.usage == nil {
		return nil
	}
	return l.usage.Close()
}
