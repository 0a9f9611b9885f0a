package polylimit

import "time"

// Config maps each rate-limit category to an optional quota. A category with
// no quota is unlimited: no bucket is built for it and admission skips it.
//
// Build a Config from one of the presets ([DefaultConfig], [DisabledConfig])
// and adjust individual categories with the chainable override methods:
//
//	cfg := polylimit.DefaultConfig().
//		WithQuota(polylimit.CategoryGammaSearch, polylimit.NewQuota(100, 10*time.Second)).
//		Without(polylimit.CategoryGlobal)
//
// A Config is consumed once when the [Limiter] is constructed; the registry
// built from it is immutable afterwards.
type Config struct {
	single map[Category]Quota
	multi  map[Category]MultiWindowQuota
}

func newConfig() *Config {
	return &Config{
		single: make(map[Category]Quota),
		multi:  make(map[Category]MultiWindowQuota),
	}
}

// DefaultConfig returns the rate limits documented by Polymarket. Bridge has
// no documented limit and is left unlimited.
func DefaultConfig() *Config {
	perTenSeconds := func(n int) Quota {
		return NewQuota(n, 10*time.Second)
	}
	perTenMinutes := func(n int) Quota {
		return NewQuota(n, 10*time.Minute)
	}

	cfg := newConfig()

	cfg.single[CategoryGlobal] = perTenSeconds(15000)

	// CLOB limits.
	cfg.single[CategoryClobGeneral] = perTenSeconds(9000)
	cfg.single[CategoryClobBook] = perTenSeconds(1500)
	cfg.single[CategoryClobPrice] = perTenSeconds(1500)
	cfg.single[CategoryClobMidpoint] = perTenSeconds(1500)
	cfg.multi[CategoryClobPostOrder] = MultiWindowQuota{
		Burst:     perTenSeconds(3500),
		Sustained: perTenMinutes(36000),
	}
	cfg.multi[CategoryClobDeleteOrder] = MultiWindowQuota{
		Burst:     perTenSeconds(3000),
		Sustained: perTenMinutes(30000),
	}
	cfg.single[CategoryClobSubmit] = NewQuota(25, time.Minute)
	cfg.single[CategoryClobUserPnl] = perTenSeconds(200)

	// Gamma limits.
	cfg.single[CategoryGammaGeneral] = perTenSeconds(4000)
	cfg.single[CategoryGammaEvents] = perTenSeconds(500)
	cfg.single[CategoryGammaMarkets] = perTenSeconds(300)
	cfg.single[CategoryGammaMarketsEvents] = perTenSeconds(900)
	cfg.single[CategoryGammaComments] = perTenSeconds(200)
	cfg.single[CategoryGammaTags] = perTenSeconds(200)
	cfg.single[CategoryGammaSearch] = perTenSeconds(350)

	// Data limits.
	cfg.single[CategoryDataGeneral] = perTenSeconds(1000)
	cfg.single[CategoryDataTrades] = perTenSeconds(200)
	cfg.single[CategoryDataPositions] = perTenSeconds(150)
	cfg.single[CategoryDataClosedPositions] = perTenSeconds(150)

	return cfg
}

// DisabledConfig returns a configuration with every category unlimited. No
// bucket is built for any category and admission never waits.
func DisabledConfig() *Config {
	return newConfig()
}

// WithQuota replaces the quota for a category, making it single-window.
func (c *Config) WithQuota(cat Category, q Quota) *Config {
	delete(c.multi, cat)
	c.single[cat] = q
	return c
}

// WithMultiWindowQuota replaces the quota for a category with a burst plus
// sustained pair.
func (c *Config) WithMultiWindowQuota(cat Category, q MultiWindowQuota) *Config {
	delete(c.single, cat)
	c.multi[cat] = q
	return c
}

// Without removes any quota for a category, making it unlimited.
func (c *Config) Without(cat Category) *Config {
	delete(c.single, cat)
	delete(c.multi, cat)
	return c
}

// Quota returns the single-window quota for a category, if one is set.
func (c *Config) Quota(cat Category) (Quota, bool) {
	q, ok := c.single[cat]
	return q, ok
}

// MultiWindowQuota returns the multi-window quota for a category, if one is set.
func (c *Config) MultiWindowQuota(cat Category) (MultiWindowQuota, bool) {
	q, ok := c.multi[cat]
	return q, ok
}

// Limited reports whether any quota is configured for the category.
func (c *Config) Limited(cat Category) bool {
	_, single := c.single[cat]
	_, multi := c.multi[cat]
	return single || multi
}

// period returns the shortest window configured for a category. Used for
// usage bucketing; false when the category is unlimited.
func (c *Config) period(cat Category) (time.Duration, bool) {
	if q, ok := c.single[cat]; ok {
		return q.Period, true
	}
	if q, ok := c.multi[cat]; ok {
		return q.Burst.Period, true
	}
	return 0, false
}
