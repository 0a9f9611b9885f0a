package polylimit

import (
	"strconv"
	"time"

	"github.com/OxideOps/polylimit/store"
)

// usageWindow derives the current usage bucket for a quota period. Buckets
// are aligned to the Unix epoch so that all processes sharing a persistent
// store agree on bucket boundaries.
func usageWindow(period time.Duration, now time.Time) store.Window {
	start := now.UTC().Truncate(period)
	return store.Window{
		Duration:    period,
		BucketKey:   strconv.FormatInt(start.Unix(), 10),
		BucketStart: start,
	}
}
