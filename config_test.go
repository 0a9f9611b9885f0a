package polylimit

import (
	"testing"
	"time"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	singles := []struct {
		cat      Category
		capacity int
		period   time.Duration
	}{
		{CategoryGlobal, 15000, 10 * time.Second},
		{CategoryClobGeneral, 9000, 10 * time.Second},
		{CategoryClobBook, 1500, 10 * time.Second},
		{CategoryClobPrice, 1500, 10 * time.Second},
		{CategoryClobMidpoint, 1500, 10 * time.Second},
		{CategoryClobSubmit, 25, time.Minute},
		{CategoryClobUserPnl, 200, 10 * time.Second},
		{CategoryGammaGeneral, 4000, 10 * time.Second},
		{CategoryGammaEvents, 500, 10 * time.Second},
		{CategoryGammaMarkets, 300, 10 * time.Second},
		{CategoryGammaMarketsEvents, 900, 10 * time.Second},
		{CategoryGammaComments, 200, 10 * time.Second},
		{CategoryGammaTags, 200, 10 * time.Second},
		{CategoryGammaSearch, 350, 10 * time.Second},
		{CategoryDataGeneral, 1000, 10 * time.Second},
		{CategoryDataTrades, 200, 10 * time.Second},
		{CategoryDataPositions, 150, 10 * time.Second},
		{CategoryDataClosedPositions, 150, 10 * time.Second},
	}

	for _, tt := range singles {
		t.Run(tt.cat.String(), func(t *testing.T) {
			q, ok := cfg.Quota(tt.cat)
			if !ok {
				t.Fatalf("no quota configured for %s", tt.cat)
			}
			if q.Capacity != tt.capacity || q.Period != tt.period {
				t.Errorf("quota = %v, want %d/%v", q, tt.capacity, tt.period)
			}
		})
	}

	multis := []struct {
		cat       Category
		burst     Quota
		sustained Quota
	}{
		{CategoryClobPostOrder, NewQuota(3500, 10*time.Second), NewQuota(36000, 10*time.Minute)},
		{CategoryClobDeleteOrder, NewQuota(3000, 10*time.Second), NewQuota(30000, 10*time.Minute)},
	}

	for _, tt := range multis {
		t.Run(tt.cat.String(), func(t *testing.T) {
			mq, ok := cfg.MultiWindowQuota(tt.cat)
			if !ok {
				t.Fatalf("no multi-window quota configured for %s", tt.cat)
			}
			if mq.Burst != tt.burst {
				t.Errorf("burst = %v, want %v", mq.Burst, tt.burst)
			}
			if mq.Sustained != tt.sustained {
				t.Errorf("sustained = %v, want %v", mq.Sustained, tt.sustained)
			}
		})
	}

	// Bridge has no documented limit.
	if cfg.Limited(CategoryBridgeGeneral) {
		t.Error("bridge-general should be unlimited by default")
	}
}

func TestDisabledConfig(t *testing.T) {
	cfg := DisabledConfig()
	for _, cat := range Categories() {
		if cfg.Limited(cat) {
			t.Errorf("%s: expected unlimited", cat)
		}
	}
}

func TestConfigWithQuota(t *testing.T) {
	cfg := DefaultConfig().WithQuota(CategoryGammaSearch, NewQuota(100, 10*time.Second))

	q, ok := cfg.Quota(CategoryGammaSearch)
	if !ok {
		t.Fatal("expected quota after override")
	}
	if q.Capacity != 100 {
		t.Errorf("capacity = %d, want 100", q.Capacity)
	}

	// Replacing a multi-window category with a single quota clears the pair.
	cfg.WithQuota(CategoryClobPostOrder, NewQuota(10, time.Second))
	if _, ok := cfg.MultiWindowQuota(CategoryClobPostOrder); ok {
		t.Error("multi-window quota should be cleared by WithQuota")
	}
	if _, ok := cfg.Quota(CategoryClobPostOrder); !ok {
		t.Error("single quota should be set")
	}
}

func TestConfigWithMultiWindowQuota(t *testing.T) {
	mq := MultiWindowQuota{
		Burst:     NewQuota(10, time.Second),
		Sustained: NewQuota(100, time.Minute),
	}
	cfg := DefaultConfig().WithMultiWindowQuota(CategoryClobBook, mq)

	if _, ok := cfg.Quota(CategoryClobBook); ok {
		t.Error("single quota should be cleared by WithMultiWindowQuota")
	}
	got, ok := cfg.MultiWindowQuota(CategoryClobBook)
	if !ok {
		t.Fatal("expected multi-window quota after override")
	}
	if got != mq {
		t.Errorf("quota = %v, want %v", got, mq)
	}
}

func TestConfigWithout(t *testing.T) {
	cfg := DefaultConfig().
		Without(CategoryGlobal).
		Without(CategoryClobPostOrder)

	if cfg.Limited(CategoryGlobal) {
		t.Error("global should be unlimited after Without")
	}
	if cfg.Limited(CategoryClobPostOrder) {
		t.Error("clob-post-order should be unlimited after Without")
	}

	// Other categories are untouched.
	if !cfg.Limited(CategoryClobGeneral) {
		t.Error("clob-general should still be limited")
	}
}
