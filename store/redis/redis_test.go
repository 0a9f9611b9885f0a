package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/OxideOps/polylimit/store"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client)
}

func testWindow(start time.Time) store.Window {
	return store.Window{
		Duration:    10 * time.Second,
		BucketKey:   strconv.FormatInt(start.Unix(), 10),
		BucketStart: start,
	}
}

var (
	bucketA = testWindow(time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC))
	bucketB = testWindow(time.Date(2026, 1, 15, 14, 30, 10, 0, time.UTC))
)

func TestRedisStoreIncrement(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		got, err := s.Increment(ctx, "clob-book", bucketA)
		if err != nil {
			t.Fatal(err)
		}
		if got != i {
			t.Errorf("increment %d: got %d, want %d", i, got, i)
		}
	}
}

func TestRedisStoreWindowRollover(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	s.Increment(ctx, "global", bucketA)
	s.Increment(ctx, "global", bucketA)

	got, _ := s.Increment(ctx, "global", bucketB)
	if got != 1 {
		t.Errorf("after rollover: got %d, want 1", got)
	}
}

func TestRedisStoreGet(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	got, _ := s.Get(ctx, "gamma-events", bucketA)
	if got != 0 {
		t.Errorf("initial get: got %d, want 0", got)
	}

	s.Increment(ctx, "gamma-events", bucketA)
	s.Increment(ctx, "gamma-events", bucketA)

	got, _ = s.Get(ctx, "gamma-events", bucketA)
	if got != 2 {
		t.Errorf("after 2 increments: got %d, want 2", got)
	}
}

func TestRedisStoreReset(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	s.Increment(ctx, "data-trades", bucketA)
	s.Reset(ctx, "data-trades")

	got, _ := s.Get(ctx, "data-trades", bucketA)
	if got != 0 {
		t.Errorf("after reset: got %d, want 0", got)
	}
}
