package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeLimiterClient counts increments in memory and records every
// expiry call, standing in for Redis.
type fakeLimiterClient struct {
	counts  map[string]int64
	expires map[string]int
	incrErr error
}

func newFakeLimiterClient() *fakeLimiterClient {
	return &fakeLimiterClient{
		counts:  make(map[string]int64),
		expires: make(map[string]int),
	}
}

func (f *fakeLimiterClient) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.incrErr != nil {
		cmd.SetErr(f.incrErr)
		return cmd
	}
	f.counts[key]++
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeLimiterClient) Expire(ctx context.Context, key string, _ time.Duration) *redis.BoolCmd {
	f.expires[key]++
	cmd := redis.NewBoolCmd(ctx)
	cmd.SetVal(true)
	return cmd
}

// expire simulates Redis evicting the key at the end of its window.
func (f *fakeLimiterClient) expire(key string) {
	delete(f.counts, key)
}

func TestRateLimiter_Allow(t *testing.T) {
	fake := newFakeLimiterClient()
	rl := &RateLimiter{rdb: fake, limit: 3, window: time.Minute}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := rl.Allow(ctx, "user-a")
		if err != nil {
			t.Fatalf("Allow %d: %v", i, err)
		}
		if !allowed {
			t.Errorf("Allow call %d = false, want true under the limit", i+1)
		}
	}
	allowed, err := rl.Allow(ctx, "user-a")
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if allowed {
		t.Error("Allow = true past the limit, want false")
	}
}

func TestRateLimiter_ExpirySetOncePerWindow(t *testing.T) {
	fake := newFakeLimiterClient()
	rl := &RateLimiter{rdb: fake, limit: 60, window: time.Minute}
	ctx := context.Background()
	key := "ratelimit:user-a"

	// steady under-limit traffic within one window must not reset the
	// window; only the increment that creates the key sets the expiry
	for i := 0; i < 10; i++ {
		if _, err := rl.Allow(ctx, "user-a"); err != nil {
			t.Fatalf("Allow %d: %v", i, err)
		}
	}
	if got := fake.expires[key]; got != 1 {
		t.Errorf("expiry set %d times in one window, want 1", got)
	}

	// after the window the counter starts over and gets a fresh expiry
	fake.expire(key)
	allowed, err := rl.Allow(ctx, "user-a")
	if err != nil {
		t.Fatalf("Allow after window: %v", err)
	}
	if !allowed {
		t.Error("Allow = false in a fresh window, want true")
	}
	if got := fake.counts[key]; got != 1 {
		t.Errorf("count = %d in a fresh window, want 1", got)
	}
	if got := fake.expires[key]; got != 2 {
		t.Errorf("expiry set %d times across two windows, want 2", got)
	}
}

func TestRateLimiter_CountResetsAcrossWindows(t *testing.T) {
	fake := newFakeLimiterClient()
	rl := &RateLimiter{rdb: fake, limit: 2, window: time.Minute}
	ctx := context.Background()

	// a caller pacing itself under the limit stays allowed forever
	for window := 0; window < 5; window++ {
		for i := 0; i < 2; i++ {
			allowed, err := rl.Allow(ctx, "heartbeat")
			if err != nil {
				t.Fatalf("window %d call %d: %v", window, i, err)
			}
			if !allowed {
				t.Fatalf("window %d call %d blocked, want allowed", window, i)
			}
		}
		fake.expire("ratelimit:heartbeat")
	}
}

func TestRateLimiter_RedisError(t *testing.T) {
	fake := newFakeLimiterClient()
	fake.incrErr = errors.New("connection refused")
	rl := &RateLimiter{rdb: fake, limit: 3, window: time.Minute}

	if _, err := rl.Allow(context.Background(), "user-a"); err == nil {
		t.Error("Allow with Redis down = nil error, want error for the middleware to fail open on")
	}
}

func TestRateLimiter_KeysIndependent(t *testing.T) {
	fake := newFakeLimiterClient()
	rl := &RateLimiter{rdb: fake, limit: 1, window: time.Minute}
	ctx := context.Background()

	if allowed, _ := rl.Allow(ctx, "user-a"); !allowed {
		t.Fatal("first call for user-a blocked")
	}
	if allowed, _ := rl.Allow(ctx, "user-a"); allowed {
		t.Error("second call for user-a allowed, want blocked")
	}
	if allowed, _ := rl.Allow(ctx, "user-b"); !allowed {
		t.Error("first call for user-b blocked by user-a's count")
	}
}
