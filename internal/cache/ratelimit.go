package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// limiterClient is the slice of the Redis API the limiter needs,
// satisfied by *redis.Client and fakeable in tests.
type limiterClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
}

// RateLimiter is a fixed-window counter per caller, backed by Redis so
// the limit holds across instances.
type RateLimiter struct {
	rdb    limiterClient
	limit  int
	window time.Duration
}

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, limit: limit, window: window}
}

// Allow reports whether the caller identified by key may proceed. Only
// the increment that creates the key sets the expiry, so the window
// runs from the first request and the counter resets on schedule even
// under steady traffic.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:" + key

	count, err := rl.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if count == 1 {
		if err := rl.rdb.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire %s: %w", key, err)
		}
	}
	return count <= int64(rl.limit), nil
}
