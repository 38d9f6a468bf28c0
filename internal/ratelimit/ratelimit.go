package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts chat requests per client in hourly fixed windows
// backed by Redis, so limits hold across restarts and replicas.
type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(redisURL string) (*RateLimiter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &RateLimiter{client: redis.NewClient(opt)}, nil
}

// Allow increments the client's counter for the current hour and reports
// whether it is still within the limit.
func (rl *RateLimiter) Allow(ctx context.Context, clientID string, limit int) (bool, error) {
	key := fmt.Sprintf("ratelimit:chat:%s:%s", clientID, time.Now().Format("2006-01-02-15"))

	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		rl.client.Expire(ctx, key, time.Hour)
	}

	return count <= int64(limit), nil
}

func (rl *RateLimiter) Close() error {
	return rl.client.Close()
}
