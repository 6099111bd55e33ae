package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Throttle provides a fixed-window rate limit backed by Redis.
// Key format: throttle:<scope>:<key>; the counter expires when the window
// rolls over.
type Throttle struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewThrottle creates a Throttle allowing limit requests per window.
func NewThrottle(client *redis.Client, limit int, window time.Duration) *Throttle {
	return &Throttle{client: client, limit: limit, window: window}
}

// Allow records one request for scope/key and reports whether it still fits
// the current window.
func (t *Throttle) Allow(ctx context.Context, scope, key string) (bool, error) {
	k := fmt.Sprintf("throttle:%s:%s", scope, key)

	n, err := t.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, k, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= int64(t.limit), nil
}
