package cache

import (
	"context"
	"fmt"
	"time"
)

// RedisCounter counts hits per key inside fixed windows.
type RedisCounter struct {
	client CacheClient
	prefix string
}

func NewRedisCounter(client CacheClient, prefix string) *RedisCounter {
	return &RedisCounter{client: client, prefix: prefix}
}

// Increment adds a hit to key and returns the hits seen in the current
// window together with the time left until the window resets.
func (c *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	fullKey := c.prefix + key

	count, err := c.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("incrementing %s: %w", fullKey, err)
	}

	if count == 1 {
		if err := c.client.PExpire(ctx, fullKey, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("setting expiry on %s: %w", fullKey, err)
		}
		return count, window, nil
	}

	ttl, err := c.client.PTTL(ctx, fullKey).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("reading expiry of %s: %w", fullKey, err)
	}
	// a key left without expiry would never reset
	if ttl < 0 {
		if err := c.client.PExpire(ctx, fullKey, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("setting expiry on %s: %w", fullKey, err)
		}
		ttl = window
	}

	return count, ttl, nil
}

func (c *RedisCounter) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
