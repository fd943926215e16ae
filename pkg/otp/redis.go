package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// RedisCache stores verification codes in Redis with server-side expiry.
// Safe for concurrent use across processes.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a cache on the given client. A non-positive ttl
// falls back to DefaultTTL.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Issue generates a code and stores it with SET, which both overwrites any
// prior entry and resets the TTL in one round trip.
func (c *RedisCache) Issue(ctx context.Context, email string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	if err := c.client.Set(ctx, keyPrefix+email, code, c.ttl).Err(); err != nil {
		return "", fmt.Errorf("otp: store code: %w", err)
	}
	return code, nil
}

// Verify compares the submitted code against the stored one. Expired or
// absent entries read as a miss, not an error.
func (c *RedisCache) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := c.client.Get(ctx, keyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("otp: read code: %w", err)
	}

	if stored != code {
		return false, nil
	}

	// Consume on success. A failed DEL does not undo the verification; the
	// entry lapses with its TTL anyway.
	_ = c.client.Del(ctx, keyPrefix+email).Err()
	return true, nil
}
