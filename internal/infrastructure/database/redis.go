package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis client.
func NewRedis(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}

// Ping verifies the Redis connection is usable.
func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}
