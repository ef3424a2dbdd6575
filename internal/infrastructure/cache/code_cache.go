package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/regsvc/domain"
)

// CodeCacheImpl implements domain.CodeCache using Redis. Key expiry is this
// adapter's policy; callers never see the TTL.
type CodeCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCodeCache creates a Redis-backed verification code cache.
func NewCodeCache(client *redis.Client, ttl time.Duration) domain.CodeCache {
	return &CodeCacheImpl{client: client, ttl: ttl}
}

func codeKey(key string) string {
	return fmt.Sprintf("verify:code:%s", key)
}

// StoreCode implements domain.CodeCache. SET replaces any outstanding code
// for the key, so at most one code per email is ever live.
func (c *CodeCacheImpl) StoreCode(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, codeKey(key), value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store code in redis: %w", err)
	}
	return nil
}

// RetrieveCode implements domain.CodeCache
func (c *CodeCacheImpl) RetrieveCode(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, codeKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read code from redis: %w", err)
	}
	return val, nil
}

// DeleteCode implements domain.CodeCache
func (c *CodeCacheImpl) DeleteCode(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, codeKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete code from redis: %w", err)
	}
	return nil
}
