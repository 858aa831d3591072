// Package cache is a small read-through cache on Redis used for the public
// coaching listing. When no client is configured every call is a miss.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edustack/coachhub/internal/pkg/logger"
)

// Cache wraps a Redis client with a fixed TTL
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a cache backed by the given Redis client. A nil client yields
// a disabled cache that never hits.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get returns the cached bytes for key, or ok=false on a miss. Redis errors
// degrade to a miss so the caller falls back to the source of truth.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return nil, false
	}
	return val, true
}

// Set stores bytes under key for the configured TTL. Failures are logged,
// never propagated.
func (c *Cache) Set(ctx context.Context, key string, val []byte) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Set(ctx, key, val, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Invalidate drops a key, typically after a write to the underlying data.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache invalidation failed")
	}
}
