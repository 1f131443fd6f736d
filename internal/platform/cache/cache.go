// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package cache provides a small JSON read-through cache over Redis.

It exists for one consumer: the public published-catalogue listings.
Cache misses and Redis outages are both treated as "not cached" — the
caller always has the database as the source of truth, so this layer
is allowed to fail silently (logged, never surfaced to clients).
*/
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client with JSON marshalling and a key prefix.
type Cache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// New constructs a Cache. All keys are namespaced under the given prefix.
func New(client *redis.Client, prefix string, logger *slog.Logger) *Cache {
	return &Cache{client: client, prefix: prefix, logger: logger}
}

// Get unmarshals the cached value for key into target.
// Returns false on a miss, a decode failure, or any Redis error.
func (c *Cache) Get(ctx context.Context, key string, target interface{}) bool {
	payload, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache_get_failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		// A corrupt entry is worse than a miss; drop it.
		c.logger.Warn("cache_decode_failed", slog.String("key", key), slog.Any("error", err))
		_ = c.client.Del(ctx, c.prefix+key).Err()
		return false
	}

	return true
}

// Set stores value under key with the given TTL. Failures are logged only.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache_encode_failed", slog.String("key", key), slog.Any("error", err))
		return
	}

	if err := c.client.Set(ctx, c.prefix+key, payload, ttl).Err(); err != nil {
		c.logger.Warn("cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Invalidate removes one or more keys. Used after any mutation that
// changes what the public catalogue shows (create, status change, new episode).
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = c.prefix + key
	}

	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		c.logger.Warn("cache_invalidate_failed", slog.Any("error", err))
	}
}
