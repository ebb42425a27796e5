// Package cache implements the redis-backed streak response cache.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

const (
	defaultStreakTTL = time.Minute
	opTimeout        = 2 * time.Second
	scanBatchSize    = 1000
	maxScanRounds    = 10
)

// streakCache implements adapter.StreakCache on a redis client. Every
// operation is best-effort: failures are logged and swallowed so the caller
// falls back to the database.
type streakCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStreakCache creates a new streak cache instance.
func NewStreakCache(client *redis.Client, ttl time.Duration) adapter.StreakCache {
	if ttl <= 0 {
		ttl = defaultStreakTTL
	}
	return &streakCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached payload for the key, if present.
func (c *streakCache) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("streak cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores the payload under the key with the configured TTL.
func (c *streakCache) Set(ctx context.Context, key string, payload []byte) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("streak cache set failed", "key", key, "error", err)
	}
}

// InvalidateUser deletes all cached streak payloads for the user using SCAN
// with pipelined deletes.
func (c *streakCache) InvalidateUser(ctx context.Context, userID uuid.UUID) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	pattern := fmt.Sprintf("streaks:%s:*", userID)
	var cursor uint64
	for round := 0; round < maxScanRounds; round++ {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			slog.Warn("streak cache invalidation failed", "pattern", pattern, "error", err)
			return
		}
		cursor = next
		if len(keys) > 0 {
			pipe := c.client.Pipeline()
			for _, key := range keys {
				pipe.Del(ctx, key)
			}
			_, _ = pipe.Exec(ctx)
		}
		if cursor == 0 {
			return
		}
	}
}

// noopStreakCache is used when redis is not configured.
type noopStreakCache struct{}

// NewNoopStreakCache returns a cache that never hits. It keeps the streak
// path identical whether or not redis is configured.
func NewNoopStreakCache() adapter.StreakCache {
	return noopStreakCache{}
}

func (noopStreakCache) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (noopStreakCache) Set(ctx context.Context, key string, payload []byte) {}

func (noopStreakCache) InvalidateUser(ctx context.Context, userID uuid.UUID) {}
