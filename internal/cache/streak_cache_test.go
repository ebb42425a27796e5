// Package cache implements the redis-backed streak response cache.
package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestStreakCacheRoundTrip(t *testing.T) {
	_, client := newTestCache(t)
	cache := NewStreakCache(client, time.Minute)
	ctx := context.Background()

	key := fmt.Sprintf("streaks:%s:2026-03-15", uuid.New())

	_, ok := cache.Get(ctx, key)
	require.False(t, ok)

	cache.Set(ctx, key, []byte(`{"currentStreak":3}`))

	payload, ok := cache.Get(ctx, key)
	require.True(t, ok)
	require.JSONEq(t, `{"currentStreak":3}`, string(payload))
}

func TestStreakCacheEntriesExpire(t *testing.T) {
	server, client := newTestCache(t)
	cache := NewStreakCache(client, time.Minute)
	ctx := context.Background()

	key := fmt.Sprintf("streaks:%s:2026-03-15", uuid.New())
	cache.Set(ctx, key, []byte("payload"))

	server.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, key)
	require.False(t, ok)
}

func TestInvalidateUserRemovesOnlyThatUser(t *testing.T) {
	_, client := newTestCache(t)
	cache := NewStreakCache(client, time.Minute)
	ctx := context.Background()

	victim := uuid.New()
	bystander := uuid.New()

	for _, day := range []string{"2026-03-14", "2026-03-15"} {
		cache.Set(ctx, fmt.Sprintf("streaks:%s:%s", victim, day), []byte("v"))
		cache.Set(ctx, fmt.Sprintf("streaks:%s:%s", bystander, day), []byte("b"))
	}

	cache.InvalidateUser(ctx, victim)

	for _, day := range []string{"2026-03-14", "2026-03-15"} {
		_, ok := cache.Get(ctx, fmt.Sprintf("streaks:%s:%s", victim, day))
		require.False(t, ok, "victim key for %s should be gone", day)

		_, ok = cache.Get(ctx, fmt.Sprintf("streaks:%s:%s", bystander, day))
		require.True(t, ok, "bystander key for %s should survive", day)
	}
}

func TestNoopStreakCache(t *testing.T) {
	cache := NewNoopStreakCache()
	ctx := context.Background()

	cache.Set(ctx, "streaks:any:2026-03-15", []byte("payload"))
	_, ok := cache.Get(ctx, "streaks:any:2026-03-15")
	require.False(t, ok)

	// Must not panic
	cache.InvalidateUser(ctx, uuid.New())
}
