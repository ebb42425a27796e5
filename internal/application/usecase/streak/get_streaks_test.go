// Package streak contains streak query use cases.
package streak

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

type fakeStreakRepo struct {
	counters []*entity.DailyStreak
	calls    int
}

func (r *fakeStreakRepo) FindRecentByUser(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.DailyStreak, error) {
	r.calls++
	var result []*entity.DailyStreak
	for _, c := range r.counters {
		if c.UserID == userID && !c.Date.Before(since) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeStreakRepo) Upsert(ctx context.Context, userID uuid.UUID, day time.Time, goalsCompleted int) error {
	return nil
}

type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, ok := c.entries[key]
	return payload, ok
}

func (c *memoryCache) Set(ctx context.Context, key string, payload []byte) {
	c.entries[key] = payload
}

func (c *memoryCache) InvalidateUser(ctx context.Context, userID uuid.UUID) {
	for key := range c.entries {
		delete(c.entries, key)
	}
}

func seedCounters(userID uuid.UUID, now time.Time, goalsPerDay ...int) []*entity.DailyStreak {
	counters := make([]*entity.DailyStreak, 0, len(goalsPerDay))
	for daysAgo, goals := range goalsPerDay {
		counters = append(counters, &entity.DailyStreak{
			ID:             uuid.New(),
			UserID:         userID,
			Date:           entity.StartOfDay(now).AddDate(0, 0, -daysAgo),
			GoalsCompleted: goals,
		})
	}
	return counters
}

func TestGetStreaks(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)

	repo := &fakeStreakRepo{counters: seedCounters(userID, now, 3, 4, 3)}
	uc := NewGetStreaksUseCase(repo, newMemoryCache())
	uc.now = func() time.Time { return now }

	output, err := uc.Execute(context.Background(), GetStreaksInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if output.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", output.CurrentStreak)
	}
	if len(output.Counters) != 3 {
		t.Errorf("len(Counters) = %d, want 3", len(output.Counters))
	}
}

func TestGetStreaksServesSecondCallFromCache(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)

	repo := &fakeStreakRepo{counters: seedCounters(userID, now, 3, 3)}
	uc := NewGetStreaksUseCase(repo, newMemoryCache())
	uc.now = func() time.Time { return now }

	first, err := uc.Execute(context.Background(), GetStreaksInput{UserID: userID})
	if err != nil {
		t.Fatalf("first Execute() returned error: %v", err)
	}

	second, err := uc.Execute(context.Background(), GetStreaksInput{UserID: userID})
	if err != nil {
		t.Fatalf("second Execute() returned error: %v", err)
	}

	if repo.calls != 1 {
		t.Errorf("repository queried %d times, want 1", repo.calls)
	}
	if second.CurrentStreak != first.CurrentStreak {
		t.Errorf("cached CurrentStreak = %d, want %d", second.CurrentStreak, first.CurrentStreak)
	}
	if len(second.Counters) != len(first.Counters) {
		t.Errorf("cached len(Counters) = %d, want %d", len(second.Counters), len(first.Counters))
	}
}

func TestGetStreaksFallsBackOnUndecodableCache(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)

	cache := newMemoryCache()
	cache.Set(context.Background(), CacheKey(userID, now), []byte("not json"))

	repo := &fakeStreakRepo{counters: seedCounters(userID, now, 3)}
	uc := NewGetStreaksUseCase(repo, cache)
	uc.now = func() time.Time { return now }

	output, err := uc.Execute(context.Background(), GetStreaksInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if repo.calls != 1 {
		t.Errorf("repository queried %d times, want 1", repo.calls)
	}
	if output.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", output.CurrentStreak)
	}
}

func TestCacheKeyIsPerUserAndDay(t *testing.T) {
	userID := uuid.New()
	day1 := time.Date(2026, 3, 15, 8, 0, 0, 0, time.Local)
	day1Later := time.Date(2026, 3, 15, 23, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)

	if CacheKey(userID, day1) != CacheKey(userID, day1Later) {
		t.Error("keys for the same day differ")
	}
	if CacheKey(userID, day1) == CacheKey(userID, day2) {
		t.Error("keys for different days collide")
	}
	if CacheKey(userID, day1) == CacheKey(uuid.New(), day1) {
		t.Error("keys for different users collide")
	}
}
