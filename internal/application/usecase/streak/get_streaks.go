// Package streak contains streak query use cases.
package streak

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GetStreaksInput represents the input for the streak query.
type GetStreaksInput struct {
	UserID uuid.UUID
}

// GetStreaksOutput represents the output of the streak query.
type GetStreaksOutput struct {
	Counters      []*entity.DailyStreak
	CurrentStreak int
}

// GetStreaksUseCase returns the user's recent daily counters and current
// streak length. Counters are fetched for the trailing 30 days, so a streak
// longer than the fetch window reports at most the window length. The result
// is cached per user and day with a short TTL; a completion recorded by the
// user invalidates it.
type GetStreaksUseCase struct {
	streakRepo  adapter.StreakRepository
	streakCache adapter.StreakCache
	now         func() time.Time
}

// NewGetStreaksUseCase creates a new GetStreaksUseCase instance.
func NewGetStreaksUseCase(
	streakRepo adapter.StreakRepository,
	streakCache adapter.StreakCache,
) *GetStreaksUseCase {
	return &GetStreaksUseCase{
		streakRepo:  streakRepo,
		streakCache: streakCache,
		now:         time.Now,
	}
}

// cachedStreaks is the serialized form stored in the cache.
type cachedStreaks struct {
	Counters      []*entity.DailyStreak `json:"counters"`
	CurrentStreak int                   `json:"currentStreak"`
}

// Execute performs the streak query. The query is read-only: it never writes
// counters, so repeating it never changes the result.
func (uc *GetStreaksUseCase) Execute(ctx context.Context, input GetStreaksInput) (*GetStreaksOutput, error) {
	now := uc.now()
	key := CacheKey(input.UserID, now)

	if payload, ok := uc.streakCache.Get(ctx, key); ok {
		var cached cachedStreaks
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &GetStreaksOutput{
				Counters:      cached.Counters,
				CurrentStreak: cached.CurrentStreak,
			}, nil
		}
		// Undecodable payload: fall through to the database.
	}

	since := entity.StartOfDay(now).AddDate(0, 0, -entity.StreakWindowDays)
	counters, err := uc.streakRepo.FindRecentByUser(ctx, input.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily counters: %w", err)
	}

	output := &GetStreaksOutput{
		Counters:      counters,
		CurrentStreak: entity.CurrentStreak(counters, now),
	}

	if payload, err := json.Marshal(cachedStreaks(*output)); err == nil {
		uc.streakCache.Set(ctx, key, payload)
	}

	return output, nil
}

// CacheKey builds the per-user per-day cache key for streak responses.
func CacheKey(userID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("streaks:%s:%s", userID, now.Format("2006-01-02"))
}
