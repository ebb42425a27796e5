// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// StreakRepository defines the interface for daily streak counter persistence.
type StreakRepository interface {
	// FindRecentByUser retrieves the user's daily counters with a date on or
	// after since, most recent first. Callers fetch only a bounded window, so
	// current-streak accuracy is bounded by that window.
	FindRecentByUser(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.DailyStreak, error)

	// Upsert creates or overwrites the counter row for (user, day).
	Upsert(ctx context.Context, userID uuid.UUID, day time.Time, goalsCompleted int) error
}

// StreakCache caches serialized streak responses per user with a short TTL.
// All methods are best-effort: a cache failure must degrade to a database
// read, never to a request failure.
type StreakCache interface {
	// Get returns the cached payload for the key, if present.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores the payload under the key.
	Set(ctx context.Context, key string, payload []byte)

	// InvalidateUser removes all cached streak payloads for the user.
	InvalidateUser(ctx context.Context, userID uuid.UUID)
}
