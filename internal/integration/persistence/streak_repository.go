// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// streakRepository implements the adapter.StreakRepository interface.
type streakRepository struct {
	db *gorm.DB
}

// NewStreakRepository creates a new streak repository instance.
func NewStreakRepository(db *gorm.DB) adapter.StreakRepository {
	return &streakRepository{
		db: db,
	}
}

// FindRecentByUser retrieves the user's daily counters with a date on or
// after since, most recent first.
func (r *streakRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.DailyStreak, error) {
	var streakModels []model.DailyStreakModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&streakModels)
	if result.Error != nil {
		return nil, result.Error
	}

	counters := make([]*entity.DailyStreak, 0, len(streakModels))
	for i := range streakModels {
		counters = append(counters, streakModels[i].ToEntity())
	}
	return counters, nil
}

// Upsert creates or overwrites the counter row for (user, day).
func (r *streakRepository) Upsert(ctx context.Context, userID uuid.UUID, day time.Time, goalsCompleted int) error {
	now := time.Now().UTC()
	streakModel := &model.DailyStreakModel{
		ID:             uuid.New(),
		UserID:         userID,
		Date:           day,
		GoalsCompleted: goalsCompleted,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"goals_completed": goalsCompleted,
			"updated_at":      now,
		}),
	}).Create(streakModel).Error
}
