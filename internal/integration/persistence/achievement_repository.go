// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// achievementRepository implements the adapter.AchievementRepository interface.
type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new achievement repository instance.
func NewAchievementRepository(db *gorm.DB) adapter.AchievementRepository {
	return &achievementRepository{
		db: db,
	}
}

// Create creates a new achievement in the database.
func (r *achievementRepository) Create(ctx context.Context, achievement *entity.Achievement) error {
	achievementModel := model.AchievementFromEntity(achievement)
	return r.db.WithContext(ctx).Create(achievementModel).Error
}

// FindByUserID retrieves all achievements for a user, newest first.
func (r *achievementRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error) {
	var achievementModels []model.AchievementModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&achievementModels)
	if result.Error != nil {
		return nil, result.Error
	}

	achievements := make([]*entity.Achievement, 0, len(achievementModels))
	for i := range achievementModels {
		achievements = append(achievements, achievementModels[i].ToEntity())
	}
	return achievements, nil
}
