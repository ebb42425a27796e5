// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// AchievementRepository defines the interface for achievement persistence.
type AchievementRepository interface {
	// Create creates a new achievement in the database.
	Create(ctx context.Context, achievement *entity.Achievement) error

	// FindByUserID retrieves all achievements for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error)
}
