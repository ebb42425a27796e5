// Package achievement contains achievement photo use cases.
package achievement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListAchievementsInput represents the input for listing achievements.
type ListAchievementsInput struct {
	UserID uuid.UUID
}

// ListAchievementsOutput represents the output of listing achievements.
type ListAchievementsOutput struct {
	Achievements []*entity.Achievement
}

// ListAchievementsUseCase lists a user's achievements, newest first.
type ListAchievementsUseCase struct {
	achievementRepo adapter.AchievementRepository
}

// NewListAchievementsUseCase creates a new ListAchievementsUseCase instance.
func NewListAchievementsUseCase(achievementRepo adapter.AchievementRepository) *ListAchievementsUseCase {
	return &ListAchievementsUseCase{
		achievementRepo: achievementRepo,
	}
}

// Execute retrieves the user's achievements.
func (uc *ListAchievementsUseCase) Execute(ctx context.Context, input ListAchievementsInput) (*ListAchievementsOutput, error) {
	achievements, err := uc.achievementRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	return &ListAchievementsOutput{Achievements: achievements}, nil
}
