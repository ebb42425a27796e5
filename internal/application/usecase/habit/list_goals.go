// Package habit contains habit goal use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.GoalWithLastCompletion
}

// ListGoalsUseCase handles listing a user's goals with their most recent
// completion.
type ListGoalsUseCase struct {
	goalRepo       adapter.GoalRepository
	completionRepo adapter.CompletionRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	goalRepo adapter.GoalRepository,
	completionRepo adapter.CompletionRepository,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:       goalRepo,
		completionRepo: completionRepo,
	}
}

// Execute retrieves the user's goals, newest first, each with its latest
// completion if one exists.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	result := make([]*entity.GoalWithLastCompletion, 0, len(goals))
	for _, goal := range goals {
		latest, err := uc.completionRepo.FindLatestByGoal(ctx, goal.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load latest completion for goal %s: %w", goal.ID, err)
		}
		result = append(result, &entity.GoalWithLastCompletion{
			Goal:           goal,
			LastCompletion: latest,
		})
	}

	return &ListGoalsOutput{Goals: result}, nil
}
