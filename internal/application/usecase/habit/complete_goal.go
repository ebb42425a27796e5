// Package habit contains habit goal use cases.
package habit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CompleteGoalInput represents the input for completing a goal.
type CompleteGoalInput struct {
	UserID   uuid.UUID
	GoalID   uuid.UUID
	PhotoURL string
	Notes    string
}

// CompleteGoalOutput represents the output of completing a goal.
type CompleteGoalOutput struct {
	Completion *entity.Completion
}

// CompleteGoalUseCase records a completion for a goal. A goal can be
// completed at most once per calendar day; the day's streak counter is
// recounted in the same transaction as the completion insert.
type CompleteGoalUseCase struct {
	goalRepo       adapter.GoalRepository
	completionRepo adapter.CompletionRepository
	streakCache    adapter.StreakCache
	now            func() time.Time
}

// NewCompleteGoalUseCase creates a new CompleteGoalUseCase instance.
func NewCompleteGoalUseCase(
	goalRepo adapter.GoalRepository,
	completionRepo adapter.CompletionRepository,
	streakCache adapter.StreakCache,
) *CompleteGoalUseCase {
	return &CompleteGoalUseCase{
		goalRepo:       goalRepo,
		completionRepo: completionRepo,
		streakCache:    streakCache,
		now:            time.Now,
	}
}

// Execute performs the goal completion.
func (uc *CompleteGoalUseCase) Execute(ctx context.Context, input CompleteGoalInput) (*CompleteGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		var habitErr *domainerror.HabitError
		if errors.As(err, &habitErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}

	// A goal owned by someone else is reported as not found, so goal
	// existence is never leaked to non-owners.
	if goal.UserID != input.UserID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	now := uc.now()

	// Friendly pre-check; the unique index on (goal, day) remains the
	// authoritative guard under concurrency.
	exists, err := uc.completionRepo.ExistsForGoalOnDay(ctx, goal.ID, entity.StartOfDay(now))
	if err != nil {
		return nil, fmt.Errorf("failed to check existing completion: %w", err)
	}
	if exists {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeAlreadyCompletedToday,
			"goal already completed today",
			domainerror.ErrAlreadyCompletedToday,
		)
	}

	completion := entity.NewCompletion(goal.ID, now, input.PhotoURL, input.Notes)

	if err := uc.completionRepo.RecordCompletion(ctx, completion, goal.UserID); err != nil {
		return nil, err
	}

	// Cached streak responses for this user are now stale.
	uc.streakCache.InvalidateUser(ctx, goal.UserID)

	return &CompleteGoalOutput{Completion: completion}, nil
}
