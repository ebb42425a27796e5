// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GoalRepository defines the interface for habit goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.HabitGoal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HabitGoal, error)

	// FindByUserID retrieves all goals for a given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.HabitGoal, error)

	// Delete removes a goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompletionRepository defines the interface for completion persistence.
type CompletionRepository interface {
	// RecordCompletion inserts the completion and, in the same transaction,
	// recounts and upserts the owner's DailyStreak counter for the
	// completion's day. A violation of the (goal, day) uniqueness constraint
	// surfaces as ErrAlreadyCompletedToday.
	RecordCompletion(ctx context.Context, completion *entity.Completion, ownerID uuid.UUID) error

	// ExistsForGoalOnDay checks whether the goal already has a completion on
	// the given day.
	ExistsForGoalOnDay(ctx context.Context, goalID uuid.UUID, day time.Time) (bool, error)

	// FindLatestByGoal retrieves the most recent completion for a goal, or nil.
	FindLatestByGoal(ctx context.Context, goalID uuid.UUID) (*entity.Completion, error)

	// CountForUserOnDay counts completions across all of the user's goals
	// whose timestamp falls on the given day.
	CountForUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) (int, error)
}
