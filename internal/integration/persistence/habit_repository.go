// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.HabitGoal) error {
	goalModel := model.HabitGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	return result.Error
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HabitGoal, error) {
	var goalModel model.HabitGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a given user, newest first.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.HabitGoal, error) {
	var goalModels []model.HabitGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.HabitGoal, 0, len(goalModels))
	for i := range goalModels {
		goals = append(goals, goalModels[i].ToEntity())
	}
	return goals, nil
}

// Delete removes a goal from the database.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.HabitGoalModel{}, "id = ?", id)
	return result.Error
}

// completionRepository implements the adapter.CompletionRepository interface.
type completionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository creates a new completion repository instance.
func NewCompletionRepository(db *gorm.DB) adapter.CompletionRepository {
	return &completionRepository{
		db: db,
	}
}

// RecordCompletion inserts the completion and recounts the owner's daily
// counter for the completion's day inside a single transaction. The unique
// index on (goal_id, day) is the authoritative one-per-day guard: a
// violation maps to ErrAlreadyCompletedToday regardless of any earlier
// application-level check.
func (r *completionRepository) RecordCompletion(ctx context.Context, completion *entity.Completion, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		completionModel := model.CompletionFromEntity(completion)
		if err := tx.Create(completionModel).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerror.NewHabitError(
					domainerror.ErrCodeAlreadyCompletedToday,
					"goal already completed today",
					domainerror.ErrAlreadyCompletedToday,
				)
			}
			return err
		}

		// Full recount across all of the owner's goals for the day. The
		// counter is derived state and is never incremented in place.
		var count int64
		err := tx.Model(&model.CompletionModel{}).
			Joins("JOIN habit_goals ON habit_goals.id = completions.goal_id").
			Where("habit_goals.user_id = ? AND completions.day = ?", ownerID, completion.Day).
			Count(&count).Error
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		streakModel := &model.DailyStreakModel{
			ID:             uuid.New(),
			UserID:         ownerID,
			Date:           completion.Day,
			GoalsCompleted: int(count),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]any{
				"goals_completed": int(count),
				"updated_at":      now,
			}),
		}).Create(streakModel).Error
	})
}

// ExistsForGoalOnDay checks whether the goal already has a completion on the
// given day.
func (r *completionRepository) ExistsForGoalOnDay(ctx context.Context, goalID uuid.UUID, day time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CompletionModel{}).
		Where("goal_id = ? AND day = ?", goalID, day).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindLatestByGoal retrieves the most recent completion for a goal, or nil.
func (r *completionRepository) FindLatestByGoal(ctx context.Context, goalID uuid.UUID) (*entity.Completion, error) {
	var completionModel model.CompletionModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("date DESC").
		First(&completionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return completionModel.ToEntity(), nil
}

// CountForUserOnDay counts completions across all of the user's goals on the
// given day.
func (r *completionRepository) CountForUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CompletionModel{}).
		Joins("JOIN habit_goals ON habit_goals.id = completions.goal_id").
		Where("habit_goals.user_id = ? AND completions.day = ?", userID, day).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// isUniqueViolation reports whether the error is a unique constraint
// violation, for Postgres (lib/pq code 23505, or the pgx message) and for
// the sqlite test database.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint")
}
