// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

func newHabitTestDB(t *testing.T) *gorm.DB {
	return newTestDB(t,
		&model.UserModel{},
		&model.HabitGoalModel{},
		&model.CompletionModel{},
		&model.DailyStreakModel{},
	)
}

func createTestGoal(t *testing.T, db *gorm.DB, userID uuid.UUID, title string) *entity.HabitGoal {
	t.Helper()

	goal := entity.NewHabitGoal(userID, title, "")
	require.NoError(t, NewGoalRepository(db).Create(context.Background(), goal))
	return goal
}

func TestGoalRepositoryFindByID(t *testing.T) {
	db := newHabitTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()

	goal := createTestGoal(t, db, uuid.New(), "Morning run")

	found, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	require.Equal(t, goal.ID, found.ID)
	require.Equal(t, "Morning run", found.Title)
}

func TestGoalRepositoryFindByIDNotFound(t *testing.T) {
	db := newHabitTestDB(t)
	repo := NewGoalRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())

	var habitErr *domainerror.HabitError
	require.ErrorAs(t, err, &habitErr)
	require.Equal(t, domainerror.ErrCodeGoalNotFound, habitErr.Code)
}

func TestGoalRepositoryFindByUserIDNewestFirst(t *testing.T) {
	db := newHabitTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	older := entity.NewHabitGoal(userID, "Older", "")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, older))

	newer := createTestGoal(t, db, userID, "Newer")
	createTestGoal(t, db, uuid.New(), "Someone else's")

	goals, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	require.Equal(t, newer.ID, goals[0].ID)
	require.Equal(t, older.ID, goals[1].ID)
}

func TestRecordCompletionRecountsDailyStreak(t *testing.T) {
	db := newHabitTestDB(t)
	repo := NewCompletionRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	now := time.Now()
	goals := []*entity.HabitGoal{
		createTestGoal(t, db, userID, "Run"),
		createTestGoal(t, db, userID, "Read"),
		createTestGoal(t, db, userID, "Meditate"),
	}

	for i, goal := range goals {
		completion := entity.NewCompletion(goal.ID, now, "", "")
		require.NoError(t, repo.RecordCompletion(ctx, completion, userID))

		var counter model.DailyStreakModel
		require.NoError(t, db.Where("user_id = ?", userID).First(&counter).Error)
		require.Equal(t, i+1, counter.GoalsCompleted)
	}

	// Still a single counter row for the day
	var count int64
	require.NoError(t, db.Model(&model.DailyStreakModel{}).Where("user_id = ?", userID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRecordCompletionDuplicateDay(t *testing.T) {
	db := newHabitTestDB(t)
	repo := NewCompletionRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	goal := createTestGoal(t, db, userID, "Run")
	now := time.Now()

	require.NoError(t, repo.RecordCompletion(ctx, entity.NewCompletion(goal.ID, now, "", ""), userID))

	err := repo.RecordCompletion(ctx, entity.NewCompletion(goal.ID, now.Add(time.Hour), "", ""), userID)
	var habitErr *domainerror.HabitError
	require.ErrorAs(t, err, &habitErr)
	require.Equal(t, domainerror.ErrCodeAlreadyCompletedToday, habitErr.Code)

	// The failed insert must not have changed anything
	var completions int64
	require.NoError(t, db.Model(&model.CompletionModel{}).Count(&completions).Error)
	require.EqualValues(t, 1, completions)

	var counter model.DailyStreakModel
	require.NoError(t, db.Where("user_id = ?", userID).First(&counter).Error)
	require.Equal(t, 1, counter.GoalsCompleted)
}

func TestRecordCompletionCountsOnlyOwnersGoals(t *testing.T) {
	db := newHabitTestDB(t)
	repo := NewCompletionRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()
	now := time.Now()

	otherGoal := createTestGoal(t, db, other, "Other's goal")
	require.NoError(t, repo.RecordCompletion(ctx, entity.NewCompletion(otherGoal.ID, now, "", ""), other))

	ownGoal := createTestGoal(t, db, owner, "Own goal")
	require.NoError(t, repo.RecordCompletion(ctx, entity.NewCompletion(ownGoal.ID, now, "", ""), owner))

	var counter model.DailyStreakModel
	require.NoError(t, db.Where("user_id = ?", owner).First(&counter).Error)
	require.Equal(t, 1, counter.GoalsCompleted)
}

func TestExistsForGoalOnDay(t *testing.T) {
	db := newHabitTestDB(t)
	repo := NewCompletionRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	goal := createTestGoal(t, db, userID, "Run")
	now := time.Now()
	today := entity.StartOfDay(now)

	exists, err := repo.ExistsForGoalOnDay(ctx, goal.ID, today)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, repo.RecordCompletion(ctx, entity.NewCompletion(goal.ID, now, "", ""), userID))

	exists, err = repo.ExistsForGoalOnDay(ctx, goal.ID, today)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsForGoalOnDay(ctx, goal.ID, today.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.False(t, exists)
}

func TestFindLatestByGoal(t *testing.T) {
	db := newHabitTestDB(t)
	repo := NewCompletionRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	goal := createTestGoal(t, db, userID, "Run")

	latest, err := repo.FindLatestByGoal(ctx, goal.ID)
	require.NoError(t, err)
	require.Nil(t, latest)

	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, repo.RecordCompletion(ctx, entity.NewCompletion(goal.ID, yesterday, "", ""), userID))

	today := entity.NewCompletion(goal.ID, time.Now(), "", "a note")
	require.NoError(t, repo.RecordCompletion(ctx, today, userID))

	latest, err = repo.FindLatestByGoal(ctx, goal.ID)
	require.NoError(t, err)
	require.Equal(t, today.ID, latest.ID)
	require.Equal(t, "a note", latest.Notes)
}

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, isUniqueViolation(errors.New(`duplicate key value violates unique constraint "idx_completions_goal_day"`)))
	require.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: completions.goal_id, completions.day")))
	require.False(t, isUniqueViolation(errors.New("connection refused")))
}
