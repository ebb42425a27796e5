// Package habit contains habit goal use cases.
package habit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.HabitGoal
}

func newFakeGoalRepo(goals ...*entity.HabitGoal) *fakeGoalRepo {
	repo := &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.HabitGoal)}
	for _, g := range goals {
		repo.goals[g.ID] = g
	}
	return repo
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *entity.HabitGoal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.HabitGoal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	return goal, nil
}

func (r *fakeGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.HabitGoal, error) {
	var result []*entity.HabitGoal
	for _, g := range r.goals {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (r *fakeGoalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

type fakeCompletionRepo struct {
	completions []*entity.Completion
	recordErr   error
}

func (r *fakeCompletionRepo) RecordCompletion(ctx context.Context, completion *entity.Completion, ownerID uuid.UUID) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	r.completions = append(r.completions, completion)
	return nil
}

func (r *fakeCompletionRepo) ExistsForGoalOnDay(ctx context.Context, goalID uuid.UUID, day time.Time) (bool, error) {
	for _, c := range r.completions {
		if c.GoalID == goalID && c.Day.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCompletionRepo) FindLatestByGoal(ctx context.Context, goalID uuid.UUID) (*entity.Completion, error) {
	var latest *entity.Completion
	for _, c := range r.completions {
		if c.GoalID == goalID && (latest == nil || c.Date.After(latest.Date)) {
			latest = c
		}
	}
	return latest, nil
}

func (r *fakeCompletionRepo) CountForUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	return 0, nil
}

type fakeStreakCache struct {
	invalidated []uuid.UUID
}

func (c *fakeStreakCache) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }
func (c *fakeStreakCache) Set(ctx context.Context, key string, payload []byte) {}
func (c *fakeStreakCache) InvalidateUser(ctx context.Context, userID uuid.UUID) {
	c.invalidated = append(c.invalidated, userID)
}

func TestCompleteGoal(t *testing.T) {
	userID := uuid.New()
	goal := entity.NewHabitGoal(userID, "Morning run", "")

	goalRepo := newFakeGoalRepo(goal)
	completionRepo := &fakeCompletionRepo{}
	streakCache := &fakeStreakCache{}

	uc := NewCompleteGoalUseCase(goalRepo, completionRepo, streakCache)

	output, err := uc.Execute(context.Background(), CompleteGoalInput{
		UserID: userID,
		GoalID: goal.ID,
		Notes:  "5km in the rain",
	})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if output.Completion.GoalID != goal.ID {
		t.Errorf("completion goal ID = %s, want %s", output.Completion.GoalID, goal.ID)
	}
	if output.Completion.Notes != "5km in the rain" {
		t.Errorf("completion notes = %q", output.Completion.Notes)
	}
	if !output.Completion.Day.Equal(entity.StartOfDay(output.Completion.Date)) {
		t.Errorf("completion day %v is not the start of its date %v", output.Completion.Day, output.Completion.Date)
	}
	if len(completionRepo.completions) != 1 {
		t.Errorf("recorded %d completions, want 1", len(completionRepo.completions))
	}
	if len(streakCache.invalidated) != 1 || streakCache.invalidated[0] != userID {
		t.Errorf("streak cache invalidations = %v, want [%s]", streakCache.invalidated, userID)
	}
}

func TestCompleteGoalTwiceOnSameDay(t *testing.T) {
	userID := uuid.New()
	goal := entity.NewHabitGoal(userID, "Meditate", "")

	goalRepo := newFakeGoalRepo(goal)
	completionRepo := &fakeCompletionRepo{}
	uc := NewCompleteGoalUseCase(goalRepo, completionRepo, &fakeStreakCache{})

	input := CompleteGoalInput{UserID: userID, GoalID: goal.ID}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first Execute() returned error: %v", err)
	}

	_, err := uc.Execute(context.Background(), input)
	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeAlreadyCompletedToday {
		t.Fatalf("second Execute() error = %v, want code %s", err, domainerror.ErrCodeAlreadyCompletedToday)
	}
}

func TestCompleteGoalAllowedOnNextDay(t *testing.T) {
	userID := uuid.New()
	goal := entity.NewHabitGoal(userID, "Meditate", "")

	goalRepo := newFakeGoalRepo(goal)
	completionRepo := &fakeCompletionRepo{}
	uc := NewCompleteGoalUseCase(goalRepo, completionRepo, &fakeStreakCache{})

	today := time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local)
	uc.now = func() time.Time { return today }
	if _, err := uc.Execute(context.Background(), CompleteGoalInput{UserID: userID, GoalID: goal.ID}); err != nil {
		t.Fatalf("Execute() on day one returned error: %v", err)
	}

	uc.now = func() time.Time { return today.AddDate(0, 0, 1) }
	if _, err := uc.Execute(context.Background(), CompleteGoalInput{UserID: userID, GoalID: goal.ID}); err != nil {
		t.Fatalf("Execute() on day two returned error: %v", err)
	}

	if len(completionRepo.completions) != 2 {
		t.Errorf("recorded %d completions, want 2", len(completionRepo.completions))
	}
}

func TestCompleteGoalNotOwned(t *testing.T) {
	owner := uuid.New()
	goal := entity.NewHabitGoal(owner, "Private goal", "")

	uc := NewCompleteGoalUseCase(newFakeGoalRepo(goal), &fakeCompletionRepo{}, &fakeStreakCache{})

	_, err := uc.Execute(context.Background(), CompleteGoalInput{
		UserID: uuid.New(),
		GoalID: goal.ID,
	})

	// Someone else's goal must look exactly like a missing one
	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeGoalNotFound {
		t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeGoalNotFound)
	}
}

func TestCompleteGoalMissing(t *testing.T) {
	uc := NewCompleteGoalUseCase(newFakeGoalRepo(), &fakeCompletionRepo{}, &fakeStreakCache{})

	_, err := uc.Execute(context.Background(), CompleteGoalInput{
		UserID: uuid.New(),
		GoalID: uuid.New(),
	})

	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeGoalNotFound {
		t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeGoalNotFound)
	}
}
