// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitGoal represents a habit a user wants to complete daily.
type HabitGoal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewHabitGoal creates a new HabitGoal entity.
func NewHabitGoal(userID uuid.UUID, title, description string) *HabitGoal {
	now := time.Now().UTC()
	return &HabitGoal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Completion records that a goal was completed on a given day.
// Completions are immutable once created; there is no update or delete path.
type Completion struct {
	ID        uuid.UUID
	GoalID    uuid.UUID
	Date      time.Time // exact completion timestamp
	Day       time.Time // Date truncated to local midnight, unique per goal
	PhotoURL  string
	Notes     string
	CreatedAt time.Time
}

// NewCompletion creates a Completion stamped with the given time.
func NewCompletion(goalID uuid.UUID, at time.Time, photoURL, notes string) *Completion {
	return &Completion{
		ID:        uuid.New(),
		GoalID:    goalID,
		Date:      at,
		Day:       StartOfDay(at),
		PhotoURL:  photoURL,
		Notes:     notes,
		CreatedAt: at,
	}
}

// GoalWithLastCompletion pairs a goal with its most recent completion, if any.
type GoalWithLastCompletion struct {
	Goal           *HabitGoal
	LastCompletion *Completion
}
