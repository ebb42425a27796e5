// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// HabitGoalModel represents the habit_goals table in the database.
type HabitGoalModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the HabitGoalModel.
func (HabitGoalModel) TableName() string {
	return "habit_goals"
}

// ToEntity converts a HabitGoalModel to a domain HabitGoal entity.
func (m *HabitGoalModel) ToEntity() *entity.HabitGoal {
	return &entity.HabitGoal{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// HabitGoalFromEntity creates a HabitGoalModel from a domain HabitGoal entity.
func HabitGoalFromEntity(goal *entity.HabitGoal) *HabitGoalModel {
	return &HabitGoalModel{
		ID:          goal.ID,
		UserID:      goal.UserID,
		Title:       goal.Title,
		Description: goal.Description,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}

// CompletionModel represents the completions table in the database.
// The composite unique index on (goal_id, day) enforces at most one
// completion per goal per calendar day.
type CompletionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completions_goal_day"`
	Date      time.Time `gorm:"not null;index"`
	Day       time.Time `gorm:"not null;uniqueIndex:idx_completions_goal_day"`
	PhotoURL  string    `gorm:"type:varchar(500)"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CompletionModel.
func (CompletionModel) TableName() string {
	return "completions"
}

// ToEntity converts a CompletionModel to a domain Completion entity.
func (m *CompletionModel) ToEntity() *entity.Completion {
	return &entity.Completion{
		ID:        m.ID,
		GoalID:    m.GoalID,
		Date:      m.Date,
		Day:       m.Day,
		PhotoURL:  m.PhotoURL,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// CompletionFromEntity creates a CompletionModel from a domain Completion entity.
func CompletionFromEntity(completion *entity.Completion) *CompletionModel {
	return &CompletionModel{
		ID:        completion.ID,
		GoalID:    completion.GoalID,
		Date:      completion.Date,
		Day:       completion.Day,
		PhotoURL:  completion.PhotoURL,
		Notes:     completion.Notes,
		CreatedAt: completion.CreatedAt,
	}
}
