// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// DailyStreakModel represents the daily_streaks table in the database.
// One counter row per user per day.
type DailyStreakModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_streaks_user_day"`
	Date           time.Time `gorm:"not null;uniqueIndex:idx_daily_streaks_user_day"`
	GoalsCompleted int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the DailyStreakModel.
func (DailyStreakModel) TableName() string {
	return "daily_streaks"
}

// ToEntity converts a DailyStreakModel to a domain DailyStreak entity.
func (m *DailyStreakModel) ToEntity() *entity.DailyStreak {
	return &entity.DailyStreak{
		ID:             m.ID,
		UserID:         m.UserID,
		Date:           m.Date,
		GoalsCompleted: m.GoalsCompleted,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
