// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// AchievementModel represents the achievements table in the database.
type AchievementModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PhotoURL  string    `gorm:"type:varchar(500);not null"`
	Caption   string    `gorm:"type:text"`
	Date      time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AchievementModel.
func (AchievementModel) TableName() string {
	return "achievements"
}

// ToEntity converts an AchievementModel to a domain Achievement entity.
func (m *AchievementModel) ToEntity() *entity.Achievement {
	return &entity.Achievement{
		ID:        m.ID,
		UserID:    m.UserID,
		PhotoURL:  m.PhotoURL,
		Caption:   m.Caption,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

// AchievementFromEntity creates an AchievementModel from a domain entity.
func AchievementFromEntity(achievement *entity.Achievement) *AchievementModel {
	return &AchievementModel{
		ID:        achievement.ID,
		UserID:    achievement.UserID,
		PhotoURL:  achievement.PhotoURL,
		Caption:   achievement.Caption,
		Date:      achievement.Date,
		CreatedAt: achievement.CreatedAt,
	}
}
