// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a photo a user shares to celebrate progress.
type Achievement struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PhotoURL  string
	Caption   string
	Date      time.Time
	CreatedAt time.Time
}

// NewAchievement creates a new Achievement stamped with the current time.
func NewAchievement(userID uuid.UUID, photoURL, caption string) *Achievement {
	now := time.Now().UTC()
	return &Achievement{
		ID:        uuid.New(),
		UserID:    userID,
		PhotoURL:  photoURL,
		Caption:   caption,
		Date:      now,
		CreatedAt: now,
	}
}
