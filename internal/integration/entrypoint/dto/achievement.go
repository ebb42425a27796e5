// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateAchievementRequest represents the request body for creating an
// achievement.
type CreateAchievementRequest struct {
	PhotoURL string `json:"photo_url" binding:"required,max=500"`
	Caption  string `json:"caption" binding:"omitempty,max=2000"`
}

// AchievementResponse represents an achievement in API responses.
type AchievementResponse struct {
	ID        string    `json:"id"`
	PhotoURL  string    `json:"photo_url"`
	Caption   string    `json:"caption,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// AchievementListResponse represents the response for listing achievements.
type AchievementListResponse struct {
	Achievements []AchievementResponse `json:"achievements"`
}

// ToAchievementResponse converts a domain Achievement entity to a DTO.
func ToAchievementResponse(a *entity.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:        a.ID.String(),
		PhotoURL:  a.PhotoURL,
		Caption:   a.Caption,
		Date:      a.Date,
		CreatedAt: a.CreatedAt,
	}
}
