// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

// CompleteGoalRequest represents the request body for goal completion.
// Both fields are optional.
type CompleteGoalRequest struct {
	PhotoURL string `json:"photo_url" binding:"omitempty,max=500"`
	Notes    string `json:"notes" binding:"omitempty,max=2000"`
}

// GoalResponse represents a habit goal in API responses.
type GoalResponse struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	LastCompletion *CompletionResponse `json:"last_completion,omitempty"`
}

// CompletionResponse represents a completion in API responses.
type CompletionResponse struct {
	ID        string    `json:"id"`
	GoalID    string    `json:"goal_id"`
	Date      time.Time `json:"date"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a goal and its optional latest completion to a DTO.
func ToGoalResponse(g *entity.GoalWithLastCompletion) GoalResponse {
	resp := GoalResponse{
		ID:          g.Goal.ID.String(),
		Title:       g.Goal.Title,
		Description: g.Goal.Description,
		CreatedAt:   g.Goal.CreatedAt,
	}
	if g.LastCompletion != nil {
		completion := ToCompletionResponse(g.LastCompletion)
		resp.LastCompletion = &completion
	}
	return resp
}

// ToCompletionResponse converts a domain Completion entity to a DTO.
func ToCompletionResponse(c *entity.Completion) CompletionResponse {
	return CompletionResponse{
		ID:        c.ID.String(),
		GoalID:    c.GoalID.String(),
		Date:      c.Date,
		PhotoURL:  c.PhotoURL,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
