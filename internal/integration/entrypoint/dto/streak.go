// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// DailyStreakResponse represents a single day's counter in API responses.
type DailyStreakResponse struct {
	Date           time.Time `json:"date"`
	GoalsCompleted int       `json:"goals_completed"`
	IsStrike       bool      `json:"is_strike"`
}

// StreakResponse represents the response for the streak endpoint.
type StreakResponse struct {
	CurrentStreak int                   `json:"current_streak"`
	Days          []DailyStreakResponse `json:"days"`
}

// ToStreakResponse converts daily counters and the computed streak to a DTO.
func ToStreakResponse(counters []*entity.DailyStreak, currentStreak int) StreakResponse {
	days := make([]DailyStreakResponse, 0, len(counters))
	for _, c := range counters {
		days = append(days, DailyStreakResponse{
			Date:           c.Date,
			GoalsCompleted: c.GoalsCompleted,
			IsStrike:       c.IsStrike(),
		})
	}
	return StreakResponse{
		CurrentStreak: currentStreak,
		Days:          days,
	}
}
