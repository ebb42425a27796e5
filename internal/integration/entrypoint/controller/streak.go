// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/streak"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// StreakController handles streak endpoints.
type StreakController struct {
	getStreaksUseCase *streak.GetStreaksUseCase
}

// NewStreakController creates a new streak controller instance.
func NewStreakController(getStreaksUseCase *streak.GetStreaksUseCase) *StreakController {
	return &StreakController{
		getStreaksUseCase: getStreaksUseCase,
	}
}

// GetStreaks handles GET /streaks requests.
func (c *StreakController) GetStreaks(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.getStreaksUseCase.Execute(ctx.Request.Context(), streak.GetStreaksInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStreakResponse(output.Counters, output.CurrentStreak))
}
