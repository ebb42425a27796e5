// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/achievement"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// AchievementController handles achievement endpoints.
type AchievementController struct {
	createUseCase *achievement.CreateAchievementUseCase
	listUseCase   *achievement.ListAchievementsUseCase
}

// NewAchievementController creates a new achievement controller instance.
func NewAchievementController(
	createUseCase *achievement.CreateAchievementUseCase,
	listUseCase *achievement.ListAchievementsUseCase,
) *AchievementController {
	return &AchievementController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /achievements requests.
func (c *AchievementController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), achievement.ListAchievementsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAchievementError(ctx, err)
		return
	}

	achievements := make([]dto.AchievementResponse, 0, len(output.Achievements))
	for _, a := range output.Achievements {
		achievements = append(achievements, dto.ToAchievementResponse(a))
	}

	ctx.JSON(http.StatusOK, dto.AchievementListResponse{Achievements: achievements})
}

// Create handles POST /achievements requests.
func (c *AchievementController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingAchievementFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), achievement.CreateAchievementInput{
		UserID:   userID,
		PhotoURL: req.PhotoURL,
		Caption:  req.Caption,
	})
	if err != nil {
		c.handleAchievementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAchievementResponse(output.Achievement))
}

// handleAchievementError handles achievement errors and returns appropriate HTTP responses.
func (c *AchievementController) handleAchievementError(ctx *gin.Context, err error) {
	var achievementErr *domainerror.AchievementError
	if errors.As(err, &achievementErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: achievementErr.Message,
			Code:  string(achievementErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
