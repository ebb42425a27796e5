// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// HabitController handles habit goal endpoints.
type HabitController struct {
	createGoalUseCase   *habit.CreateGoalUseCase
	listGoalsUseCase    *habit.ListGoalsUseCase
	completeGoalUseCase *habit.CompleteGoalUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	createGoalUseCase *habit.CreateGoalUseCase,
	listGoalsUseCase *habit.ListGoalsUseCase,
	completeGoalUseCase *habit.CompleteGoalUseCase,
) *HabitController {
	return &HabitController{
		createGoalUseCase:   createGoalUseCase,
		listGoalsUseCase:    listGoalsUseCase,
		completeGoalUseCase: completeGoalUseCase,
	}
}

// ListGoals handles GET /goals requests.
func (c *HabitController) ListGoals(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listGoalsUseCase.Execute(ctx.Request.Context(), habit.ListGoalsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	goals := make([]dto.GoalResponse, 0, len(output.Goals))
	for _, g := range output.Goals {
		goals = append(goals, dto.ToGoalResponse(g))
	}

	ctx.JSON(http.StatusOK, dto.GoalListResponse{Goals: goals})
}

// CreateGoal handles POST /goals requests.
func (c *HabitController) CreateGoal(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	output, err := c.createGoalUseCase.Execute(ctx.Request.Context(), habit.CreateGoalInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(&entity.GoalWithLastCompletion{
		Goal: output.Goal,
	}))
}

// CompleteGoal handles POST /goals/:id/complete requests.
func (c *HabitController) CompleteGoal(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	// Body is optional: photo and notes may be omitted entirely.
	var req dto.CompleteGoalRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
				Code:  string(domainerror.ErrCodeMissingHabitFields),
			})
			return
		}
	}

	output, err := c.completeGoalUseCase.Execute(ctx.Request.Context(), habit.CompleteGoalInput{
		UserID:   userID,
		GoalID:   goalID,
		PhotoURL: req.PhotoURL,
		Notes:    req.Notes,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCompletionResponse(output.Completion))
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		statusCode := c.getStatusCodeForHabitError(habitErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyGoalTitle,
		domainerror.ErrCodeMissingHabitFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAlreadyCompletedToday:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
