// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/friend"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// FriendController handles friend graph endpoints.
type FriendController struct {
	sendRequestUseCase   *friend.SendRequestUseCase
	acceptRequestUseCase *friend.AcceptRequestUseCase
	listFriendsUseCase   *friend.ListFriendsUseCase
	getProfileUseCase    *friend.GetProfileUseCase
}

// NewFriendController creates a new friend controller instance.
func NewFriendController(
	sendRequestUseCase *friend.SendRequestUseCase,
	acceptRequestUseCase *friend.AcceptRequestUseCase,
	listFriendsUseCase *friend.ListFriendsUseCase,
	getProfileUseCase *friend.GetProfileUseCase,
) *FriendController {
	return &FriendController{
		sendRequestUseCase:   sendRequestUseCase,
		acceptRequestUseCase: acceptRequestUseCase,
		listFriendsUseCase:   listFriendsUseCase,
		getProfileUseCase:    getProfileUseCase,
	}
}

// SendRequest handles POST /friends/request requests.
func (c *FriendController) SendRequest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.SendFriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeFriendUserNotFound),
		})
		return
	}

	output, err := c.sendRequestUseCase.Execute(ctx.Request.Context(), friend.SendRequestInput{
		SenderID: userID,
		Email:    req.Email,
	})
	if err != nil {
		c.handleFriendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":         output.Request.ID.String(),
		"status":     string(output.Request.Status),
		"created_at": output.Request.CreatedAt,
	})
}

// AcceptRequest handles POST /friends/accept requests.
func (c *FriendController) AcceptRequest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.AcceptFriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeRequestNotFound),
		})
		return
	}

	requestID, err := uuid.Parse(req.RequestID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request ID",
			Code:  string(domainerror.ErrCodeRequestNotFound),
		})
		return
	}

	output, err := c.acceptRequestUseCase.Execute(ctx.Request.Context(), friend.AcceptRequestInput{
		UserID:    userID,
		RequestID: requestID,
	})
	if err != nil {
		c.handleFriendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFriendshipResponse(output.Friendship))
}

// ListFriends handles GET /friends requests.
func (c *FriendController) ListFriends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listFriendsUseCase.Execute(ctx.Request.Context(), friend.ListFriendsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleFriendError(ctx, err)
		return
	}

	friends := make([]dto.FriendResponse, 0, len(output.Friends))
	for _, entry := range output.Friends {
		friends = append(friends, dto.ToFriendResponse(entry))
	}
	sent := make([]dto.FriendRequestResponse, 0, len(output.PendingSent))
	for _, entry := range output.PendingSent {
		sent = append(sent, dto.ToFriendRequestResponse(entry))
	}
	received := make([]dto.FriendRequestResponse, 0, len(output.PendingReceived))
	for _, entry := range output.PendingReceived {
		received = append(received, dto.ToFriendRequestResponse(entry))
	}

	ctx.JSON(http.StatusOK, dto.FriendListResponse{
		Friends:         friends,
		PendingSent:     sent,
		PendingReceived: received,
	})
}

// GetProfile handles GET /users/:id requests.
func (c *FriendController) GetProfile(ctx *gin.Context) {
	viewerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	targetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID",
			Code:  string(domainerror.ErrCodeFriendUserNotFound),
		})
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), friend.GetProfileInput{
		ViewerID: viewerID,
		UserID:   targetID,
	})
	if err != nil {
		c.handleFriendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// handleFriendError handles friend graph errors and returns appropriate HTTP responses.
func (c *FriendController) handleFriendError(ctx *gin.Context, err error) {
	var friendErr *domainerror.FriendError
	if errors.As(err, &friendErr) {
		statusCode := c.getStatusCodeForFriendError(friendErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: friendErr.Message,
			Code:  string(friendErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFriendError maps friend error codes to HTTP status codes.
func (c *FriendController) getStatusCodeForFriendError(code domainerror.FriendErrorCode) int {
	switch code {
	case domainerror.ErrCodeFriendUserNotFound,
		domainerror.ErrCodeRequestNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSelfFriendRequest:
		return http.StatusBadRequest
	case domainerror.ErrCodeAlreadyFriends,
		domainerror.ErrCodeRequestAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeNotRequestReceiver,
		domainerror.ErrCodeProfileNotVisible:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
