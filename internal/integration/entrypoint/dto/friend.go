// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/application/usecase/friend"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// SendFriendRequestRequest represents the request body for sending a friend
// request.
type SendFriendRequestRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AcceptFriendRequestRequest represents the request body for accepting a
// friend request.
type AcceptFriendRequestRequest struct {
	RequestID string `json:"request_id" binding:"required,uuid"`
}

// FriendRequestResponse represents a friend request in API responses.
type FriendRequestResponse struct {
	ID        string       `json:"id"`
	Status    string       `json:"status"`
	User      UserResponse `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

// FriendResponse represents an accepted friendship in API responses.
type FriendResponse struct {
	FriendshipID string       `json:"friendship_id"`
	Friend       UserResponse `json:"friend"`
	Since        time.Time    `json:"since"`
}

// FriendshipResponse represents a newly created friendship.
type FriendshipResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// FriendListResponse represents the response for listing the friend graph.
type FriendListResponse struct {
	Friends         []FriendResponse        `json:"friends"`
	PendingSent     []FriendRequestResponse `json:"pending_sent"`
	PendingReceived []FriendRequestResponse `json:"pending_received"`
}

// ToFriendRequestResponse converts a request and its counterpart user to a DTO.
func ToFriendRequestResponse(entry *friend.RequestEntry) FriendRequestResponse {
	return FriendRequestResponse{
		ID:        entry.Request.ID.String(),
		Status:    string(entry.Request.Status),
		User:      ToUserResponse(entry.User),
		CreatedAt: entry.Request.CreatedAt,
	}
}

// ToFriendResponse converts a friendship entry to a DTO.
func ToFriendResponse(entry *friend.FriendEntry) FriendResponse {
	return FriendResponse{
		FriendshipID: entry.Friendship.ID.String(),
		Friend:       ToUserResponse(entry.Friend),
		Since:        entry.Friendship.CreatedAt,
	}
}

// ToFriendshipResponse converts a domain Friendship entity to a DTO.
func ToFriendshipResponse(friendship *entity.Friendship) FriendshipResponse {
	return FriendshipResponse{
		ID:        friendship.ID.String(),
		CreatedAt: friendship.CreatedAt,
	}
}
