// Package friend contains friend graph use cases.
package friend

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListFriendsInput represents the input for listing the friend graph.
type ListFriendsInput struct {
	UserID uuid.UUID
}

// FriendEntry pairs a friendship with the other member's user record.
type FriendEntry struct {
	Friendship *entity.Friendship
	Friend     *entity.User
}

// RequestEntry pairs a pending request with the counterpart user record:
// the receiver for sent requests, the sender for received ones.
type RequestEntry struct {
	Request *entity.FriendRequest
	User    *entity.User
}

// ListFriendsOutput represents the output of listing the friend graph.
type ListFriendsOutput struct {
	Friends         []*FriendEntry
	PendingSent     []*RequestEntry
	PendingReceived []*RequestEntry
}

// ListFriendsUseCase returns the user's friendships plus pending requests in
// both directions.
type ListFriendsUseCase struct {
	userRepo   adapter.UserRepository
	friendRepo adapter.FriendRepository
}

// NewListFriendsUseCase creates a new ListFriendsUseCase instance.
func NewListFriendsUseCase(
	userRepo adapter.UserRepository,
	friendRepo adapter.FriendRepository,
) *ListFriendsUseCase {
	return &ListFriendsUseCase{
		userRepo:   userRepo,
		friendRepo: friendRepo,
	}
}

// Execute retrieves the friend graph for the user.
func (uc *ListFriendsUseCase) Execute(ctx context.Context, input ListFriendsInput) (*ListFriendsOutput, error) {
	friendships, err := uc.friendRepo.FindFriendshipsByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}

	friends := make([]*FriendEntry, 0, len(friendships))
	for _, fs := range friendships {
		friendUser, err := uc.userRepo.FindByID(ctx, fs.Other(input.UserID))
		if err != nil {
			return nil, fmt.Errorf("failed to load friend user: %w", err)
		}
		friends = append(friends, &FriendEntry{Friendship: fs, Friend: friendUser})
	}

	sent, err := uc.friendRepo.FindPendingSentByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent requests: %w", err)
	}
	pendingSent, err := uc.resolveRequests(ctx, sent, func(r *entity.FriendRequest) uuid.UUID { return r.ReceiverID })
	if err != nil {
		return nil, err
	}

	received, err := uc.friendRepo.FindPendingReceivedByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received requests: %w", err)
	}
	pendingReceived, err := uc.resolveRequests(ctx, received, func(r *entity.FriendRequest) uuid.UUID { return r.SenderID })
	if err != nil {
		return nil, err
	}

	return &ListFriendsOutput{
		Friends:         friends,
		PendingSent:     pendingSent,
		PendingReceived: pendingReceived,
	}, nil
}

func (uc *ListFriendsUseCase) resolveRequests(
	ctx context.Context,
	requests []*entity.FriendRequest,
	counterpart func(*entity.FriendRequest) uuid.UUID,
) ([]*RequestEntry, error) {
	entries := make([]*RequestEntry, 0, len(requests))
	for _, r := range requests {
		user, err := uc.userRepo.FindByID(ctx, counterpart(r))
		if err != nil {
			return nil, fmt.Errorf("failed to load request counterpart: %w", err)
		}
		entries = append(entries, &RequestEntry{Request: r, User: user})
	}
	return entries, nil
}
