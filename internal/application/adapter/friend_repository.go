// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// FriendRepository defines the interface for friend request and friendship
// persistence operations.
type FriendRepository interface {
	// CreateRequest creates a new pending friend request.
	CreateRequest(ctx context.Context, request *entity.FriendRequest) error

	// FindRequestByID retrieves a friend request by its ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error)

	// PendingRequestExistsBetween checks for a pending request between the two
	// users in either direction.
	PendingRequestExistsBetween(ctx context.Context, a, b uuid.UUID) (bool, error)

	// AcceptRequest marks the pending request accepted and stores the
	// friendship row in a single transaction, so a failure cannot leave a
	// friendship behind while the request stays pending.
	AcceptRequest(ctx context.Context, requestID uuid.UUID, friendship *entity.Friendship) error

	// CreateFriendship stores a friendship row (already canonically ordered).
	CreateFriendship(ctx context.Context, friendship *entity.Friendship) error

	// AreFriends checks whether an accepted friendship exists between the two users.
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)

	// FindFriendshipsByUser retrieves all friendships the user is part of.
	FindFriendshipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)

	// FindPendingSentByUser retrieves pending requests the user has sent.
	FindPendingSentByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FriendRequest, error)

	// FindPendingReceivedByUser retrieves pending requests addressed to the user.
	FindPendingReceivedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FriendRequest, error)
}
