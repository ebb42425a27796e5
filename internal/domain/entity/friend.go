// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FriendRequestStatus represents the status of a friend request.
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
)

// FriendRequest is a directed request from one user to befriend another.
type FriendRequest struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Status     FriendRequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewFriendRequest creates a pending friend request.
func NewFriendRequest(senderID, receiverID uuid.UUID) *FriendRequest {
	now := time.Now().UTC()
	return &FriendRequest{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     FriendRequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Friendship is a symmetric relation between two users, stored once with the
// member IDs in canonical order so lookups and duplicate detection need only
// a single orientation.
type Friendship struct {
	ID        uuid.UUID
	User1ID   uuid.UUID
	User2ID   uuid.UUID
	CreatedAt time.Time
}

// NewFriendship creates a Friendship with the two IDs canonically ordered:
// the lexicographically smaller UUID string is stored first.
func NewFriendship(a, b uuid.UUID) *Friendship {
	u1, u2 := OrderedPair(a, b)
	return &Friendship{
		ID:        uuid.New(),
		User1ID:   u1,
		User2ID:   u2,
		CreatedAt: time.Now().UTC(),
	}
}

// OrderedPair returns the two IDs in canonical storage order.
func OrderedPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if strings.Compare(a.String(), b.String()) <= 0 {
		return a, b
	}
	return b, a
}

// Other returns the member of the friendship that is not the given user.
func (f *Friendship) Other(userID uuid.UUID) uuid.UUID {
	if f.User1ID == userID {
		return f.User2ID
	}
	return f.User1ID
}
