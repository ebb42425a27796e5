// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// FriendRequestModel represents the friend_requests table in the database.
type FriendRequestModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the FriendRequestModel.
func (FriendRequestModel) TableName() string {
	return "friend_requests"
}

// ToEntity converts a FriendRequestModel to a domain FriendRequest entity.
func (m *FriendRequestModel) ToEntity() *entity.FriendRequest {
	return &entity.FriendRequest{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Status:     entity.FriendRequestStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FriendRequestFromEntity creates a FriendRequestModel from a domain entity.
func FriendRequestFromEntity(request *entity.FriendRequest) *FriendRequestModel {
	return &FriendRequestModel{
		ID:         request.ID,
		SenderID:   request.SenderID,
		ReceiverID: request.ReceiverID,
		Status:     string(request.Status),
		CreatedAt:  request.CreatedAt,
		UpdatedAt:  request.UpdatedAt,
	}
}

// FriendshipModel represents the friendships table in the database. Rows are
// stored with the member IDs in canonical order, enforced unique.
type FriendshipModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	User1ID   uuid.UUID `gorm:"column:user1_id;type:uuid;not null;uniqueIndex:idx_friendships_pair"`
	User2ID   uuid.UUID `gorm:"column:user2_id;type:uuid;not null;uniqueIndex:idx_friendships_pair"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the FriendshipModel.
func (FriendshipModel) TableName() string {
	return "friendships"
}

// ToEntity converts a FriendshipModel to a domain Friendship entity.
func (m *FriendshipModel) ToEntity() *entity.Friendship {
	return &entity.Friendship{
		ID:        m.ID,
		User1ID:   m.User1ID,
		User2ID:   m.User2ID,
		CreatedAt: m.CreatedAt,
	}
}

// FriendshipFromEntity creates a FriendshipModel from a domain entity.
func FriendshipFromEntity(friendship *entity.Friendship) *FriendshipModel {
	return &FriendshipModel{
		ID:        friendship.ID,
		User1ID:   friendship.User1ID,
		User2ID:   friendship.User2ID,
		CreatedAt: friendship.CreatedAt,
	}
}
