// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// friendRepository implements the adapter.FriendRepository interface.
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository instance.
func NewFriendRepository(db *gorm.DB) adapter.FriendRepository {
	return &friendRepository{
		db: db,
	}
}

// CreateRequest creates a new pending friend request.
func (r *friendRepository) CreateRequest(ctx context.Context, request *entity.FriendRequest) error {
	requestModel := model.FriendRequestFromEntity(request)
	return r.db.WithContext(ctx).Create(requestModel).Error
}

// FindRequestByID retrieves a friend request by its ID.
func (r *friendRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error) {
	var requestModel model.FriendRequestModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&requestModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewFriendError(
				domainerror.ErrCodeRequestNotFound,
				"friend request not found",
				domainerror.ErrRequestNotFound,
			)
		}
		return nil, result.Error
	}
	return requestModel.ToEntity(), nil
}

// PendingRequestExistsBetween checks for a pending request between the two
// users in either direction.
func (r *friendRepository) PendingRequestExistsBetween(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.FriendRequestModel{}).
		Where("status = ?", string(entity.FriendRequestPending)).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// AcceptRequest flips the pending request to accepted and inserts the
// friendship row in one transaction. The status update is guarded on
// status = pending, so a request that was already accepted (or a concurrent
// accept) rolls back without touching either row.
func (r *friendRepository) AcceptRequest(ctx context.Context, requestID uuid.UUID, friendship *entity.Friendship) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&model.FriendRequestModel{}).
			Where("id = ? AND status = ?", requestID, string(entity.FriendRequestPending)).
			Updates(map[string]any{
				"status":     string(entity.FriendRequestAccepted),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewFriendError(
				domainerror.ErrCodeRequestNotFound,
				"friend request is no longer pending",
				domainerror.ErrRequestNotFound,
			)
		}

		return createFriendship(tx, friendship)
	})
}

// CreateFriendship stores a friendship row. The caller passes it already
// canonically ordered; the unique index on the pair rejects duplicates.
func (r *friendRepository) CreateFriendship(ctx context.Context, friendship *entity.Friendship) error {
	return createFriendship(r.db.WithContext(ctx), friendship)
}

func createFriendship(db *gorm.DB, friendship *entity.Friendship) error {
	friendshipModel := model.FriendshipFromEntity(friendship)
	if err := db.Create(friendshipModel).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerror.NewFriendError(
				domainerror.ErrCodeAlreadyFriends,
				"users are already friends",
				domainerror.ErrAlreadyFriends,
			)
		}
		return err
	}
	return nil
}

// AreFriends checks whether a friendship exists between the two users.
// Storage is canonically ordered, so one lookup covers both directions.
func (r *friendRepository) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	u1, u2 := entity.OrderedPair(a, b)
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindFriendshipsByUser retrieves all friendships the user is part of.
func (r *friendRepository) FindFriendshipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	var friendshipModels []model.FriendshipModel
	result := r.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&friendshipModels)
	if result.Error != nil {
		return nil, result.Error
	}

	friendships := make([]*entity.Friendship, 0, len(friendshipModels))
	for i := range friendshipModels {
		friendships = append(friendships, friendshipModels[i].ToEntity())
	}
	return friendships, nil
}

// FindPendingSentByUser retrieves pending requests the user has sent.
func (r *friendRepository) FindPendingSentByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FriendRequest, error) {
	return r.findPendingRequests(ctx, "sender_id = ?", userID)
}

// FindPendingReceivedByUser retrieves pending requests addressed to the user.
func (r *friendRepository) FindPendingReceivedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FriendRequest, error) {
	return r.findPendingRequests(ctx, "receiver_id = ?", userID)
}

func (r *friendRepository) findPendingRequests(ctx context.Context, condition string, userID uuid.UUID) ([]*entity.FriendRequest, error) {
	var requestModels []model.FriendRequestModel
	result := r.db.WithContext(ctx).
		Where(condition, userID).
		Where("status = ?", string(entity.FriendRequestPending)).
		Order("created_at DESC").
		Find(&requestModels)
	if result.Error != nil {
		return nil, result.Error
	}

	requests := make([]*entity.FriendRequest, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, requestModels[i].ToEntity())
	}
	return requests, nil
}
