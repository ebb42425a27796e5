// Package friend contains friend graph use cases.
package friend

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// GetProfileInput represents the input for viewing a user profile.
type GetProfileInput struct {
	ViewerID uuid.UUID
	UserID   uuid.UUID
}

// GetProfileOutput represents the output of viewing a user profile.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase returns a user profile, visible only to the user
// themselves or their accepted friends.
type GetProfileUseCase struct {
	userRepo   adapter.UserRepository
	friendRepo adapter.FriendRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(
	userRepo adapter.UserRepository,
	friendRepo adapter.FriendRepository,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:   userRepo,
		friendRepo: friendRepo,
	}
}

// Execute performs the profile lookup. The visibility check runs before the
// user lookup, so a non-friend viewer gets Forbidden whether or not the
// target exists.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	if input.ViewerID != input.UserID {
		friends, err := uc.friendRepo.AreFriends(ctx, input.ViewerID, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check friendship: %w", err)
		}
		if !friends {
			return nil, domainerror.NewFriendError(
				domainerror.ErrCodeProfileNotVisible,
				"profile is only visible to friends",
				domainerror.ErrProfileNotVisible,
			)
		}
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewFriendError(
				domainerror.ErrCodeFriendUserNotFound,
				"user not found",
				domainerror.ErrFriendUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &GetProfileOutput{User: user}, nil
}
