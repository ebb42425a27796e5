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

// SendRequestInput represents the input for sending a friend request.
type SendRequestInput struct {
	SenderID uuid.UUID
	Email    string
}

// SendRequestOutput represents the output of sending a friend request.
type SendRequestOutput struct {
	Request *entity.FriendRequest
}

// SendRequestUseCase handles sending a friend request to a user identified by
// email.
type SendRequestUseCase struct {
	userRepo     adapter.UserRepository
	friendRepo   adapter.FriendRepository
	emailService adapter.EmailService
	friendsURL   string
}

// NewSendRequestUseCase creates a new SendRequestUseCase instance.
func NewSendRequestUseCase(
	userRepo adapter.UserRepository,
	friendRepo adapter.FriendRepository,
	emailService adapter.EmailService,
	friendsURL string,
) *SendRequestUseCase {
	return &SendRequestUseCase{
		userRepo:     userRepo,
		friendRepo:   friendRepo,
		emailService: emailService,
		friendsURL:   friendsURL,
	}
}

// Execute performs the friend request creation.
func (uc *SendRequestUseCase) Execute(ctx context.Context, input SendRequestInput) (*SendRequestOutput, error) {
	receiver, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewFriendError(
				domainerror.ErrCodeFriendUserNotFound,
				"no user with that email",
				domainerror.ErrFriendUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if receiver.ID == input.SenderID {
		return nil, domainerror.NewFriendError(
			domainerror.ErrCodeSelfFriendRequest,
			"cannot send a friend request to yourself",
			domainerror.ErrSelfFriendRequest,
		)
	}

	alreadyFriends, err := uc.friendRepo.AreFriends(ctx, input.SenderID, receiver.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check friendship: %w", err)
	}
	if alreadyFriends {
		return nil, domainerror.NewFriendError(
			domainerror.ErrCodeAlreadyFriends,
			"users are already friends",
			domainerror.ErrAlreadyFriends,
		)
	}

	pending, err := uc.friendRepo.PendingRequestExistsBetween(ctx, input.SenderID, receiver.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending requests: %w", err)
	}
	if pending {
		return nil, domainerror.NewFriendError(
			domainerror.ErrCodeRequestAlreadyExists,
			"a friend request between these users already exists",
			domainerror.ErrRequestAlreadyExists,
		)
	}

	sender, err := uc.userRepo.FindByID(ctx, input.SenderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sender: %w", err)
	}

	request := entity.NewFriendRequest(sender.ID, receiver.ID)
	if err := uc.friendRepo.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}

	// The notification is best-effort: the request itself is already created.
	_ = uc.emailService.QueueFriendRequestEmail(ctx, adapter.QueueFriendRequestInput{
		SenderName:     sender.Name,
		SenderEmail:    sender.Email,
		ReceiverName:   receiver.Name,
		ReceiverEmail:  receiver.Email,
		FriendsPageURL: uc.friendsURL,
	})

	return &SendRequestOutput{Request: request}, nil
}
