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

// AcceptRequestInput represents the input for accepting a friend request.
type AcceptRequestInput struct {
	UserID    uuid.UUID
	RequestID uuid.UUID
}

// AcceptRequestOutput represents the output of accepting a friend request.
type AcceptRequestOutput struct {
	Friendship *entity.Friendship
}

// AcceptRequestUseCase handles accepting a pending friend request. Only the
// receiver of a request may accept it.
type AcceptRequestUseCase struct {
	userRepo     adapter.UserRepository
	friendRepo   adapter.FriendRepository
	emailService adapter.EmailService
	friendsURL   string
}

// NewAcceptRequestUseCase creates a new AcceptRequestUseCase instance.
func NewAcceptRequestUseCase(
	userRepo adapter.UserRepository,
	friendRepo adapter.FriendRepository,
	emailService adapter.EmailService,
	friendsURL string,
) *AcceptRequestUseCase {
	return &AcceptRequestUseCase{
		userRepo:     userRepo,
		friendRepo:   friendRepo,
		emailService: emailService,
		friendsURL:   friendsURL,
	}
}

// Execute performs the request acceptance.
func (uc *AcceptRequestUseCase) Execute(ctx context.Context, input AcceptRequestInput) (*AcceptRequestOutput, error) {
	request, err := uc.friendRepo.FindRequestByID(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRequestNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load friend request: %w", err)
	}

	if request.ReceiverID != input.UserID {
		return nil, domainerror.NewFriendError(
			domainerror.ErrCodeNotRequestReceiver,
			"only the receiver can accept this request",
			domainerror.ErrNotRequestReceiver,
		)
	}

	// An already-accepted request cannot be accepted again.
	if request.Status != entity.FriendRequestPending {
		return nil, domainerror.NewFriendError(
			domainerror.ErrCodeRequestNotFound,
			"friend request is no longer pending",
			domainerror.ErrRequestNotFound,
		)
	}

	// The status flip and the friendship row go through one transaction so a
	// failure cannot strand the request in pending next to a live friendship.
	friendship := entity.NewFriendship(request.SenderID, request.ReceiverID)
	if err := uc.friendRepo.AcceptRequest(ctx, request.ID, friendship); err != nil {
		var friendErr *domainerror.FriendError
		if errors.As(err, &friendErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to accept friend request: %w", err)
	}

	// Tell the original sender their request was accepted; best-effort.
	accepter, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err == nil {
		if sender, err := uc.userRepo.FindByID(ctx, request.SenderID); err == nil {
			_ = uc.emailService.QueueFriendAcceptedEmail(ctx, adapter.QueueFriendAcceptedInput{
				AccepterName: accepter.Name,
				SenderName:   sender.Name,
				SenderEmail:  sender.Email,
				ProfileURL:   uc.friendsURL,
			})
		}
	}

	return &AcceptRequestOutput{Friendship: friendship}, nil
}
