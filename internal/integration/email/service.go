// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueFriendRequestEmail queues a "you received a friend request" email.
func (s *Service) QueueFriendRequestEmail(ctx context.Context, input adapter.QueueFriendRequestInput) error {
	subject := fmt.Sprintf("%s sent you a friend request - Habit Tracker", input.SenderName)

	templateData := map[string]interface{}{
		"sender_name":      input.SenderName,
		"sender_email":     input.SenderEmail,
		"receiver_name":    input.ReceiverName,
		"friends_page_url": input.FriendsPageURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateFriendRequest,
		input.ReceiverEmail,
		input.ReceiverName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue friend request email",
			err,
		)
	}

	return nil
}

// QueueFriendAcceptedEmail queues a "your friend request was accepted" email.
func (s *Service) QueueFriendAcceptedEmail(ctx context.Context, input adapter.QueueFriendAcceptedInput) error {
	subject := fmt.Sprintf("%s accepted your friend request - Habit Tracker", input.AccepterName)

	templateData := map[string]interface{}{
		"accepter_name": input.AccepterName,
		"sender_name":   input.SenderName,
		"profile_url":   input.ProfileURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateFriendAccepted,
		input.SenderEmail,
		input.SenderName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue friend accepted email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
