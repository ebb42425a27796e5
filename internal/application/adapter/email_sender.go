// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing notification emails.
type EmailService interface {
	// QueueFriendRequestEmail queues a "you received a friend request" email.
	QueueFriendRequestEmail(ctx context.Context, input QueueFriendRequestInput) error

	// QueueFriendAcceptedEmail queues a "your friend request was accepted" email.
	QueueFriendAcceptedEmail(ctx context.Context, input QueueFriendAcceptedInput) error
}

// QueueFriendRequestInput represents the input for queueing a friend request email.
type QueueFriendRequestInput struct {
	SenderName     string
	SenderEmail    string
	ReceiverName   string
	ReceiverEmail  string
	FriendsPageURL string
}

// QueueFriendAcceptedInput represents the input for queueing a friend accepted email.
type QueueFriendAcceptedInput struct {
	AccepterName string
	SenderName   string
	SenderEmail  string
	ProfileURL   string
}
