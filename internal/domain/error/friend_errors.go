// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Friend graph domain errors.
var (
	// ErrFriendUserNotFound is returned when the requested user does not exist.
	ErrFriendUserNotFound = errors.New("user not found")

	// ErrSelfFriendRequest is returned when a user sends a friend request to themselves.
	ErrSelfFriendRequest = errors.New("cannot send a friend request to yourself")

	// ErrAlreadyFriends is returned when a friendship already exists between the two users.
	ErrAlreadyFriends = errors.New("users are already friends")

	// ErrRequestAlreadyExists is returned when a pending request already exists
	// between the two users in either direction.
	ErrRequestAlreadyExists = errors.New("friend request already exists")

	// ErrRequestNotFound is returned when a friend request does not exist.
	ErrRequestNotFound = errors.New("friend request not found")

	// ErrNotRequestReceiver is returned when a user other than the receiver tries
	// to accept a request.
	ErrNotRequestReceiver = errors.New("only the receiver can accept this request")

	// ErrProfileNotVisible is returned when a user views a profile of someone who
	// is neither themselves nor an accepted friend.
	ErrProfileNotVisible = errors.New("profile is only visible to friends")
)

// FriendErrorCode defines error codes for friend graph errors.
// Format: FRD-XXYYYY where XX is category and YYYY is specific error.
type FriendErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeFriendUserNotFound   FriendErrorCode = "FRD-010001"
	ErrCodeSelfFriendRequest    FriendErrorCode = "FRD-010002"
	ErrCodeAlreadyFriends       FriendErrorCode = "FRD-010003"
	ErrCodeRequestAlreadyExists FriendErrorCode = "FRD-010004"

	// Accept errors (02XXXX)
	ErrCodeRequestNotFound    FriendErrorCode = "FRD-020001"
	ErrCodeNotRequestReceiver FriendErrorCode = "FRD-020002"

	// Profile errors (03XXXX)
	ErrCodeProfileNotVisible FriendErrorCode = "FRD-030001"
)

// FriendError represents a friend graph error with code and message.
type FriendError struct {
	Code    FriendErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FriendError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FriendError) Unwrap() error {
	return e.Err
}

// NewFriendError creates a new FriendError with the given code and message.
func NewFriendError(code FriendErrorCode, message string, err error) *FriendError {
	return &FriendError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
