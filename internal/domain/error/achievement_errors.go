// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Achievement domain errors.
var (
	// ErrInvalidPhotoURL is returned when an achievement photo URL is not an
	// absolute URL or a /-rooted path.
	ErrInvalidPhotoURL = errors.New("invalid photo URL")
)

// AchievementErrorCode defines error codes for achievement errors.
// Format: ACH-XXYYYY where XX is category and YYYY is specific error.
type AchievementErrorCode string

const (
	ErrCodeInvalidPhotoURL          AchievementErrorCode = "ACH-010001"
	ErrCodeMissingAchievementFields AchievementErrorCode = "ACH-010002"
)

// AchievementError represents an achievement error with code and message.
type AchievementError struct {
	Code    AchievementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AchievementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AchievementError) Unwrap() error {
	return e.Err
}

// NewAchievementError creates a new AchievementError with the given code and message.
func NewAchievementError(code AchievementErrorCode, message string, err error) *AchievementError {
	return &AchievementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
