// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Habit goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal does not exist or does not belong
	// to the acting user. The two cases are deliberately indistinguishable so
	// goal existence is never leaked to non-owners.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrEmptyGoalTitle is returned when a goal is created without a title.
	ErrEmptyGoalTitle = errors.New("goal title must not be empty")

	// ErrAlreadyCompletedToday is returned when a goal already has a completion
	// within the current calendar day.
	ErrAlreadyCompletedToday = errors.New("goal already completed today")
)

// HabitErrorCode defines error codes for habit goal errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyGoalTitle     HabitErrorCode = "HAB-010001"
	ErrCodeMissingHabitFields HabitErrorCode = "HAB-010002"

	// Completion errors (02XXXX)
	ErrCodeGoalNotFound          HabitErrorCode = "HAB-020001"
	ErrCodeAlreadyCompletedToday HabitErrorCode = "HAB-020002"
)

// HabitError represents a habit goal error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
