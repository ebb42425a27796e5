// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Upload domain errors.
var (
	// ErrNoFileProvided is returned when the multipart form has no file part.
	ErrNoFileProvided = errors.New("no file provided")

	// ErrUnsupportedFileType is returned for anything but PNG or JPEG uploads.
	ErrUnsupportedFileType = errors.New("only PNG and JPG images are allowed")

	// ErrFileTooLarge is returned when an upload exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")

	// ErrStorageFailed is returned when the file could not be written to storage.
	ErrStorageFailed = errors.New("failed to store file")
)

// UploadErrorCode defines error codes for upload errors.
// Format: UPL-XXYYYY where XX is category and YYYY is specific error.
type UploadErrorCode string

const (
	ErrCodeNoFileProvided      UploadErrorCode = "UPL-010001"
	ErrCodeUnsupportedFileType UploadErrorCode = "UPL-010002"
	ErrCodeFileTooLarge        UploadErrorCode = "UPL-010003"
	ErrCodeStorageFailed       UploadErrorCode = "UPL-020001"
)

// UploadError represents an upload error with code and message.
type UploadError struct {
	Code    UploadErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UploadError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UploadError) Unwrap() error {
	return e.Err
}

// NewUploadError creates a new UploadError with the given code and message.
func NewUploadError(code UploadErrorCode, message string, err error) *UploadError {
	return &UploadError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
