// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UploadedPhoto records a photo stored on local disk so orphaned files can be
// audited or cleaned up later.
type UploadedPhoto struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FilePath  string // filesystem path
	URL       string // public URL, e.g. /uploads/<name>
	SizeBytes int64
	CreatedAt time.Time
}

// NewUploadedPhoto creates a new UploadedPhoto record.
func NewUploadedPhoto(userID uuid.UUID, filePath, url string, sizeBytes int64) *UploadedPhoto {
	return &UploadedPhoto{
		ID:        uuid.New(),
		UserID:    userID,
		FilePath:  filePath,
		URL:       url,
		SizeBytes: sizeBytes,
		CreatedAt: time.Now().UTC(),
	}
}
