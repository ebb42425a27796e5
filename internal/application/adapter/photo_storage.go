// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// SavePhotoInput represents the input for storing an uploaded photo.
type SavePhotoInput struct {
	UserID   uuid.UUID
	Filename string
	Size     int64
	Content  io.Reader
}

// PhotoStorage defines the interface for storing uploaded photos. The storage
// returns a retrievable public URL for the saved file.
type PhotoStorage interface {
	// Save writes the photo and returns its filesystem path and public URL.
	Save(ctx context.Context, input SavePhotoInput) (filePath string, url string, err error)
}

// UploadedPhotoRepository records stored photos for later auditing.
type UploadedPhotoRepository interface {
	// Create records an uploaded photo.
	Create(ctx context.Context, photo *entity.UploadedPhoto) error
}
