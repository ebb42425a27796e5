// Package upload contains the photo upload use case.
package upload

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// allowedContentTypes are the image types accepted for upload.
var allowedContentTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// UploadPhotoInput represents the input for uploading a photo.
type UploadPhotoInput struct {
	UserID      uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadPhotoOutput represents the output of uploading a photo.
type UploadPhotoOutput struct {
	PhotoURL string
}

// UploadPhotoUseCase validates and stores an uploaded photo and records it
// for auditing.
type UploadPhotoUseCase struct {
	storage      adapter.PhotoStorage
	photoRepo    adapter.UploadedPhotoRepository
	maxSizeBytes int64
}

// NewUploadPhotoUseCase creates a new UploadPhotoUseCase instance.
func NewUploadPhotoUseCase(
	storage adapter.PhotoStorage,
	photoRepo adapter.UploadedPhotoRepository,
	maxSizeBytes int64,
) *UploadPhotoUseCase {
	return &UploadPhotoUseCase{
		storage:      storage,
		photoRepo:    photoRepo,
		maxSizeBytes: maxSizeBytes,
	}
}

// Execute performs the upload.
func (uc *UploadPhotoUseCase) Execute(ctx context.Context, input UploadPhotoInput) (*UploadPhotoOutput, error) {
	if input.Content == nil {
		return nil, domainerror.NewUploadError(
			domainerror.ErrCodeNoFileProvided,
			"no file provided",
			domainerror.ErrNoFileProvided,
		)
	}

	if !allowedContentTypes[input.ContentType] {
		return nil, domainerror.NewUploadError(
			domainerror.ErrCodeUnsupportedFileType,
			"only PNG and JPG images are allowed",
			domainerror.ErrUnsupportedFileType,
		)
	}

	if input.Size > uc.maxSizeBytes {
		return nil, domainerror.NewUploadError(
			domainerror.ErrCodeFileTooLarge,
			"file must be smaller than 5MB",
			domainerror.ErrFileTooLarge,
		)
	}

	filePath, publicURL, err := uc.storage.Save(ctx, adapter.SavePhotoInput{
		UserID:   input.UserID,
		Filename: input.Filename,
		Size:     input.Size,
		Content:  input.Content,
	})
	if err != nil {
		return nil, domainerror.NewUploadError(
			domainerror.ErrCodeStorageFailed,
			"failed to store file",
			err,
		)
	}

	photo := entity.NewUploadedPhoto(input.UserID, filePath, publicURL, input.Size)
	if err := uc.photoRepo.Create(ctx, photo); err != nil {
		return nil, domainerror.NewUploadError(
			domainerror.ErrCodeStorageFailed,
			"failed to record uploaded file",
			err,
		)
	}

	return &UploadPhotoOutput{PhotoURL: publicURL}, nil
}
