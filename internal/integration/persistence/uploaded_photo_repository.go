// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// uploadedPhotoRepository implements the adapter.UploadedPhotoRepository interface.
type uploadedPhotoRepository struct {
	db *gorm.DB
}

// NewUploadedPhotoRepository creates a new uploaded photo repository instance.
func NewUploadedPhotoRepository(db *gorm.DB) adapter.UploadedPhotoRepository {
	return &uploadedPhotoRepository{
		db: db,
	}
}

// Create records an uploaded photo.
func (r *uploadedPhotoRepository) Create(ctx context.Context, photo *entity.UploadedPhoto) error {
	photoModel := model.UploadedPhotoFromEntity(photo)
	return r.db.WithContext(ctx).Create(photoModel).Error
}
