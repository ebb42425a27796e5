// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// UploadedPhotoModel represents the uploaded_photos table in the database.
type UploadedPhotoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FilePath  string    `gorm:"type:varchar(500);not null"`
	URL       string    `gorm:"type:varchar(500);not null"`
	SizeBytes int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the UploadedPhotoModel.
func (UploadedPhotoModel) TableName() string {
	return "uploaded_photos"
}

// ToEntity converts an UploadedPhotoModel to a domain UploadedPhoto entity.
func (m *UploadedPhotoModel) ToEntity() *entity.UploadedPhoto {
	return &entity.UploadedPhoto{
		ID:        m.ID,
		UserID:    m.UserID,
		FilePath:  m.FilePath,
		URL:       m.URL,
		SizeBytes: m.SizeBytes,
		CreatedAt: m.CreatedAt,
	}
}

// UploadedPhotoFromEntity creates an UploadedPhotoModel from a domain entity.
func UploadedPhotoFromEntity(photo *entity.UploadedPhoto) *UploadedPhotoModel {
	return &UploadedPhotoModel{
		ID:        photo.ID,
		UserID:    photo.UserID,
		FilePath:  photo.FilePath,
		URL:       photo.URL,
		SizeBytes: photo.SizeBytes,
		CreatedAt: photo.CreatedAt,
	}
}
