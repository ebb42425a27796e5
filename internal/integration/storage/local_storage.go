// Package storage implements photo storage adapters.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// localPhotoStorage implements adapter.PhotoStorage on the local filesystem.
type localPhotoStorage struct {
	dir       string
	publicURL string
}

// NewLocalPhotoStorage creates a local photo storage rooted at dir. Files are
// served under publicURL (e.g. "/uploads").
func NewLocalPhotoStorage(dir, publicURL string) (adapter.PhotoStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localPhotoStorage{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Save writes the photo to disk under a name unique per user and timestamp
// and returns the filesystem path and public URL.
func (s *localPhotoStorage) Save(ctx context.Context, input adapter.SavePhotoInput) (string, string, error) {
	name := fmt.Sprintf("%s-%d-%s", input.UserID, time.Now().UnixMilli(), sanitizeFilename(input.Filename))
	filePath := filepath.Join(s.dir, name)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, input.Content); err != nil {
		os.Remove(filePath)
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}

	return filePath, s.publicURL + "/" + name, nil
}

// sanitizeFilename strips path separators and other characters that have no
// business in a stored file name.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "photo"
	}
	return b.String()
}
