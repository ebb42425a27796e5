// Package dto defines data transfer objects for API requests and responses.
package dto

// UploadResponse represents the response for a successful photo upload.
type UploadResponse struct {
	PhotoURL string `json:"photo_url"`
}
