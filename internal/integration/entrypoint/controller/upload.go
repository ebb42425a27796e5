// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/upload"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// UploadController handles photo upload endpoints.
type UploadController struct {
	uploadUseCase *upload.UploadPhotoUseCase
}

// NewUploadController creates a new upload controller instance.
func NewUploadController(uploadUseCase *upload.UploadPhotoUseCase) *UploadController {
	return &UploadController{
		uploadUseCase: uploadUseCase,
	}
}

// Upload handles POST /upload requests with a multipart "file" part.
func (c *UploadController) Upload(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "No file provided",
			Code:  string(domainerror.ErrCodeNoFileProvided),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read file",
			Code:  string(domainerror.ErrCodeNoFileProvided),
		})
		return
	}
	defer file.Close()

	output, err := c.uploadUseCase.Execute(ctx.Request.Context(), upload.UploadPhotoInput{
		UserID:      userID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		c.handleUploadError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadResponse{PhotoURL: output.PhotoURL})
}

// handleUploadError handles upload errors and returns appropriate HTTP responses.
func (c *UploadController) handleUploadError(ctx *gin.Context, err error) {
	var uploadErr *domainerror.UploadError
	if errors.As(err, &uploadErr) {
		statusCode := c.getStatusCodeForUploadError(uploadErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: uploadErr.Message,
			Code:  string(uploadErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForUploadError maps upload error codes to HTTP status codes.
func (c *UploadController) getStatusCodeForUploadError(code domainerror.UploadErrorCode) int {
	switch code {
	case domainerror.ErrCodeNoFileProvided,
		domainerror.ErrCodeUnsupportedFileType,
		domainerror.ErrCodeFileTooLarge:
		return http.StatusBadRequest
	case domainerror.ErrCodeStorageFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
