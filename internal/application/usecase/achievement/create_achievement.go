// Package achievement contains achievement photo use cases.
package achievement

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CreateAchievementInput represents the input for creating an achievement.
type CreateAchievementInput struct {
	UserID   uuid.UUID
	PhotoURL string
	Caption  string
}

// CreateAchievementOutput represents the output of creating an achievement.
type CreateAchievementOutput struct {
	Achievement *entity.Achievement
}

// CreateAchievementUseCase handles achievement photo creation.
type CreateAchievementUseCase struct {
	achievementRepo adapter.AchievementRepository
}

// NewCreateAchievementUseCase creates a new CreateAchievementUseCase instance.
func NewCreateAchievementUseCase(achievementRepo adapter.AchievementRepository) *CreateAchievementUseCase {
	return &CreateAchievementUseCase{
		achievementRepo: achievementRepo,
	}
}

// Execute performs the achievement creation.
func (uc *CreateAchievementUseCase) Execute(ctx context.Context, input CreateAchievementInput) (*CreateAchievementOutput, error) {
	if !isValidPhotoURL(input.PhotoURL) {
		return nil, domainerror.NewAchievementError(
			domainerror.ErrCodeInvalidPhotoURL,
			"photo URL must be an absolute URL or a /-rooted path",
			domainerror.ErrInvalidPhotoURL,
		)
	}

	achievement := entity.NewAchievement(input.UserID, input.PhotoURL, strings.TrimSpace(input.Caption))

	if err := uc.achievementRepo.Create(ctx, achievement); err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	return &CreateAchievementOutput{Achievement: achievement}, nil
}

// isValidPhotoURL accepts absolute URLs and server-rooted paths such as the
// ones the upload endpoint hands out.
func isValidPhotoURL(raw string) bool {
	if raw == "" {
		return false
	}
	if strings.HasPrefix(raw, "/") {
		return true
	}
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}
