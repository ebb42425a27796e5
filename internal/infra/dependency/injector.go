// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/achievement"
	"github.com/habit-tracker/backend/internal/application/usecase/auth"
	"github.com/habit-tracker/backend/internal/application/usecase/friend"
	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	"github.com/habit-tracker/backend/internal/application/usecase/streak"
	"github.com/habit-tracker/backend/internal/application/usecase/upload"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/email"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The streak cache and photo storage are constructed by the caller so that
// the HTTP wiring stays independent of Redis and the local filesystem.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	streakCache adapter.StreakCache,
	photoStorage adapter.PhotoStorage,
) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	completionRepo := persistence.NewCompletionRepository(db)
	streakRepo := persistence.NewStreakRepository(db)
	friendRepo := persistence.NewFriendRepository(db)
	achievementRepo := persistence.NewAchievementRepository(db)
	photoRepo := persistence.NewUploadedPhotoRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	friendsURL := cfg.Email.AppBaseURL + "/friends"

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create habit goal use cases
	createGoalUseCase := habit.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := habit.NewListGoalsUseCase(goalRepo, completionRepo)
	completeGoalUseCase := habit.NewCompleteGoalUseCase(goalRepo, completionRepo, streakCache)

	// Create streak use cases
	getStreaksUseCase := streak.NewGetStreaksUseCase(streakRepo, streakCache)

	// Create friend graph use cases
	sendRequestUseCase := friend.NewSendRequestUseCase(userRepo, friendRepo, emailService, friendsURL)
	acceptRequestUseCase := friend.NewAcceptRequestUseCase(userRepo, friendRepo, emailService, friendsURL)
	listFriendsUseCase := friend.NewListFriendsUseCase(userRepo, friendRepo)
	getProfileUseCase := friend.NewGetProfileUseCase(userRepo, friendRepo)

	// Create achievement use cases
	createAchievementUseCase := achievement.NewCreateAchievementUseCase(achievementRepo)
	listAchievementsUseCase := achievement.NewListAchievementsUseCase(achievementRepo)

	// Create upload use cases
	uploadPhotoUseCase := upload.NewUploadPhotoUseCase(photoStorage, photoRepo, cfg.Uploads.MaxSizeBytes)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	habitController := controller.NewHabitController(
		createGoalUseCase,
		listGoalsUseCase,
		completeGoalUseCase,
	)

	streakController := controller.NewStreakController(getStreaksUseCase)

	friendController := controller.NewFriendController(
		sendRequestUseCase,
		acceptRequestUseCase,
		listFriendsUseCase,
		getProfileUseCase,
	)

	achievementController := controller.NewAchievementController(
		createAchievementUseCase,
		listAchievementsUseCase,
	)

	uploadController := controller.NewUploadController(uploadPhotoUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		habitController,
		streakController,
		friendController,
		achievementController,
		uploadController,
		loginRateLimiter,
		authMiddleware,
		cfg.Server.AllowedOrigins,
		cfg.Uploads.Dir,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
