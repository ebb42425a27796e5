// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	habitController       *controller.HabitController
	streakController      *controller.StreakController
	friendController      *controller.FriendController
	achievementController *controller.AchievementController
	uploadController      *controller.UploadController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	allowedOrigins        []string
	uploadsDir            string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	habitController *controller.HabitController,
	streakController *controller.StreakController,
	friendController *controller.FriendController,
	achievementController *controller.AchievementController,
	uploadController *controller.UploadController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
	uploadsDir string,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		habitController:       habitController,
		streakController:      streakController,
		friendController:      friendController,
		achievementController: achievementController,
		uploadController:      uploadController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		allowedOrigins:        allowedOrigins,
		uploadsDir:            uploadsDir,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()
	r.setupStaticRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupStaticRoutes serves uploaded photos from local disk.
func (r *Router) setupStaticRoutes() {
	if r.uploadsDir != "" {
		r.engine.Static("/uploads", r.uploadsDir)
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Habit goal routes (require authentication)
		if r.habitController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.habitController.ListGoals)
				goals.POST("", r.habitController.CreateGoal)
				goals.POST("/:id/complete", r.habitController.CompleteGoal)
			}
		}

		// Streak routes (require authentication)
		if r.streakController != nil && r.authMiddleware != nil {
			streaks := v1.Group("/streaks")
			streaks.Use(r.authMiddleware.Authenticate())
			{
				streaks.GET("", r.streakController.GetStreaks)
			}
		}

		// Friend graph routes (require authentication)
		if r.friendController != nil && r.authMiddleware != nil {
			friends := v1.Group("/friends")
			friends.Use(r.authMiddleware.Authenticate())
			{
				friends.GET("", r.friendController.ListFriends)
				friends.POST("/request", r.friendController.SendRequest)
				friends.POST("/accept", r.friendController.AcceptRequest)
			}

			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/:id", r.friendController.GetProfile)
			}
		}

		// Achievement routes (require authentication)
		if r.achievementController != nil && r.authMiddleware != nil {
			achievements := v1.Group("/achievements")
			achievements.Use(r.authMiddleware.Authenticate())
			{
				achievements.GET("", r.achievementController.List)
				achievements.POST("", r.achievementController.Create)
			}
		}

		// Upload routes (require authentication)
		if r.uploadController != nil && r.authMiddleware != nil {
			uploads := v1.Group("/upload")
			uploads.Use(r.authMiddleware.Authenticate())
			{
				uploads.POST("", r.uploadController.Upload)
			}
		}
	}
}
