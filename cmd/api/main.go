// Package main is the entry point for the Habit Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/cache"
	"github.com/habit-tracker/backend/internal/infra/db"
	"github.com/habit-tracker/backend/internal/infra/dependency"
	"github.com/habit-tracker/backend/internal/integration/email"
	"github.com/habit-tracker/backend/internal/integration/email/templates"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
	"github.com/habit-tracker/backend/internal/integration/storage"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Habit Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.HabitGoalModel{},
		&model.CompletionModel{},
		&model.DailyStreakModel{},
		&model.FriendRequestModel{},
		&model.FriendshipModel{},
		&model.AchievementModel{},
		&model.UploadedPhotoModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize the streak cache. Redis being down only costs cache hits,
	// so a failed connection falls back to the no-op cache.
	streakCache := newStreakCache(&cfg.Redis)

	// Initialize local photo storage
	photoStorage, err := storage.NewLocalPhotoStorage(cfg.Uploads.Dir, cfg.Uploads.PublicBaseURL)
	if err != nil {
		slog.Error("Failed to initialize photo storage", "error", err, "dir", cfg.Uploads.Dir)
		os.Exit(1)
	}

	// Wire everything together
	injector := dependency.NewInjector(cfg, database.DB(), streakCache, photoStorage)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Start the email worker unless disabled
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if cfg.Email.WorkerEnabled {
		startEmailWorker(workerCtx, cfg, database)
	} else {
		slog.Info("Email worker disabled")
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newStreakCache connects to Redis, falling back to a no-op cache when the
// connection cannot be established.
func newStreakCache(cfg *config.RedisConfig) adapter.StreakCache {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, streak caching disabled", "error", err)
		return cache.NewNoopStreakCache()
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis connection failed, streak caching disabled", "error", err)
		return cache.NewNoopStreakCache()
	}

	slog.Info("Redis connected", "streak_ttl", cfg.StreakTTL)
	return cache.NewStreakCache(client, cfg.StreakTTL)
}

// startEmailWorker launches the background email delivery worker.
func startEmailWorker(ctx context.Context, cfg *config.Config, database *db.Database) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		slog.Error("Failed to parse email templates", "error", err)
		os.Exit(1)
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
		sender = email.NewMockEmailSender()
	}

	queueRepo := persistence.NewEmailQueueRepository(database.DB())
	worker := email.NewWorker(queueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	go worker.Start(ctx)
	slog.Info("Email worker started",
		"poll_interval", cfg.Email.PollInterval,
		"batch_size", cfg.Email.BatchSize,
	)
}
