package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/enroll-api/internal/config"
	"github.com/phrazzld/enroll-api/internal/platform/postgres"
	platformredis "github.com/phrazzld/enroll-api/internal/platform/redis"
	"github.com/phrazzld/enroll-api/internal/service"
	"github.com/phrazzld/enroll-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	studentStore store.StudentStore
	productStore store.ProductStore
	groupStore   store.GroupStore
	lessonStore  store.LessonStore
	statsStore   store.StatsStore

	// Service interfaces
	enrollmentService service.EnrollmentService
	lessonService     service.LessonService
	catalogService    service.CatalogService
	statsService      service.StatsService

	// Display timezone for rendered start dates
	displayTZ *time.Location

	// Optional Redis-backed stats cache; nil when not configured
	statsCache *platformredis.StatsCache
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// and database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.displayTZ, err = time.LoadLocation(cfg.Server.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid display timezone %q: %w", cfg.Server.DisplayTimezone, err)
	}

	// Initialize stores
	app.studentStore = postgres.NewPostgresStudentStore(db, logger)
	app.productStore = postgres.NewPostgresProductStore(db, logger)
	app.groupStore = postgres.NewPostgresGroupStore(db, logger)
	app.lessonStore = postgres.NewPostgresLessonStore(db, logger)
	app.statsStore = postgres.NewPostgresStatsStore(db, logger)

	// Initialize the optional stats cache. A missing or unreachable Redis
	// only disables caching; the server still works.
	app.statsCache = setupStatsCache(cfg, logger)

	// Initialize services
	app.enrollmentService, err = service.NewEnrollmentService(
		db,
		app.studentStore,
		app.productStore,
		app.groupStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrollment service: %w", err)
	}

	app.lessonService, err = service.NewLessonService(
		app.studentStore,
		app.productStore,
		app.lessonStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson service: %w", err)
	}

	app.catalogService, err = service.NewCatalogService(app.productStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	var statsCache service.StatsCache
	if app.statsCache != nil {
		statsCache = app.statsCache
	}
	app.statsService, err = service.NewStatsService(app.statsStore, statsCache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupStatsCache connects to Redis when a stats cache is configured.
// Returns nil when caching is disabled or the connection fails.
func setupStatsCache(cfg *config.Config, logger *slog.Logger) *platformredis.StatsCache {
	if !cfg.Redis.StatsCacheEnabled() {
		return nil
	}

	client, err := platformredis.NewClient(cfg.Redis)
	if err != nil {
		logger.Warn("stats cache unavailable, serving stats from database",
			"addr", cfg.Redis.Addr,
			"error", err)
		return nil
	}

	ttl := time.Duration(cfg.Redis.StatsTTLSeconds) * time.Second
	logger.Info("stats cache initialized", "addr", cfg.Redis.Addr, "ttl", ttl)
	return platformredis.NewStatsCache(client, ttl, logger)
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.statsCache != nil {
		if err := app.statsCache.Close(); err != nil {
			app.logger.Error("Error closing stats cache", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
