package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fund-directory/internal/directory/config"
	delivery "fund-directory/internal/directory/delivery/http"
	_ "fund-directory/internal/directory/docs"
	"fund-directory/internal/directory/repository"
	"fund-directory/internal/directory/service"
	"fund-directory/pkg/logger"
	"fund-directory/pkg/postgres"
	"fund-directory/pkg/redis"
	"fund-directory/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the fund directory service",
	Run:   runServe,
}

// cleanupFunc releases a resource opened while wiring the snapshot source.
type cleanupFunc func()

func newSnapshotSource(cfg *config.Config) (repository.SnapshotSource, cleanupFunc, error) {
	noop := func() {}
	switch strings.ToLower(cfg.Snapshot.Source) {
	case "", config.SourceFile:
		return repository.NewFileSnapshotSource(cfg.Snapshot.FilePath), noop, nil
	case config.SourceURL:
		return repository.NewURLSnapshotSource(cfg.Snapshot.URL, cfg.Snapshot.HTTPTimeout), noop, nil
	case config.SourceRedis:
		redisClient, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisSnapshotSource(redisClient.Client, cfg.Snapshot.RedisKey), func() { _ = redisClient.Close() }, nil
	case config.SourcePostgres:
		db, err := postgres.NewDB(postgres.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.DBName,
			SSLMode:         cfg.Database.SSLMode,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup := noop
		if sqlDB, err := db.DB.DB(); err == nil {
			cleanup = func() { _ = sqlDB.Close() }
		}
		return repository.NewPostgresSnapshotSource(db.DB), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown snapshot source %q", cfg.Snapshot.Source)
	}
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Fund Directory Service",
		logger.Field("name", cfg.App.Name),
		logger.StringField("snapshot_source", cfg.Snapshot.Source),
	)

	source, closeSource, err := newSnapshotSource(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize snapshot source", logger.ErrorField(err))
	}
	defer closeSource()

	store := service.NewSnapshotStore(source, cfg.Snapshot.CacheTTL, appLogger)

	// Warm the cache; an unavailable snapshot is reported per request, not fatal.
	if _, err := store.Load(ctx); err != nil {
		appLogger.Warn("Initial snapshot load failed", logger.ErrorField(err))
	}

	if cfg.Snapshot.Watch && strings.ToLower(cfg.Snapshot.Source) == config.SourceFile {
		watcher, err := service.NewSnapshotWatcher(cfg.Snapshot.FilePath, store, appLogger)
		if err != nil {
			appLogger.Error("Failed to create snapshot watcher", logger.ErrorField(err))
		} else if err := watcher.Start(ctx); err != nil {
			appLogger.Error("Failed to start snapshot watcher", logger.ErrorField(err))
		}
	}

	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Error("Failed to initialize Telegram notifier, health alerts disabled", logger.ErrorField(err))
			notifier = nil
		}
	}

	if cfg.Snapshot.RefreshCron != "" {
		refresher, err := service.NewSnapshotRefresher(store, cfg.Snapshot.RefreshCron, notifier, time.Now, appLogger)
		if err != nil {
			appLogger.Fatal("Invalid snapshot refresh schedule", logger.ErrorField(err))
		}
		refresher.Start(ctx)
	}

	channel := service.Channel{
		Title:       cfg.Feed.Title,
		SiteURL:     cfg.Feed.SiteURL,
		FeedURL:     strings.TrimRight(cfg.Feed.SiteURL, "/") + cfg.Feed.FeedPath,
		Description: cfg.Feed.Description,
		Language:    cfg.Feed.Language,
		ImageURL:    cfg.Feed.ImageURL,
	}
	directorySvc := service.NewDirectoryService(store, channel, time.Now, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	delivery.RegisterRoutes(e, directorySvc, delivery.RouterConfig{
		FeedPath:          cfg.Feed.FeedPath,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	}, appLogger)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Fund Directory API
// @version 1.0
// @description Read-only fund directory queries, pipeline health and manager profiles.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "directory-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-directory.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing directory-service CLI: %s\n", err)
		os.Exit(1)
	}
}
