// Copyright (c) 2026 Melody. All rights reserved.

// Command api is the entry point for the Melody HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chorogi/melody/internal/api"
	"github.com/chorogi/melody/internal/auth"
	"github.com/chorogi/melody/internal/catalog/album"
	"github.com/chorogi/melody/internal/catalog/artist"
	"github.com/chorogi/melody/internal/catalog/track"
	"github.com/chorogi/melody/internal/platform/config"
	"github.com/chorogi/melody/internal/platform/constants"
	"github.com/chorogi/melody/internal/platform/migration"
	pgstore "github.com/chorogi/melody/internal/platform/postgres"
	redisstore "github.com/chorogi/melody/internal/platform/redis"
	"github.com/chorogi/melody/internal/platform/sec"
	"github.com/chorogi/melody/internal/playlist"
	"github.com/chorogi/melody/internal/stream"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Services ─────────────────────────────────────────────────
	// Two independent HMAC services: one signs week-long login sessions, the
	// other mints five-minute playback capabilities.
	sessionTokens := sec.NewSessionTokenService(cfg.SessionSecret, constants.AuthIssuer)
	streamTokens := sec.NewStreamTokenService(cfg.StreamSecret, constants.AuthIssuer, constants.StreamTokenTTL)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	authService := auth.NewService(userRepository, sessionTokens)
	authHandler := auth.NewHandler(authService)

	artistHandler := artist.NewHandler(artist.NewService(artist.NewPostgresRepository(pool), log))
	albumHandler := album.NewHandler(album.NewService(album.NewPostgresRepository(pool), log))

	mediaStorage, err := track.NewDiskStorage(cfg.UploadDir)
	must(log, err, "initialize media storage")
	trackHandler := track.NewHandler(track.NewService(track.NewPostgresRepository(pool), mediaStorage, log))

	playlistHandler := playlist.NewHandler(playlist.NewService(playlist.NewPostgresRepository(pool), log))

	streamStore := stream.NewPostgresStore(pool)
	mediaResolver := stream.NewCachedMediaResolver(streamStore, rdb, log)
	streamService := stream.NewService(
		streamTokens,
		mediaResolver,
		streamStore,
		streamStore,
		cfg.UploadDir,
		cfg.BaseStreamURL,
		log,
	)
	streamHandler := stream.NewHandler(streamService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Artist:    artistHandler,
		Album:     albumHandler,
		Track:     trackHandler,
		Playlist:  playlistHandler,
		Stream:    streamHandler,
	}

	server := api.NewServer(cfg, log, sessionTokens, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
