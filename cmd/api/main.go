// Package main is the entry point for the Tripdeck catalog API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // "pgx" database/sql driver for goose
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/tripdeck/backend/internal/client"
	"github.com/tripdeck/backend/internal/config"
	"github.com/tripdeck/backend/internal/handler"
	"github.com/tripdeck/backend/internal/middleware"
	"github.com/tripdeck/backend/internal/repo"
	"github.com/tripdeck/backend/internal/service"
	"github.com/tripdeck/backend/migrations"
)

// maxBodySize caps incoming request bodies at 1 MiB.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// A local .env file overlays the environment in development; in
	// production the file is absent and this is a no-op.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Package source ---------------------------------------------------
	var source service.PackageSource
	switch cfg.PackageSource {
	case config.SourceUpstream:
		source = client.NewUpstream(cfg.UpstreamURL, nil)
		slog.Info("using upstream package source", "url", cfg.UpstreamURL)

	default: // config.SourceDB, validated by config.Load
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		if err := migrateUp(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		source = repo.NewPackageRepo(pool)
		slog.Info("using database package source")
	}

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → SlogLogger → Recoverer → CORS →
	// body size cap. The logger needs the request ID; Recoverer turns panics
	// into 500s instead of taking the process down.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	svc := service.NewCatalogService(source, nil, nil)
	r.Mount("/", handler.NewServer(svc).Routes())

	// --- HTTP server --------------------------------------------------------
	// Explicit timeouts prevent slowloris-style resource exhaustion.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: on SIGINT/SIGTERM give in-flight requests up to
	// 15 seconds before closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrateUp applies pending schema migrations. goose drives database/sql,
// so it gets its own short-lived connection rather than the pgx pool.
func migrateUp(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	if len(results) > 0 {
		slog.Info("applied migrations", "count", len(results))
	}
	return nil
}
