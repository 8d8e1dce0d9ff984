// Package main is the entry point for the pilgrimage planner API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/gloriatan/ANI/internal/catalog"
	"github.com/gloriatan/ANI/internal/config"
	"github.com/gloriatan/ANI/internal/handler"
	"github.com/gloriatan/ANI/internal/middleware"
	"github.com/gloriatan/ANI/internal/planner"
)

// maxBodyBytes caps request bodies; itinerary requests are a few hundred bytes.
const maxBodyBytes = 1 << 20

func main() {
	// .env is a local-development convenience; absence is not an error.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog JSON handler writes machine-readable output suitable for log
	// aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Catalog ----------------------------------------------------------
	// The catalog snapshot is built exactly once, before the server accepts
	// traffic, and is read-only from then on. Requests never touch the source.
	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded", "cities", len(cat.Cities()))

	// --- Planner & Router -------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body cap. Recoverer catches panics and returns HTTP 500.
	plan := planner.New(cat,
		planner.WithMaxSightsPerDay(cfg.MaxSightsPerDay),
		planner.WithLogger(logger),
	)
	srvHandlers := handler.NewServer(plan, cat)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))
	r.Mount("/", srvHandlers.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
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

// loadCatalog picks the catalog source: Postgres when DATABASE_URL is set,
// then a JSON file when CATALOG_PATH is set, otherwise the embedded dataset.
func loadCatalog(cfg config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		// The pool is only needed while the snapshot loads.
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			return nil, err
		}
		slog.Info("loading catalog from database")
		return catalog.LoadPostgres(context.Background(), pool, logger)
	}

	if cfg.CatalogPath != "" {
		slog.Info("loading catalog from file", "path", cfg.CatalogPath)
		return catalog.LoadFile(cfg.CatalogPath, logger)
	}

	slog.Info("loading embedded catalog")
	return catalog.LoadEmbedded(logger)
}
