// Package main is the entry point for the staylog API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/pkordes/staylog/internal/auth"
	"github.com/pkordes/staylog/internal/config"
	"github.com/pkordes/staylog/internal/handler"
	"github.com/pkordes/staylog/internal/handler/gen"
	"github.com/pkordes/staylog/internal/jobs"
	"github.com/pkordes/staylog/internal/middleware"
	"github.com/pkordes/staylog/internal/repo"
	"github.com/pkordes/staylog/internal/service"
	"github.com/pkordes/staylog/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
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

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
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
	slog.Info("database connection established")

	// --- Services ---------------------------------------------------------
	entries := service.NewEntryService(repo.NewEntryRepo(pool), logger, service.Options{
		Policy:          cfg.OverlapPolicy,
		Threshold:       cfg.ResidencyThreshold,
		DefaultLocation: cfg.DefaultLocation,
	})
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// --- Background jobs --------------------------------------------------
	var scheduler interface {
		Start()
		Stop() context.Context
	}
	if cfg.DefaultLocation != nil {
		c, err := jobs.Schedule(cfg.GapFillSchedule, jobs.NewGapFillJob(entries, logger), logger)
		if err != nil {
			slog.Error("failed to schedule gap fill", "error", err)
			os.Exit(1)
		}
		c.Start()
		scheduler = c
		slog.Info("gap fill scheduled", "schedule", cfg.GapFillSchedule, "location", cfg.DefaultLocation.String())
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit → auth. Auth runs last so rejected tokens are still
	// logged with their request ID.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewAuthHandler(issuer, logger))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// gen.NewStrictHandlerWithOptions adapts Server to the ServerInterface chi
	// expects and routes binding and service errors through one JSON shape.
	strict := gen.NewStrictHandlerWithOptions(handler.NewServer(entries, logger), nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  handler.RequestErrorHandler(logger),
		ResponseErrorHandlerFunc: handler.ResponseErrorHandler(logger),
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: handler.RequestErrorHandler(logger),
	})

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
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

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-ctx.Done():
			slog.Warn("gap fill still running at shutdown")
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
