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

	"github.com/iammorganparry/brainstorm/internal/api"
	"github.com/iammorganparry/brainstorm/internal/config"
	"github.com/iammorganparry/brainstorm/internal/ideas"
	"github.com/iammorganparry/brainstorm/internal/models"
	"github.com/iammorganparry/brainstorm/internal/seed"
	"github.com/iammorganparry/brainstorm/internal/sessions"
	"github.com/iammorganparry/brainstorm/internal/store"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Logger
	logLevel := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Store
	var repo sessions.Repository
	var count api.SessionCounter
	switch cfg.StoreBackend {
	case config.BackendMemory:
		mem := sessions.NewMemoryStore()
		repo = mem
		count = func() (int, error) { return mem.Count(), nil }
	default:
		db, err := store.Open(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		repo = sessions.NewSessionStore(db)
		count = db.SessionCount
	}

	// Seed data
	if err := seedStore(context.Background(), cfg, repo, logger); err != nil {
		logger.Error("failed to seed sessions", "error", err)
		os.Exit(1)
	}

	// Services
	ideaSvc := ideas.NewService(repo, logger)
	sessionSvc := sessions.NewService(repo, logger, time.Now)

	// Router
	router := api.NewRouter(ideaSvc, sessionSvc, count, cfg.APIKey, logger)

	// Server
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("brainstorm server starting", "addr", addr, "backend", cfg.StoreBackend, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
}

func seedStore(ctx context.Context, cfg *config.Config, repo sessions.Repository, logger *slog.Logger) error {
	var fixtures []*models.Session
	if cfg.IsDevelopment() {
		fixtures = append(fixtures, seed.TestSession())
	}
	if cfg.SeedFile != "" {
		loaded, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		fixtures = append(fixtures, loaded...)
	}
	if len(fixtures) == 0 {
		return nil
	}

	added, err := seed.Apply(ctx, repo, fixtures)
	if err != nil {
		return err
	}
	logger.Info("seeded sessions", "added", added, "fixtures", len(fixtures))
	return nil
}
