package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"birthdayreminder/internal/config"
	"birthdayreminder/internal/logger"
	"birthdayreminder/internal/routing"
	"birthdayreminder/internal/storage"
	"birthdayreminder/pkg/birthday"
	"birthdayreminder/pkg/session"
	"birthdayreminder/pkg/user"
)

func main() {
	cfg, err := config.Load() // env vars, optionally from .env
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logger.Load(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	birthdays := birthday.NewService(repo, logger)
	if seeded, err := birthdays.Seed(ctx); err != nil {
		logger.Warn("seed skipped", "error", err)
	} else if seeded {
		logger.Info("seeded sample birthdays")
	}

	sessions := session.NewMemoryRepo()
	go session.RunPruner(ctx, sessions, cfg.SessionPruneInterval, logger)

	users := user.NewService(user.NewStaticVerifier(cfg.AdminUsername, cfg.AdminPassword), sessions, cfg.SessionTTL)

	r := routing.NewRouter(routing.Options{
		Birthdays: birthdays,
		Users:     users,
		Cookie:    session.CookieOptions{Secure: cfg.CookieSecure},
		StaticDir: cfg.StaticDir,
		Logger:    logger,
	})

	srv := routing.NewServer(cfg.HTTPAddr, r, routing.ServerTimeouts{
		Read:  cfg.ReadTimeout,
		Write: cfg.WriteTimeout,
		Idle:  cfg.IdleTimeout,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", cfg.HTTPAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}
}
