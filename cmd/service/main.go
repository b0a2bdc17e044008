// cmd/service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github-repo-manager/internal/api"
	"github-repo-manager/internal/auth"
	"github-repo-manager/internal/config"
	"github-repo-manager/internal/github"
	"github-repo-manager/internal/session"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application startup error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Initialize structured logger
	logLevel := new(slog.LevelVar)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 2. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logLevel.Set(cfg.SlogLevel())
	logger.Info("Configuration loaded successfully", "api_base_url", cfg.APIBaseURL, "authenticated", cfg.GithubToken != "")

	// 3. Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 4. Initialize application components
	gateway, err := github.NewClient(cfg.APIBaseURL, auth.NewStaticCredentials(cfg.GithubToken), logger)
	if err != nil {
		return fmt.Errorf("failed to create repository gateway: %w", err)
	}
	sess := session.New(gateway, logger)
	if err := sess.Load(ctx); err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.NewRouter(sess, logger),
	}

	// 5. Start the HTTP server in a separate goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// 6. Wait for shutdown signal
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received. Exiting.")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
