package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/parley/internal/api"
	"github.com/MikeSquared-Agency/parley/internal/config"
	"github.com/MikeSquared-Agency/parley/internal/conversations"
	"github.com/MikeSquared-Agency/parley/internal/hermes"
	"github.com/MikeSquared-Agency/parley/internal/web"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	instanceID := uuid.NewString()
	slog.Info("parley starting", "host", cfg.Host, "port", cfg.Port, "instance_id", instanceID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.UsingDevSecret() {
		slog.Warn("SESSION_SECRET not set, using development default")
	}

	// NATS/Hermes (optional — parley serves without it, just no events)
	var notifier conversations.Notifier
	var events *hermes.Events
	if cfg.NatsURL != "" {
		hermesClient, err := hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Warn("failed to connect to NATS, continuing without events", "error", err)
		} else {
			defer hermesClient.Close()
			events = hermes.NewEvents(hermesClient, instanceID)
			notifier = events
			slog.Info("NATS connected", "url", cfg.NatsURL)
		}
	} else {
		slog.Warn("NATS_URL not set, running without events")
	}

	loader := conversations.NewLoader(cfg.ConversationsPath, slog.Default(), notifier)

	pages, err := web.NewPages()
	if err != nil {
		slog.Error("failed to load page templates", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(cfg, loader, pages, slog.Default())
	if err := srv.Listen(); err != nil {
		slog.Error("HTTP server error", "error", err)
		os.Exit(1)
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	if events != nil {
		if err := events.Announce(cfg.Host, cfg.Port); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	}

	slog.Info("parley ready", "addr", srv.Addr(), "conversations", loader.Path())

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		slog.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown", "error", err)
	}
	cancel()
	slog.Info("parley stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
