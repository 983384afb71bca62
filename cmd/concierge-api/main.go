// Package main provides the concierge API server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/scentdesk/concierge/internal/catalog"
	"github.com/scentdesk/concierge/internal/config"
	"github.com/scentdesk/concierge/internal/observability"
)

func main() {
	// A local .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: "concierge-api",
		File: observability.FileSink{
			Path:       cfg.Observability.LogFile.Path,
			MaxSizeMB:  cfg.Observability.LogFile.MaxSizeMB,
			MaxBackups: cfg.Observability.LogFile.MaxBackups,
			MaxAgeDays: cfg.Observability.LogFile.MaxAgeDays,
		},
	})

	store := catalog.Load(cfg.Catalog.TrainingDataPath, logger)

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Int("perfumes", store.NumPerfumes()).
		Int("faqs", store.NumFAQs()).
		Int("intents", store.NumIntents()).
		Msg("Starting concierge API")

	router := NewRouter(logger, cfg, store)

	addr := cfg.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt or error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}
