// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/microscopium-browser/internal/api"
	"github.com/tomtom215/microscopium-browser/internal/config"
	"github.com/tomtom215/microscopium-browser/internal/database"
	"github.com/tomtom215/microscopium-browser/internal/logging"
	"github.com/tomtom215/microscopium-browser/internal/metrics"
	"github.com/tomtom215/microscopium-browser/internal/session"
	"github.com/tomtom215/microscopium-browser/internal/supervisor"
	"github.com/tomtom215/microscopium-browser/internal/supervisor/services"
	ws "github.com/tomtom215/microscopium-browser/internal/websocket"

	_ "github.com/tomtom215/microscopium-browser/docs" // generated swagger docs
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("db_path", cfg.Database.Path).
		Str("session_store", cfg.Session.Store).
		Msg("Starting Microscopium browser")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedPath != "" {
		if err := importSeed(db, cfg.Database.SeedPath); err != nil {
			// Fatal skips deferred calls.
			if closeErr := db.Close(); closeErr != nil {
				logging.Error().Err(closeErr).Msg("Error closing database")
			}
			logging.Fatal().Err(err).Str("path", cfg.Database.SeedPath).Msg("Failed to import seed data")
		}
	}

	store, err := openSessionStore(&cfg.Session)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("Error closing database")
		}
		logging.Fatal().Err(err).Msg("Failed to open session store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	wsHub := ws.NewHub()
	dataset := session.NewBreakerDataset(db, cfg.Breaker)
	sessions := session.NewService(dataset, store, cfg.Session, cfg.Plot, session.WithBroadcaster(wsHub))

	handler := api.NewHandler(sessions, db, wsHub, cfg)
	chiMiddleware := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security))
	router := api.NewRouter(handler, chiMiddleware)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddDataService(services.NewSessionCleanupService(sessions, cfg.Session.CleanupInterval))
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("Services added to supervisor tree")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// importSeed loads a seed document into the screening store.
func importSeed(db *database.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := db.ImportSeed(ctx, f)
	if err != nil {
		return err
	}
	logging.Info().
		Int("screens", result.Screens).
		Int("samples", result.Samples).
		Str("path", path).
		Msg("Seed data imported")
	return nil
}

// openSessionStore returns the snapshot backend named by cfg.Store.
func openSessionStore(cfg *config.SessionConfig) (session.Store, error) {
	switch cfg.Store {
	case config.SessionStoreBadger:
		store, err := session.OpenBadgerStore(cfg.StorePath, cfg.TTL)
		if err != nil {
			return nil, err
		}
		logging.Info().Str("path", cfg.StorePath).Msg("Session snapshots persisted to BadgerDB")
		return store, nil
	default:
		return session.NewMemoryStore(), nil
	}
}
