// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/api"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/config"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/logging"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/supervisor"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/supervisor/services"
)

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

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("catalog_source", cfg.Catalog.Source).
		Str("tmdb_api_key", logging.MaskSecret(cfg.TMDB.APIKey)).
		Int("top_k", cfg.Recommend.TopK).
		Msg("Starting movie recommender")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := initCatalog(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

	posters, err := initPosters(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize poster resolver")
	}
	defer func() {
		if err := posters.store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing poster cache")
		}
	}()

	recommender, err := initRecommender(cfg, store, posters.resolver)
	if err != nil {
		posters.store.Close() //nolint:errcheck // exiting anyway
		logging.Fatal().Err(err).Msg("Failed to initialize recommender")
	}

	handler := api.NewHandler(recommender, posters.resolver, cfg)
	handler.SetCircuitStateFunc(posters.client.BreakerState)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddStorageService(services.NewCacheGCService(posters.cache, services.CacheGCServiceConfig{
		Interval: cfg.Poster.CacheGCInterval,
	}, logging.WithComponent("poster-cache")))

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
		stop()
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Movie recommender stopped")
}
