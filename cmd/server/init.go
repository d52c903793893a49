// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/catalog"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/config"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/logging"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/poster"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/recommend"
)

// newFetcher selects the artifact source named by the catalog config.
func newFetcher(cfg *config.CatalogConfig) (catalog.Fetcher, error) {
	switch cfg.Source {
	case config.CatalogSourceHub:
		return catalog.NewHubFetcher(catalog.HubConfig{
			Endpoint: cfg.Endpoint,
			RepoID:   cfg.RepoID,
			Revision: cfg.Revision,
			Token:    cfg.Token,
		}, &http.Client{Timeout: cfg.Timeout}), nil
	case config.CatalogSourceDir:
		return catalog.NewDirFetcher(cfg.Dir), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// initCatalog loads the catalog and similarity matrix within the catalog timeout.
func initCatalog(ctx context.Context, cfg *config.Config) (*catalog.Store, error) {
	fetcher, err := newFetcher(&cfg.Catalog)
	if err != nil {
		return nil, err
	}

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.Timeout)
	defer cancel()

	return catalog.Load(loadCtx, fetcher, catalog.Artifacts{
		MovieList:  cfg.Catalog.MovieListFile,
		Similarity: cfg.Catalog.SimilarityFile,
	})
}

// posterStack groups the poster components main needs to wire and close.
type posterStack struct {
	client   *poster.Client
	store    *poster.BadgerStore
	cache    *poster.Cache
	resolver *poster.Resolver
}

// initPosters builds the TMDB client, the two-tier cache and the resolver.
// An empty cache dir keeps the Badger tier in memory.
func initPosters(cfg *config.Config) (*posterStack, error) {
	store, err := poster.OpenBadgerStore(cfg.Poster.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("open poster cache: %w", err)
	}

	client := poster.NewClient(&cfg.TMDB, &http.Client{})
	cache := poster.NewCache(cfg.Poster.CacheSize, cfg.Poster.CacheTTL, store)

	logging.Info().
		Bool("persistent", !store.InMemory()).
		Int("memory_entries", cfg.Poster.CacheSize).
		Dur("ttl", cfg.Poster.CacheTTL).
		Msg("Poster cache initialized")

	return &posterStack{
		client:   client,
		store:    store,
		cache:    cache,
		resolver: poster.NewResolver(client, &cfg.Poster, cache),
	}, nil
}

// initRecommender builds the ranking engine over store and wraps it with
// poster resolution.
func initRecommender(cfg *config.Config, store *catalog.Store, posters recommend.PosterResolver) (*recommend.Recommender, error) {
	rcfg := &recommend.Config{
		TopK:              cfg.Recommend.TopK,
		PosterConcurrency: cfg.Recommend.PosterConcurrency,
	}

	engine, err := recommend.NewEngine(store, rcfg, logging.WithComponent("recommend"))
	if err != nil {
		return nil, err
	}
	return recommend.NewRecommender(engine, posters, rcfg)
}
