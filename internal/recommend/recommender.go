// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/logging"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/metrics"
)

// PosterResolver returns a displayable poster URL for a TMDB movie id.
// It never fails; unresolvable posters map to placeholder URLs.
type PosterResolver interface {
	URL(ctx context.Context, movieID int) string
}

// Recommender combines the engine with poster resolution.
type Recommender struct {
	engine      *Engine
	posters     PosterResolver
	concurrency int
}

// NewRecommender creates a recommender.
func NewRecommender(engine *Engine, posters PosterResolver, cfg *Config) (*Recommender, error) {
	if engine == nil || posters == nil {
		return nil, fmt.Errorf("engine and poster resolver are required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Recommender{
		engine:      engine,
		posters:     posters,
		concurrency: cfg.PosterConcurrency,
	}, nil
}

// Recommend returns the movies most similar to title with their poster URLs,
// in rank order. Lookup failures are returned unchanged and no poster is
// fetched.
func (r *Recommender) Recommend(ctx context.Context, title string) (*Response, error) {
	start := time.Now()

	recs, err := r.engine.Recommend(title)
	if err != nil {
		if errors.Is(err, ErrTitleNotFound) {
			metrics.RecordRecommendation(false, time.Since(start))
		}
		return nil, err
	}

	items := r.resolvePosters(ctx, recs)

	elapsed := time.Since(start)
	metrics.RecordRecommendation(true, elapsed)
	logging.Ctx(ctx).Debug().
		Str("title", title).
		Int("results", len(items)).
		Dur("duration", elapsed).
		Msg("Recommendations resolved")

	return &Response{
		Query:     title,
		Items:     items,
		LatencyMS: elapsed.Milliseconds(),
	}, nil
}

// resolvePosters looks up posters with at most r.concurrency lookups in
// flight. Each result is written to its own slot, so rank order holds
// whatever order the lookups finish in.
func (r *Recommender) resolvePosters(ctx context.Context, recs []Recommendation) []RecommendedMovie {
	items := make([]RecommendedMovie, len(recs))
	sem := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup

	for i, rec := range recs {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, rec Recommendation) {
			defer wg.Done()
			defer func() { <-sem }()
			items[idx] = RecommendedMovie{
				Title:     rec.Title,
				MovieID:   rec.MovieID,
				Score:     rec.Score,
				PosterURL: r.posters.URL(ctx, rec.MovieID),
			}
		}(i, rec)
	}

	wg.Wait()
	return items
}

// Titles returns every catalog title in catalog order.
func (r *Recommender) Titles() []string {
	return r.engine.Titles()
}

// CatalogSize returns the number of movies in the catalog.
func (r *Recommender) CatalogSize() int {
	return r.engine.CatalogSize()
}
