// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package recommend

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/catalog"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/metrics"
)

// Engine ranks catalog movies by similarity to an anchor title.
// It is safe for concurrent use.
type Engine struct {
	store  *catalog.Store
	topK   int
	logger zerolog.Logger
}

// NewEngine creates an engine over store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(store *catalog.Store, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		store:  store,
		topK:   cfg.TopK,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend returns the TopK movies most similar to title, highest score
// first. Equal scores are ordered by catalog index. A catalog with fewer than
// TopK+1 movies yields every movie except the anchor.
//
// An unknown title returns a *LookupError wrapping ErrTitleNotFound.
func (e *Engine) Recommend(title string) ([]Recommendation, error) {
	anchor, ok := e.store.IndexOf(title)
	if !ok {
		return nil, &LookupError{Title: title}
	}

	row := e.store.Row(anchor)
	e.checkAnchorRow(anchor, row)

	candidates := make([]int, 0, len(row)-1)
	for j := range row {
		if j == anchor {
			continue
		}
		candidates = append(candidates, j)
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return row[candidates[a]] > row[candidates[b]]
	})

	if len(candidates) > e.topK {
		candidates = candidates[:e.topK]
	}

	recs := make([]Recommendation, len(candidates))
	for i, idx := range candidates {
		movie := e.store.Movie(idx)
		recs[i] = Recommendation{
			Index:   idx,
			MovieID: movie.MovieID,
			Title:   movie.Title,
			Score:   row[idx],
		}
	}
	return recs, nil
}

// checkAnchorRow warns when another movie outscores the anchor's
// self-similarity, which points at a malformed matrix.
func (e *Engine) checkAnchorRow(anchor int, row []float64) {
	self := row[anchor]
	for j, score := range row {
		if j != anchor && score > self {
			metrics.RecordAnchorNotTop()
			e.logger.Warn().
				Int("anchor_index", anchor).
				Int("outscoring_index", j).
				Float64("self_score", self).
				Float64("score", score).
				Msg("Similarity row is not maximal on the diagonal")
			return
		}
	}
}

// Titles returns every catalog title in catalog order.
func (e *Engine) Titles() []string {
	return e.store.Titles()
}

// CatalogSize returns the number of movies in the catalog.
func (e *Engine) CatalogSize() int {
	return e.store.Len()
}

// TopK returns the number of results per lookup.
func (e *Engine) TopK() int {
	return e.topK
}
