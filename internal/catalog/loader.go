// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/logging"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/metrics"
)

// Artifacts names the two artifact files.
type Artifacts struct {
	MovieList  string
	Similarity string
}

// DefaultArtifacts returns the default artifact names.
func DefaultArtifacts() Artifacts {
	return Artifacts{
		MovieList:  "movie_list.json",
		Similarity: "similarity.json",
	}
}

func (a Artifacts) withDefaults() Artifacts {
	defaults := DefaultArtifacts()
	if a.MovieList == "" {
		a.MovieList = defaults.MovieList
	}
	if a.Similarity == "" {
		a.Similarity = defaults.Similarity
	}
	return a
}

// Load fetches and decodes both artifacts and builds the store. Empty names
// fall back to DefaultArtifacts.
func Load(ctx context.Context, fetcher Fetcher, names Artifacts) (*Store, error) {
	logger := logging.WithComponent("catalog")
	names = names.withDefaults()
	start := time.Now()

	var movies []Movie
	if err := fetchJSON(ctx, fetcher, names.MovieList, &movies); err != nil {
		return nil, err
	}

	var matrix [][]float64
	if err := fetchJSON(ctx, fetcher, names.Similarity, &matrix); err != nil {
		return nil, err
	}

	store, err := NewStore(movies, matrix)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RecordCatalogLoad(store.Len(), elapsed)
	logger.Info().
		Int("movies", store.Len()).
		Str("movie_list", names.MovieList).
		Str("similarity", names.Similarity).
		Dur("duration", elapsed).
		Msg("Catalog loaded")

	return store, nil
}

// fetchJSON fetches name and decodes it into v, gunzipping ".gz" artifacts.
func fetchJSON(ctx context.Context, fetcher Fetcher, name string, v interface{}) error {
	rc, err := fetcher.Fetch(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer func() { _ = rc.Close() }()

	var r io.Reader = rc
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidArtifact, name, err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidArtifact, name, err)
	}
	return nil
}
