// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package poster

import (
	"context"
	"errors"
	"time"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/config"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/logging"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/metrics"
)

// Outcome classifies a poster lookup.
type Outcome int

const (
	// Resolved means TMDB returned a poster path.
	Resolved Outcome = iota
	// NoPoster means TMDB answered without a usable poster.
	NoPoster
	// Unreachable means every attempt failed.
	Unreachable
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case NoPoster:
		return "no_poster"
	case Unreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

func parseOutcome(s string) (Outcome, bool) {
	switch s {
	case "resolved":
		return Resolved, true
	case "no_poster":
		return NoPoster, true
	default:
		return 0, false
	}
}

// Result is the detailed form of a lookup.
type Result struct {
	Outcome Outcome
	URL     string
	// Attempts is the number of TMDB calls made; zero for cache hits.
	Attempts int
	// Err is the last attempt error for Unreachable results.
	Err error
}

// Resolver maps movie ids to poster URLs with bounded retries.
type Resolver struct {
	client MetadataClient
	cache  *Cache

	imageBaseURL   string
	noImageURL     string
	errorURL       string
	maxAttempts    int
	retryBackoff   time.Duration
	attemptTimeout time.Duration
}

// NewResolver creates a resolver. cache may be nil.
func NewResolver(client MetadataClient, cfg *config.PosterConfig, cache *Cache) *Resolver {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Resolver{
		client:         client,
		cache:          cache,
		imageBaseURL:   cfg.ImageBaseURL,
		noImageURL:     cfg.NoImageURL,
		errorURL:       cfg.ErrorURL,
		maxAttempts:    maxAttempts,
		retryBackoff:   cfg.RetryBackoff,
		attemptTimeout: cfg.AttemptTimeout,
	}
}

// URL returns a displayable poster URL for movieID. It never fails.
func (r *Resolver) URL(ctx context.Context, movieID int) string {
	return r.Resolve(ctx, movieID).URL
}

// Resolve looks up movieID, consulting the cache first.
//
// Transport errors, timeouts, non-2xx statuses and circuit rejections are
// retried up to the configured attempt count with a fixed backoff between
// attempts. A malformed body ends the lookup as NoPoster without retrying.
// Cancelling ctx ends the lookup as Unreachable.
func (r *Resolver) Resolve(ctx context.Context, movieID int) Result {
	start := time.Now()

	if r.cache != nil {
		if entry, ok := r.cache.get(movieID); ok {
			if outcome, ok := parseOutcome(entry.Outcome); ok {
				return r.result(outcome, entry.PosterPath, 0, nil)
			}
		}
	}

	res := r.fetch(ctx, movieID)
	metrics.RecordPosterOutcome(res.Outcome.String(), time.Since(start))

	log := logging.Ctx(ctx)
	switch res.Outcome {
	case Unreachable:
		log.Warn().Err(res.Err).Int("movie_id", movieID).Int("attempts", res.Attempts).Msg("Poster lookup failed, using error placeholder")
	default:
		log.Debug().Int("movie_id", movieID).Str("outcome", res.Outcome.String()).Int("attempts", res.Attempts).Msg("Poster resolved")
	}

	return res
}

func (r *Resolver) fetch(ctx context.Context, movieID int) Result {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return r.result(Unreachable, "", attempt-1, err)
		}

		path, err := r.attempt(ctx, movieID)
		switch {
		case err == nil:
			metrics.RecordPosterAttempt("success")
			outcome := Resolved
			if path == "" {
				outcome = NoPoster
			}
			r.store(movieID, outcome, path)
			return r.result(outcome, path, attempt, nil)

		case errors.Is(err, ErrMalformedResponse):
			metrics.RecordPosterAttempt("success")
			r.store(movieID, NoPoster, "")
			return r.result(NoPoster, "", attempt, nil)

		case isBreakerRejection(err):
			metrics.RecordPosterAttempt("rejected")

		default:
			metrics.RecordPosterAttempt("failure")
		}

		lastErr = err
		logging.Ctx(ctx).Debug().Err(err).Int("movie_id", movieID).Int("attempt", attempt).Msg("Poster lookup attempt failed")

		if attempt < r.maxAttempts {
			if err := r.wait(ctx); err != nil {
				return r.result(Unreachable, "", attempt, err)
			}
		}
	}

	return r.result(Unreachable, "", r.maxAttempts, lastErr)
}

func (r *Resolver) attempt(ctx context.Context, movieID int) (string, error) {
	if r.attemptTimeout <= 0 {
		return r.client.PosterPath(ctx, movieID)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, r.attemptTimeout)
	defer cancel()
	return r.client.PosterPath(attemptCtx, movieID)
}

// wait sleeps for the retry backoff unless ctx ends first.
func (r *Resolver) wait(ctx context.Context) error {
	if r.retryBackoff <= 0 {
		return nil
	}
	timer := time.NewTimer(r.retryBackoff)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Resolver) store(movieID int, outcome Outcome, path string) {
	if r.cache == nil {
		return
	}
	r.cache.put(movieID, cachedPoster{Outcome: outcome.String(), PosterPath: path})
}

func (r *Resolver) result(outcome Outcome, path string, attempts int, err error) Result {
	res := Result{Outcome: outcome, Attempts: attempts, Err: err}
	switch outcome {
	case Resolved:
		res.URL = r.imageBaseURL + path
	case NoPoster:
		res.URL = r.noImageURL
	default:
		res.URL = r.errorURL
	}
	return res
}
