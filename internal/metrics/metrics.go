// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation lookups",
		},
		[]string{"result"}, // "success", "not_found"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "End-to-end recommendation latency including poster resolution",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	RecommendAnchorNotTop = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_anchor_not_top_total",
			Help: "Lookups where another movie scored higher than the anchor's self-similarity",
		},
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_load_duration_seconds",
			Help: "Time taken to fetch and decode the catalog artifacts at startup",
		},
	)

	// Poster Metrics
	PosterAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_poster_attempts_total",
			Help: "Total number of TMDB poster lookup attempts",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	PosterOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_poster_outcomes_total",
			Help: "Poster resolutions by outcome",
		},
		[]string{"outcome"}, // "resolved", "no_poster", "unreachable"
	)

	PosterDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_poster_duration_seconds",
			Help:    "Poster resolution latency including retries",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 35},
		},
		[]string{"outcome"},
	)

	PosterCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_poster_cache_hits_total",
			Help: "Poster cache hits by tier",
		},
		[]string{"tier"}, // "memory", "badger"
	)

	PosterCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tmdb_poster_cache_misses_total",
			Help: "Poster lookups that missed every cache tier",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Badger Metrics
	BadgerGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "badger_value_log_gc_runs_total",
			Help: "Badger value log GC runs",
		},
		[]string{"result"}, // "rewritten", "noop", "error"
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the inbound rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records a recommendation lookup. found is false when
// the title is not in the catalog.
func RecordRecommendation(found bool, duration time.Duration) {
	if !found {
		RecommendRequests.WithLabelValues("not_found").Inc()
		return
	}
	RecommendRequests.WithLabelValues("success").Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordAnchorNotTop counts a lookup whose anchor row is not maximal on the diagonal.
func RecordAnchorNotTop() {
	RecommendAnchorNotTop.Inc()
}

// RecordCatalogLoad records the catalog size and how long loading took.
func RecordCatalogLoad(movies int, duration time.Duration) {
	CatalogMovies.Set(float64(movies))
	CatalogLoadDuration.Set(duration.Seconds())
}

// RecordPosterAttempt counts a single TMDB request attempt.
func RecordPosterAttempt(result string) {
	PosterAttempts.WithLabelValues(result).Inc()
}

// RecordPosterOutcome records the final outcome of a poster resolution.
func RecordPosterOutcome(outcome string, duration time.Duration) {
	PosterOutcomes.WithLabelValues(outcome).Inc()
	PosterDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordPosterCacheHit counts a cache hit in the given tier.
func RecordPosterCacheHit(tier string) {
	PosterCacheHits.WithLabelValues(tier).Inc()
}

// RecordPosterCacheMiss counts a lookup that missed every cache tier.
func RecordPosterCacheMiss() {
	PosterCacheMisses.Inc()
}

// RecordBadgerGC records the result of one value log GC run.
func RecordBadgerGC(result string) {
	BadgerGCRuns.WithLabelValues(result).Inc()
}
