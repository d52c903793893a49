// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

// Package metrics defines the Prometheus collectors exported at /metrics.
//
// Collectors are registered on the default registry through promauto when the
// package is loaded. Callers record through the Record* helpers rather than
// touching the collectors directly:
//
//	metrics.RecordPosterAttempt("failure")
//	metrics.RecordPosterOutcome("unreachable", time.Since(start))
//
// Families:
//
//   - api_*: HTTP request counts, latency and in-flight requests
//   - recommend_*: recommendation requests, unknown titles and latency
//   - catalog_*: catalog size and artifact load duration
//   - tmdb_poster_*: TMDB attempts, outcomes, cache hits and misses
//   - circuit_breaker_*: breaker state, transitions and request results
package metrics
