// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

/*
Package api provides the HTTP REST API layer for the recommendation service.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for recommendations, catalog listing, poster
    lookup and health probes
  - Response formatting: every endpoint answers with models.APIResponse

Endpoints:

	GET /api/v1/recommendations?title=T   top similar movies with posters
	GET /api/v1/movies                    catalog titles in catalog order
	GET /api/v1/movies/{movieID}/poster   poster URL for one TMDB id
	GET /api/v1/stats                     per-route latency statistics
	GET /api/v1/health[/live|/ready]      health and Kubernetes-style probes
	GET /metrics                          Prometheus exposition

Error codes:

  - VALIDATION_ERROR (400): missing or invalid query/path parameter
  - TITLE_NOT_FOUND (404): the title is not in the catalog
  - NOT_FOUND (404), METHOD_NOT_ALLOWED (405): unknown route or method
  - TOO_MANY_REQUESTS (429): per-IP rate limit exceeded
  - INTERNAL_ERROR (500)

Middleware Stack:

Global: request ID with logging context, real IP, panic recovery, CORS.
API routes add per-IP rate limiting (go-chi/httprate), security headers,
request timeout, Prometheus metrics, latency tracking and gzip.

See Also:

  - internal/recommend: recommendation pipeline
  - internal/poster: TMDB poster resolution
  - internal/middleware: request ID, metrics, compression
*/
package api
