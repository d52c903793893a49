// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

/*
Package middleware provides HTTP middleware components for the application.

Middlewares here use the func(http.HandlerFunc) http.HandlerFunc shape and
are adapted to chi's r.Use() by the api package.

Key Components:

  - RequestID: X-Request-ID propagation plus logging context (request and
    correlation IDs)
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern
  - Compression: gzip responses via klauspost/compress
  - PerformanceMonitor: rolling latency window with percentiles and slow
    request logging

Usage Example:

	perf := middleware.NewPerformanceMonitor(1000, time.Second)

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))
	r.Use(perf.Middleware)

See Also:

  - internal/api: router and handlers
  - internal/metrics: Prometheus metric definitions
*/
package middleware
