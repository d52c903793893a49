// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/middleware"
)

// defaultRequestTimeout bounds API handlers when no server timeout is configured.
const defaultRequestTimeout = 60 * time.Second

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	requestTimeout time.Duration
}

// NewRouter creates a router for handler. Security settings come from the
// handler's configuration.
func NewRouter(handler *Handler) *Router {
	timeout := defaultRequestTimeout
	mwConfig := DefaultChiMiddlewareConfig()
	if handler.config != nil {
		mwConfig = NewChiMiddlewareConfig(&handler.config.Security)
		if handler.config.Server.Timeout > 0 {
			timeout = handler.config.Server.Timeout
		}
	}

	return &Router{
		handler:        handler,
		chiMiddleware:  NewChiMiddleware(mwConfig),
		requestTimeout: timeout,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // Recover from panics
	r.Use(router.chiMiddleware.CORS())         // CORS must be global to handle OPTIONS preflight

	r.NotFound(router.handler.NotFound)
	r.MethodNotAllowed(router.handler.MethodNotAllowed)

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Timeout(router.requestTimeout))
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.handler.perfMon.Middleware)
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/recommendations", router.handler.Recommendations)
		r.Get("/movies", router.handler.Movies)
		r.Get("/movies/{movieID}/poster", router.handler.MoviePoster)
		r.Get("/stats", router.handler.Stats)
	})

	// ========================
	// Prometheus
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
