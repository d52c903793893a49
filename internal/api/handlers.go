// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package api

import (
	"context"
	"time"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/config"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/middleware"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/recommend"
)

// Version is reported by the health endpoint.
var Version = "1.0.0"

// Recommender produces ranked recommendations with poster URLs.
type Recommender interface {
	Recommend(ctx context.Context, title string) (*recommend.Response, error)
	Titles() []string
	CatalogSize() int
}

// PosterResolver maps a TMDB movie id to a displayable image URL.
type PosterResolver interface {
	URL(ctx context.Context, movieID int) string
}

// Handler holds the dependencies of every API endpoint.
type Handler struct {
	recommender  Recommender
	posters      PosterResolver
	config       *config.Config
	perfMon      *middleware.PerformanceMonitor
	circuitState func() string
	startTime    time.Time
}

// NewHandler creates a new API handler. The performance monitor keeps the
// last 1000 requests and logs requests slower than the server timeout's half.
func NewHandler(recommender Recommender, posters PosterResolver, cfg *config.Config) *Handler {
	slow := time.Duration(0)
	if cfg != nil {
		slow = cfg.Server.Timeout / 2
	}
	return &Handler{
		recommender: recommender,
		posters:     posters,
		config:      cfg,
		perfMon:     middleware.NewPerformanceMonitor(1000, slow),
		startTime:   time.Now(),
	}
}

// SetCircuitStateFunc reports the TMDB circuit breaker state in health
// responses. An open circuit marks the service degraded.
func (h *Handler) SetCircuitStateFunc(fn func() string) {
	h.circuitState = fn
}

// PerformanceMonitor returns the handler's request latency tracker.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

func (h *Handler) topK() int {
	if h.config == nil {
		return recommend.DefaultConfig().TopK
	}
	return h.config.Recommend.TopK
}
