// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/metrics"
)

// CacheCollector is the maintenance surface of the two-tier poster cache.
// Satisfied by *poster.Cache.
type CacheCollector interface {
	// CleanupExpired sweeps the memory tier and returns the entries removed.
	CleanupExpired() int
	// RunGC reports whether a value log file was rewritten.
	RunGC(discardRatio float64) (bool, error)
	// InMemory reports whether there is no value log to collect.
	InMemory() bool
}

// CacheGCServiceConfig holds the GC schedule.
type CacheGCServiceConfig struct {
	// Interval between GC rounds. Default: 10m
	Interval time.Duration

	// DiscardRatio is the fraction of stale data a value log file needs
	// before it is rewritten. Default: 0.5
	DiscardRatio float64

	// MaxRewrites bounds the rewrites within one round. Default: 10
	MaxRewrites int
}

// CacheGCService reclaims space held by expired poster entries in both tiers.
type CacheGCService struct {
	cache  CacheCollector
	config CacheGCServiceConfig
	logger zerolog.Logger
	name   string
}

// NewCacheGCService creates the service, filling zero config fields with defaults.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheGCService(cache CacheCollector, cfg CacheGCServiceConfig, logger zerolog.Logger) *CacheGCService {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.DiscardRatio <= 0 || cfg.DiscardRatio >= 1 {
		cfg.DiscardRatio = 0.5
	}
	if cfg.MaxRewrites <= 0 {
		cfg.MaxRewrites = 10
	}
	return &CacheGCService{
		cache:  cache,
		config: cfg,
		logger: logger.With().Str("service", "poster-cache-gc").Logger(),
		name:   "poster-cache-gc",
	}
}

// Serve implements suture.Service.
func (s *CacheGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.logger.Info().
		Dur("interval", s.config.Interval).
		Float64("discard_ratio", s.config.DiscardRatio).
		Bool("value_log", !s.cache.InMemory()).
		Msg("poster cache GC running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.collect(ctx)
		}
	}
}

// collect runs one GC round: a sweep of the memory tier, then value log GC
// when the Badger tier is on disk. Badger rewrites at most one file per call,
// so the call repeats while it keeps finding work.
func (s *CacheGCService) collect(ctx context.Context) {
	start := time.Now()
	expired := s.cache.CleanupExpired()
	if s.cache.InMemory() {
		s.logger.Debug().Int("expired", expired).Msg("poster cache sweep complete")
		return
	}

	rewrites := 0

	for rewrites < s.config.MaxRewrites {
		if ctx.Err() != nil {
			return
		}

		rewritten, err := s.cache.RunGC(s.config.DiscardRatio)
		if err != nil {
			metrics.RecordBadgerGC("error")
			s.logger.Warn().Err(err).Msg("poster cache value log GC failed")
			return
		}
		if !rewritten {
			break
		}
		metrics.RecordBadgerGC("rewritten")
		rewrites++
	}

	if rewrites == 0 {
		metrics.RecordBadgerGC("noop")
	}
	s.logger.Debug().
		Int("expired", expired).
		Int("rewrites", rewrites).
		Dur("duration", time.Since(start)).
		Msg("poster cache GC round complete")
}

// String implements fmt.Stringer.
func (s *CacheGCService) String() string {
	return s.name
}
