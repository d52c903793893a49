// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package config

import (
	"fmt"
	"strings"
	"time"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Bounds for numeric settings.
const (
	maxTopK              = 50
	maxPosterConcurrency = 50
	maxPosterAttempts    = 10
	maxRetryBackoff      = time.Minute

	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// placeholderPatterns indicate a secret that was copied from an example file
// and never filled in.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_API_KEY",
	"PLACEHOLDER",
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validatePoster(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateRequestBudget(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateCatalog validates the artifact source for the selected mode.
func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case CatalogSourceHub:
		if c.Catalog.RepoID == "" {
			return fmt.Errorf("CATALOG_REPO_ID is required when CATALOG_SOURCE=hub")
		}
		if strings.Count(c.Catalog.RepoID, "/") != 1 {
			return fmt.Errorf("CATALOG_REPO_ID must have the form owner/name, got: %s", c.Catalog.RepoID)
		}
		if c.Catalog.Revision == "" {
			return fmt.Errorf("CATALOG_REVISION must not be empty")
		}
		if err := validateHTTPURL(c.Catalog.Endpoint, "CATALOG_ENDPOINT", true); err != nil {
			return fmt.Errorf("CATALOG_ENDPOINT is invalid: %w", err)
		}
	case CatalogSourceDir:
		if c.Catalog.Dir == "" {
			return fmt.Errorf("CATALOG_DIR is required when CATALOG_SOURCE=dir")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be one of: hub, dir")
	}

	if c.Catalog.MovieListFile == "" || c.Catalog.SimilarityFile == "" {
		return fmt.Errorf("CATALOG_MOVIE_LIST_FILE and CATALOG_SIMILARITY_FILE must not be empty")
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required")
	}
	if containsPlaceholder(c.TMDB.APIKey) {
		return fmt.Errorf("TMDB_API_KEY contains a placeholder value, set a real API key")
	}
	if err := validateHTTPURL(c.TMDB.BaseURL, "TMDB_BASE_URL", false); err != nil {
		return fmt.Errorf("TMDB_BASE_URL is invalid: %w", err)
	}
	if c.TMDB.RateLimit <= 0 {
		return fmt.Errorf("TMDB_RATE_LIMIT must be positive")
	}
	if c.TMDB.RateBurst < 1 {
		return fmt.Errorf("TMDB_RATE_BURST must be at least 1")
	}
	if c.TMDB.BreakerMaxFailures < 1 {
		return fmt.Errorf("TMDB_BREAKER_MAX_FAILURES must be at least 1")
	}
	return nil
}

func (c *Config) validatePoster() error {
	urls := []struct {
		value string
		name  string
	}{
		{c.Poster.ImageBaseURL, "POSTER_IMAGE_BASE_URL"},
		{c.Poster.NoImageURL, "POSTER_NO_IMAGE_URL"},
		{c.Poster.ErrorURL, "POSTER_ERROR_URL"},
	}
	for _, u := range urls {
		if err := validateHTTPURL(u.value, u.name, false); err != nil {
			return fmt.Errorf("%s is invalid: %w", u.name, err)
		}
	}

	if c.Poster.MaxAttempts < 1 || c.Poster.MaxAttempts > maxPosterAttempts {
		return fmt.Errorf("POSTER_MAX_ATTEMPTS must be between 1 and %d", maxPosterAttempts)
	}
	if c.Poster.RetryBackoff < 0 || c.Poster.RetryBackoff > maxRetryBackoff {
		return fmt.Errorf("POSTER_RETRY_BACKOFF must be between 0 and %v", maxRetryBackoff)
	}
	if c.Poster.AttemptTimeout <= 0 {
		return fmt.Errorf("POSTER_ATTEMPT_TIMEOUT must be positive")
	}
	if c.Poster.CacheSize < 0 {
		return fmt.Errorf("POSTER_CACHE_SIZE must not be negative")
	}
	if c.Poster.CacheTTL < 0 {
		return fmt.Errorf("POSTER_CACHE_TTL must not be negative")
	}
	if c.Poster.CacheGCInterval <= 0 {
		return fmt.Errorf("POSTER_CACHE_GC_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.TopK < 1 || c.Recommend.TopK > maxTopK {
		return fmt.Errorf("RECOMMEND_TOP_K must be between 1 and %d", maxTopK)
	}
	if c.Recommend.PosterConcurrency < 1 || c.Recommend.PosterConcurrency > maxPosterConcurrency {
		return fmt.Errorf("RECOMMEND_POSTER_CONCURRENCY must be between 1 and %d", maxPosterConcurrency)
	}
	return nil
}

// validateRequestBudget rejects an HTTP timeout that would cut off a
// recommendation while its posters are still within their retry schedule.
func (c *Config) validateRequestBudget() error {
	budget := c.PosterResolutionBudget()
	if c.Server.Timeout < budget {
		return fmt.Errorf("HTTP_TIMEOUT (%v) must be at least the worst-case poster resolution time of %v "+
			"for RECOMMEND_TOP_K=%d and RECOMMEND_POSTER_CONCURRENCY=%d",
			c.Server.Timeout, budget, c.Recommend.TopK, c.Recommend.PosterConcurrency)
	}
	return nil
}

// PosterResolutionBudget is the longest one recommendation can spend on
// posters: ceil(top_k / poster_concurrency) waves, each bounded by one
// poster's full retry schedule.
func (c *Config) PosterResolutionBudget() time.Duration {
	if c.Poster.MaxAttempts < 1 || c.Recommend.PosterConcurrency < 1 {
		return 0
	}
	perPoster := time.Duration(c.Poster.MaxAttempts)*c.Poster.AttemptTimeout +
		time.Duration(c.Poster.MaxAttempts-1)*c.Poster.RetryBackoff
	waves := (c.Recommend.TopK + c.Recommend.PosterConcurrency - 1) / c.Recommend.PosterConcurrency
	return time.Duration(waves) * perPoster
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// containsPlaceholder reports whether value looks like an unfilled example value.
func containsPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}
