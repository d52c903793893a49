// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package recommend

import "fmt"

// MaxTopK bounds the number of recommendations per lookup.
const MaxTopK = 50

// Config contains recommendation settings.
type Config struct {
	// TopK is the number of similar movies returned per lookup.
	TopK int `json:"top_k"`

	// PosterConcurrency bounds parallel poster lookups per request.
	// 1 resolves posters sequentially.
	PosterConcurrency int `json:"poster_concurrency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TopK:              5,
		PosterConcurrency: 5,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TopK < 1 || c.TopK > MaxTopK {
		return fmt.Errorf("top_k must be in [1, %d], got %d", MaxTopK, c.TopK)
	}
	if c.PosterConcurrency < 1 {
		return fmt.Errorf("poster_concurrency must be positive, got %d", c.PosterConcurrency)
	}
	return nil
}
