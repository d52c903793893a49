// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package config

import (
	"net"
	"strconv"
	"time"
)

// Catalog sources.
const (
	CatalogSourceHub = "hub"
	CatalogSourceDir = "dir"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Poster    PosterConfig    `koanf:"poster"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CatalogConfig describes where the catalog and similarity artifacts live.
// They are fetched once at startup.
type CatalogConfig struct {
	// Source is "hub" (Hugging Face Hub) or "dir" (local directory).
	Source string `koanf:"source"`

	RepoID   string `koanf:"repo_id"`
	Revision string `koanf:"revision"`
	Endpoint string `koanf:"endpoint"`
	// Token is an optional Hugging Face access token for private repositories.
	Token string `koanf:"token"`

	Dir string `koanf:"dir"`

	MovieListFile  string        `koanf:"movie_list_file"`
	SimilarityFile string        `koanf:"similarity_file"`
	Timeout        time.Duration `koanf:"timeout"`
}

// TMDBConfig holds TMDB API client settings.
type TMDBConfig struct {
	APIKey   string `koanf:"api_key"`
	BaseURL  string `koanf:"base_url"`
	Language string `koanf:"language"`

	// RateLimit is the client-side request rate in requests per second.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	// BreakerMaxFailures is the consecutive failure count that opens the circuit.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// PosterConfig holds poster resolution settings.
type PosterConfig struct {
	ImageBaseURL string `koanf:"image_base_url"`
	NoImageURL   string `koanf:"no_image_url"`
	ErrorURL     string `koanf:"error_url"`

	MaxAttempts    int           `koanf:"max_attempts"`
	RetryBackoff   time.Duration `koanf:"retry_backoff"`
	AttemptTimeout time.Duration `koanf:"attempt_timeout"`

	// CacheSize is the in-memory LRU capacity. Zero disables the memory cache.
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`

	// CacheDir is the BadgerDB directory. Empty runs Badger in memory.
	CacheDir        string        `koanf:"cache_dir"`
	CacheGCInterval time.Duration `koanf:"cache_gc_interval"`
}

// RecommendConfig holds recommendation settings.
type RecommendConfig struct {
	TopK              int `koanf:"top_k"`
	PosterConcurrency int `koanf:"poster_concurrency"`
}

// SecurityConfig holds CORS and inbound rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`
	// Format is json or console.
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
