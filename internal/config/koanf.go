// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/movie-recommender/config.yaml",
	"/etc/movie-recommender/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the configuration defaults. They are applied first
// and overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8501,
			Host:            "0.0.0.0",
			Timeout:         60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Catalog: CatalogConfig{
			Source:         CatalogSourceHub,
			Revision:       "main",
			Endpoint:       "https://huggingface.co",
			MovieListFile:  "movie_list.json",
			SimilarityFile: "similarity.json",
			Timeout:        5 * time.Minute,
		},
		TMDB: TMDBConfig{
			BaseURL:            "https://api.themoviedb.org/3",
			Language:           "en-US",
			RateLimit:          40,
			RateBurst:          40,
			BreakerMaxFailures: 5,
			BreakerTimeout:     30 * time.Second,
		},
		Poster: PosterConfig{
			ImageBaseURL:    "https://image.tmdb.org/t/p/w500/",
			NoImageURL:      "https://via.placeholder.com/500x750?text=No+Image",
			ErrorURL:        "https://via.placeholder.com/500x750?text=Error",
			MaxAttempts:     3,
			RetryBackoff:    time.Second,
			AttemptTimeout:  10 * time.Second,
			CacheSize:       5000,
			CacheTTL:        24 * time.Hour,
			CacheDir:        "",
			CacheGCInterval: 10 * time.Minute,
		},
		Recommend: RecommendConfig{
			TopK:              5,
			PosterConcurrency: 5,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration using koanf's layered providers.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// TMDB_API_KEY -> tmdb.api_key, POSTER_MAX_ATTEMPTS -> poster.max_attempts
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to config paths.
var envMappings = map[string]string{
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	"catalog_source":          "catalog.source",
	"catalog_repo_id":         "catalog.repo_id",
	"catalog_revision":        "catalog.revision",
	"catalog_endpoint":        "catalog.endpoint",
	"hf_token":                "catalog.token",
	"catalog_dir":             "catalog.dir",
	"catalog_movie_list_file": "catalog.movie_list_file",
	"catalog_similarity_file": "catalog.similarity_file",
	"catalog_timeout":         "catalog.timeout",

	"tmdb_api_key":              "tmdb.api_key",
	"tmdb_base_url":             "tmdb.base_url",
	"tmdb_language":             "tmdb.language",
	"tmdb_rate_limit":           "tmdb.rate_limit",
	"tmdb_rate_burst":           "tmdb.rate_burst",
	"tmdb_breaker_max_failures": "tmdb.breaker_max_failures",
	"tmdb_breaker_timeout":      "tmdb.breaker_timeout",

	"poster_image_base_url":    "poster.image_base_url",
	"poster_no_image_url":      "poster.no_image_url",
	"poster_error_url":         "poster.error_url",
	"poster_max_attempts":      "poster.max_attempts",
	"poster_retry_backoff":     "poster.retry_backoff",
	"poster_attempt_timeout":   "poster.attempt_timeout",
	"poster_cache_size":        "poster.cache_size",
	"poster_cache_ttl":         "poster.cache_ttl",
	"poster_cache_dir":         "poster.cache_dir",
	"poster_cache_gc_interval": "poster.cache_gc_interval",

	"recommend_top_k":              "recommend.top_k",
	"recommend_poster_concurrency": "recommend.poster_concurrency",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its config path.
// Unmapped variables return "" and are skipped, so unrelated environment
// variables never reach the config.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
