// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

/*
Package config loads and validates the service configuration.

Configuration is layered with koanf, lowest priority first:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, or config.yaml / config.yml in the
    working directory, or /etc/movie-recommender/config.yaml)
 3. Environment variables, mapped to config paths by envTransformFunc

Environment variables that are not in the mapping table are ignored.

# Required Settings

  - TMDB_API_KEY: TMDB v3 API key used for poster lookups
  - CATALOG_REPO_ID: Hugging Face repository holding the catalog artifacts
    (required when CATALOG_SOURCE=hub, the default)
  - CATALOG_DIR: local artifact directory (required when CATALOG_SOURCE=dir)

# Example

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

The YAML layout mirrors the koanf tags on Config:

	tmdb:
	  api_key: "..."
	catalog:
	  repo_id: Sakshi2064/movie-recommender-model
	poster:
	  max_attempts: 3
	  retry_backoff: 1s
	recommend:
	  top_k: 5
*/
package config
