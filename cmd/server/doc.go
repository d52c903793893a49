// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

/*
Package main is the entry point for the similar-movie lookup server.

The server loads a movie catalog and its precomputed similarity matrix once
at startup, then answers "movies like T" over HTTP. Each answer carries the
five highest-scoring other movies together with poster URLs resolved through
the TMDB metadata API.

# Application Architecture

	RootSupervisor ("movie-recommender")
	├── StorageSupervisor ("storage-layer")
	│   └── CacheGCService (only with POSTER_CACHE_DIR)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional config.yaml, environment
 2. Logging: zerolog with JSON or console output
 3. Catalog: movie list and similarity matrix from the Hugging Face Hub or a directory
 4. Posters: TMDB client (rate limit, circuit breaker), LRU and Badger cache
 5. Recommender: ranking engine plus parallel poster resolution
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

A catalog that cannot be loaded is fatal; the server never starts without one.

# Configuration

Required:
  - TMDB_API_KEY: TMDB v3 API key
  - CATALOG_REPO_ID: Hub repository holding the artifacts (CATALOG_SOURCE=hub)
  - CATALOG_DIR: local artifact directory (CATALOG_SOURCE=dir)

Common options:
  - HTTP_PORT (default 8501), HTTP_HOST
  - RECOMMEND_TOP_K (default 5), RECOMMEND_POSTER_CONCURRENCY (default 5)
  - POSTER_CACHE_DIR: persist poster lookups across restarts
  - LOG_LEVEL, LOG_FORMAT

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for SHUTDOWN_TIMEOUT, then the poster cache is
closed.

# Example Usage

	export TMDB_API_KEY=your-key
	export CATALOG_REPO_ID=owner/movie-artifacts
	./movie-recommender

	curl 'http://localhost:8501/api/v1/recommendations?title=Avatar'
*/
package main
