// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

/*
Package supervisor provides process supervision for the recommendation
service using suture v4.

The tree separates storage maintenance from request serving so that a
failing background job never takes the HTTP server down with it:

	RootSupervisor ("movie-recommender")
	├── StorageSupervisor ("storage-layer")
	│   └── CacheGCService (persistent poster cache only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddStorageService(services.NewCacheGCService(store, gcConfig, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)

# Failure Handling

Each supervisor counts failures with exponential decay. When the counter
exceeds FailureThreshold the supervisor waits FailureBackoff before the
next restart. Supervisor events are logged through sutureslog, which
forwards to the zerolog global logger via logging.NewSlogLogger.

# Service Interface

All services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Returning suture.ErrDoNotRestart removes a service permanently; any other
error causes a restart. Services must return promptly once ctx is done.

# Debugging Shutdown Issues

UnstoppedServiceReport lists services that did not stop within
ShutdownTimeout.
*/
package supervisor
