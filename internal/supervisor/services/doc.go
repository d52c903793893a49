// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

/*
Package services provides suture.Service wrappers for the long-running parts
of the recommendation service.

Each wrapper translates a component lifecycle into suture's context-aware
Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server behind the HTTPServer interface
  - Converts ListenAndServe into Serve
  - Drains connections with Shutdown on context cancellation

Poster Cache GC (CacheGCService):
  - Sweeps expired entries out of the in-memory LRU tier every round
  - Rewrites the Badger value log when the store is on disk
  - Repeats a value log pass while Badger reports a rewrite

# Return Semantics

  - ctx.Err(): shutdown was requested
  - any other error: the supervisor restarts the service with backoff

# Testing

Both wrappers depend on small interfaces (HTTPServer, CacheCollector) so
tests can substitute doubles without opening sockets or databases.
*/
package services
