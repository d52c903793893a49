// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

/*
Package poster resolves TMDB movie ids to poster image URLs.

A lookup never fails at the boundary. Resolver.URL always returns a usable
image URL: the TMDB poster when one exists, a "No Image" placeholder when
TMDB has no poster (or answers with a body that cannot be read), and an
"Error" placeholder when TMDB could not be reached after every attempt.

# Components

  - Client: a TMDB metadata client guarded by a sony/gobreaker circuit
    breaker and a golang.org/x/time/rate limiter.
  - Resolver: bounded retry with a fixed, cancellable backoff and a
    per-attempt timeout.
  - Cache: an in-memory LRU tier in front of a BadgerDB store. Only
    definitive outcomes (resolved, no poster) are cached.

# Usage

	client := poster.NewClient(&cfg.TMDB, nil)
	store, err := poster.OpenBadgerStore(cfg.Poster.CacheDir)
	if err != nil {
	    return err
	}
	defer store.Close()

	resolver := poster.NewResolver(client, &cfg.Poster,
	    poster.NewCache(cfg.Poster.CacheSize, cfg.Poster.CacheTTL, store))
	url := resolver.URL(ctx, 19995)
*/
package poster
