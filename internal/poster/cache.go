// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package poster

import (
	"time"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/cache"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/logging"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/metrics"
)

// cachedPoster is the persisted form of a definitive lookup. URLs are rebuilt
// from the current configuration on read.
type cachedPoster struct {
	Outcome    string `json:"outcome"`
	PosterPath string `json:"poster_path,omitempty"`
}

// Cache is a two-tier poster cache: an LRU in memory, then BadgerDB.
// Either tier may be absent.
type Cache struct {
	memory *cache.LRU[int, cachedPoster]
	store  *BadgerStore
	ttl    time.Duration
}

// NewCache creates a cache. size <= 0 disables the memory tier and a nil
// store disables the persistent tier.
func NewCache(size int, ttl time.Duration, store *BadgerStore) *Cache {
	c := &Cache{store: store, ttl: ttl}
	if size > 0 {
		c.memory = cache.NewLRU[int, cachedPoster](size, ttl)
	}
	return c
}

func (c *Cache) get(movieID int) (cachedPoster, bool) {
	if c.memory != nil {
		if entry, ok := c.memory.Get(movieID); ok {
			metrics.RecordPosterCacheHit("memory")
			return entry, true
		}
	}

	if c.store != nil {
		entry, ok, err := c.store.Get(movieID)
		if err != nil {
			logging.Warn().Err(err).Int("movie_id", movieID).Msg("Poster cache read failed")
		}
		if ok {
			metrics.RecordPosterCacheHit("badger")
			if c.memory != nil {
				c.memory.Add(movieID, entry)
			}
			return entry, true
		}
	}

	metrics.RecordPosterCacheMiss()
	return cachedPoster{}, false
}

func (c *Cache) put(movieID int, entry cachedPoster) {
	if c.memory != nil {
		c.memory.Add(movieID, entry)
	}
	if c.store != nil {
		if err := c.store.Put(movieID, entry, c.ttl); err != nil {
			logging.Warn().Err(err).Int("movie_id", movieID).Msg("Poster cache write failed")
		}
	}
}

// Len returns the number of entries in the memory tier.
func (c *Cache) Len() int {
	if c.memory == nil {
		return 0
	}
	return c.memory.Len()
}

// CleanupExpired drops expired entries from the memory tier and returns how
// many were removed. Badger expires its own entries by TTL.
func (c *Cache) CleanupExpired() int {
	if c.memory == nil {
		return 0
	}
	return c.memory.CleanupExpired()
}

// RunGC runs one value log GC pass on the persistent tier.
func (c *Cache) RunGC(discardRatio float64) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	return c.store.RunGC(discardRatio)
}

// InMemory reports whether the cache has no on-disk tier.
func (c *Cache) InMemory() bool {
	return c.store == nil || c.store.InMemory()
}
