// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package poster

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Poster cache key prefix for namespacing in BadgerDB.
const badgerPosterKeyPrefix = "poster:"

// BadgerStore persists poster lookup results in BadgerDB so they survive
// restarts. Entries expire through Badger's native TTL.
type BadgerStore struct {
	db       *badger.DB
	inMemory bool
}

// OpenBadgerStore opens a BadgerDB store in dir. An empty dir opens an
// in-memory database.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dir)
	}
	opts.Logger = nil                // Suppress BadgerDB internal logs
	opts.ValueLogFileSize = 16 << 20 // Entries are tiny

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for poster cache: %w", err)
	}

	return &BadgerStore{db: db, inMemory: dir == ""}, nil
}

// InMemory reports whether the store has no on-disk directory.
func (s *BadgerStore) InMemory() bool {
	return s.inMemory
}

// Get returns the cached entry for movieID.
func (s *BadgerStore) Get(movieID int) (cachedPoster, bool, error) {
	var entry cachedPoster

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(posterKey(movieID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return cachedPoster{}, false, nil
	}
	if err != nil {
		return cachedPoster{}, false, fmt.Errorf("get poster %d: %w", movieID, err)
	}
	return entry, true, nil
}

// Put stores entry for movieID. A positive ttl sets an expiry.
func (s *BadgerStore) Put(movieID int, entry cachedPoster, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal poster entry: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(posterKey(movieID), data)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	})
}

// RunGC runs one value log garbage collection pass. It reports whether a
// file was rewritten; "nothing to collect" and in-memory mode are not errors.
func (s *BadgerStore) RunGC(discardRatio float64) (bool, error) {
	err := s.db.RunValueLogGC(discardRatio)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
		return false, nil
	default:
		return false, err
	}
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func posterKey(movieID int) []byte {
	return []byte(badgerPosterKeyPrefix + strconv.Itoa(movieID))
}
