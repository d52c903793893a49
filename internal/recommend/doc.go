// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

// Package recommend answers "movies similar to T" from the precomputed
// similarity matrix.
//
// # Engine
//
// Engine resolves a title to its anchor (the first catalog entry with exactly
// that title) and ranks every other movie by its score in the anchor's row.
// Equal scores keep catalog order. The anchor itself is never returned, even
// when its own diagonal entry is not the largest score in the row.
//
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), logger)
//	recs, err := engine.Recommend("Avatar")
//	if errors.Is(err, recommend.ErrTitleNotFound) { ... }
//
// The engine is pure: repeated calls with the same title return identical
// results, and nothing in the store is modified.
//
// # Recommender
//
// Recommender is the inbound operation. It runs the engine and resolves a
// poster URL for every result, in parallel up to Config.PosterConcurrency,
// returning items in rank order.
package recommend
