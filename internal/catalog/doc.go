// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

// Package catalog holds the movie catalog and its precomputed similarity matrix.
//
// Both tables are fetched once at startup from an artifact source and kept in
// an immutable Store. Row i of the matrix belongs to the movie at index i.
//
// Artifacts are JSON, optionally gzip-compressed when the name ends in ".gz":
//
//	movie_list.json   [{"movie_id": 19995, "title": "Avatar"}, ...]
//	similarity.json   [[1.0, 0.08, ...], [0.08, 1.0, ...], ...]
//
// Sources implement Fetcher. HubFetcher downloads files from a Hugging Face
// Hub repository, DirFetcher reads them from a local directory:
//
//	fetcher := catalog.NewHubFetcher(catalog.HubConfig{RepoID: "owner/model"}, http.DefaultClient)
//	store, err := catalog.Load(ctx, fetcher, catalog.DefaultArtifacts())
package catalog
