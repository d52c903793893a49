// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package models

// MovieList is the catalog title listing in catalog order.
type MovieList struct {
	Titles []string `json:"titles"`
	Count  int      `json:"count"`
}

// PosterResponse is the poster URL for a single movie id.
type PosterResponse struct {
	MovieID   int    `json:"movie_id"`
	PosterURL string `json:"poster_url"`
}

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status      string  `json:"status"`
	Version     string  `json:"version"`
	CatalogSize int     `json:"catalog_size"`
	TopK        int     `json:"top_k"`
	TMDBCircuit string  `json:"tmdb_circuit,omitempty"`
	Uptime      float64 `json:"uptime_seconds"`
}
