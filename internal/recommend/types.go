// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package recommend

import (
	"errors"
	"fmt"
)

// ErrTitleNotFound is returned when no catalog entry has the requested title.
var ErrTitleNotFound = errors.New("title not found in catalog")

// LookupError carries the title that failed to resolve. It unwraps to
// ErrTitleNotFound.
type LookupError struct {
	Title string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("title %q not found in catalog", e.Title)
}

func (e *LookupError) Unwrap() error {
	return ErrTitleNotFound
}

// Recommendation is one ranked engine result.
type Recommendation struct {
	Index   int
	MovieID int
	Title   string
	Score   float64
}

// RecommendedMovie is a recommendation with its resolved poster.
type RecommendedMovie struct {
	Title     string  `json:"title"`
	MovieID   int     `json:"movie_id"`
	Score     float64 `json:"score"`
	PosterURL string  `json:"poster_url"`
}

// Response is the result of a recommendation request. Items are in rank order.
type Response struct {
	Query     string             `json:"query"`
	Items     []RecommendedMovie `json:"items"`
	LatencyMS int64              `json:"latency_ms"`
}
