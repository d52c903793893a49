// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package catalog

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArtifact indicates an artifact that decoded but breaks the
	// catalog invariants (empty catalog, non-square or misaligned matrix).
	ErrInvalidArtifact = errors.New("invalid catalog artifact")

	// ErrArtifactNotFound indicates the source has no artifact with that name.
	ErrArtifactNotFound = errors.New("catalog artifact not found")
)

// Movie is one catalog entry.
type Movie struct {
	// Index is the zero-based catalog position and the matrix row of this movie.
	Index int `json:"-"`
	// MovieID is the TMDB movie id.
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
}

// Store is the read-only catalog and similarity matrix. It is safe for
// concurrent use because nothing mutates it after NewStore returns.
type Store struct {
	movies []Movie
	matrix [][]float64

	// firstIndex maps a title to the first index carrying it.
	firstIndex map[string]int
}

// NewStore validates the tables and builds a store. Movie indexes are
// assigned from slice position. The store takes ownership of both slices.
func NewStore(movies []Movie, matrix [][]float64) (*Store, error) {
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidArtifact)
	}
	if len(matrix) != len(movies) {
		return nil, fmt.Errorf("%w: similarity matrix has %d rows, catalog has %d movies",
			ErrInvalidArtifact, len(matrix), len(movies))
	}

	for i, row := range matrix {
		if len(row) != len(movies) {
			return nil, fmt.Errorf("%w: similarity row %d has %d columns, want %d",
				ErrInvalidArtifact, i, len(row), len(movies))
		}
		for j, score := range row {
			if math.IsNaN(score) || math.IsInf(score, 0) {
				return nil, fmt.Errorf("%w: similarity[%d][%d] is not finite", ErrInvalidArtifact, i, j)
			}
		}
	}

	firstIndex := make(map[string]int, len(movies))
	for i := range movies {
		movies[i].Index = i
		if _, seen := firstIndex[movies[i].Title]; !seen {
			firstIndex[movies[i].Title] = i
		}
	}

	return &Store{movies: movies, matrix: matrix, firstIndex: firstIndex}, nil
}

// Len returns the number of movies.
func (s *Store) Len() int {
	return len(s.movies)
}

// Movie returns the movie at index i. It panics if i is out of range.
func (s *Store) Movie(i int) Movie {
	return s.movies[i]
}

// Row returns the similarity row for index i. Callers must not modify it.
func (s *Store) Row(i int) []float64 {
	return s.matrix[i]
}

// IndexOf returns the index of the first movie whose title equals title
// exactly (case-sensitive).
func (s *Store) IndexOf(title string) (int, bool) {
	i, ok := s.firstIndex[title]
	return i, ok
}

// Titles returns every title in catalog order, duplicates included.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.movies))
	for i := range s.movies {
		titles[i] = s.movies[i].Title
	}
	return titles
}
