// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/logging"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/models"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/recommend"
)

// Recommendations handles GET /api/v1/recommendations?title=T
//
// @Summary Similar movies for a title
// @Description Returns the most similar catalog movies, highest score first, each with a poster URL. The title must match a catalog title exactly.
// @Tags Recommendations
// @Produce json
// @Param title query string true "Exact catalog title"
// @Success 200 {object} models.APIResponse{data=recommend.Response}
// @Failure 400 {object} models.APIResponse "Missing or invalid title"
// @Failure 404 {object} models.APIResponse "Title not in catalog"
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := RecommendationsRequest{Title: r.URL.Query().Get("title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	resp, err := h.recommender.Recommend(r.Context(), req.Title)
	if errors.Is(err, recommend.ErrTitleNotFound) {
		logging.Ctx(r.Context()).Debug().Str("title", sanitizeLogValue(req.Title)).Msg("Recommendation requested for unknown title")
		respondError(w, http.StatusNotFound, ErrCodeTitleNotFound, "Movie not found in catalog", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to compute recommendations", err)
		return
	}

	respondSuccess(w, r, resp, start)
}

// Movies handles GET /api/v1/movies
//
// @Summary List catalog titles
// @Description Returns every catalog title in catalog order, suitable for a selection widget.
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	titles := h.recommender.Titles()
	respondSuccess(w, r, models.MovieList{Titles: titles, Count: len(titles)}, start)
}

// MoviePoster handles GET /api/v1/movies/{movieID}/poster
//
// @Summary Poster URL for a TMDB movie id
// @Description Always returns a displayable URL: the TMDB poster, a "No Image" placeholder, or an "Error" placeholder when TMDB is unreachable.
// @Tags Recommendations
// @Produce json
// @Param movieID path int true "TMDB movie id"
// @Success 200 {object} models.APIResponse{data=models.PosterResponse}
// @Failure 400 {object} models.APIResponse "movieID is not an integer"
// @Router /movies/{movieID}/poster [get]
func (h *Handler) MoviePoster(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		respondValidationError(w, &models.APIError{
			Code:    ErrCodeValidation,
			Message: "movieID must be an integer",
			Details: map[string]interface{}{"field": "movieID", "tag": "int"},
		})
		return
	}

	respondSuccess(w, r, models.PosterResponse{
		MovieID:   movieID,
		PosterURL: h.posters.URL(r.Context(), movieID),
	}, start)
}
