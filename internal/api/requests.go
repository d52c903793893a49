// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

// Package api provides HTTP request validation structs with go-playground/validator tags.
//
// Example usage:
//
//	req := RecommendationsRequest{Title: r.URL.Query().Get("title")}
//	if err := validateRequest(&req); err != nil {
//	    respondValidationError(w, err)
//	    return
//	}
package api

// MaxTitleLength bounds the title query parameter in bytes.
const MaxTitleLength = 300

// RecommendationsRequest represents the validated query parameters for the
// /recommendations endpoint. Title is matched exactly against the catalog.
type RecommendationsRequest struct {
	Title string `query:"title" validate:"required,max=300,nocontrol"`
}
