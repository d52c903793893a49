// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

// Package validation validates inbound API requests with go-playground/validator v10.
//
// A single validator instance is shared process-wide. Field names in error
// messages come from the `query` struct tag (falling back to `json`), so
// messages use the names clients actually send:
//
//	type RecommendRequest struct {
//	    Title string `query:"title" validate:"required,max=300,nocontrol"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	}
//
// Custom tags:
//
//   - nocontrol: the string contains no control characters
package validation
