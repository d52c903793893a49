// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package middleware

import (
	"net/http"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/logging"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
	// CorrelationIDHeader lets an upstream caller join its own trace.
	CorrelationIDHeader = "X-Correlation-ID"

	maxIDLength = 128
)

// RequestID middleware generates a unique ID for each request
// and adds it to both the response header and request context.
// Upstream IDs are kept when they are short printable ASCII.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !validID(requestID) {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		if correlationID := r.Header.Get(CorrelationIDHeader); validID(correlationID) {
			ctx = logging.ContextWithCorrelationID(ctx, correlationID)
		} else {
			ctx = logging.ContextWithNewCorrelationID(ctx)
		}
		w.Header().Set(CorrelationIDHeader, logging.CorrelationIDFromContext(ctx))

		next(w, r.WithContext(ctx))
	}
}

func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
