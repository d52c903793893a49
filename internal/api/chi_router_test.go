// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/models"
)

func newTestRouter(t *testing.T, mutate func(h *Handler)) http.Handler {
	t.Helper()
	h := newTestHandler(&fakeRecommender{titles: []string{"Avatar", "Titanic", "Aliens"}})
	if mutate != nil {
		mutate(h)
	}
	return NewRouter(h).SetupChi()
}

func serve(router http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/recommendations?title=Avatar", http.StatusOK},
		{http.MethodGet, "/api/v1/recommendations?title=Unknown", http.StatusNotFound},
		{http.MethodGet, "/api/v1/recommendations", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/movies", http.StatusOK},
		{http.MethodGet, "/api/v1/movies/19995/poster", http.StatusOK},
		{http.MethodGet, "/api/v1/movies/abc/poster", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/stats", http.StatusOK},
		{http.MethodGet, "/api/v1/health", http.StatusOK},
		{http.MethodGet, "/api/v1/health/live", http.StatusOK},
		{http.MethodGet, "/api/v1/health/ready", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodPost, "/api/v1/movies", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/api/v1/recommendations", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			rec := serve(router, tt.method, tt.path, nil)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRouter_ErrorEnvelopes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	tests := []struct {
		method   string
		path     string
		wantCode string
	}{
		{http.MethodGet, "/does/not/exist", ErrCodeNotFound},
		{http.MethodPut, "/api/v1/movies", ErrCodeMethodNotAllowed},
		{http.MethodGet, "/api/v1/recommendations?title=Unknown", ErrCodeTitleNotFound},
	}

	for _, tt := range tests {
		rec := serve(router, tt.method, tt.path, nil)
		env := decodeEnvelope(t, rec)
		if env.Status != "error" || env.Error == nil || env.Error.Code != tt.wantCode {
			t.Errorf("%s %s: envelope = %+v, want code %s", tt.method, tt.path, env, tt.wantCode)
		}
	}
}

func TestRouter_RequestID(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	rec := serve(router, http.MethodGet, "/api/v1/movies", nil)
	generated := rec.Header().Get("X-Request-ID")
	if generated == "" {
		t.Fatal("missing generated X-Request-ID")
	}
	if env := decodeEnvelope(t, rec); env.Metadata.RequestID != generated {
		t.Errorf("metadata request_id = %q, want %q", env.Metadata.RequestID, generated)
	}

	rec = serve(router, http.MethodGet, "/api/v1/movies", map[string]string{"X-Request-ID": "upstream-123"})
	if got := rec.Header().Get("X-Request-ID"); got != "upstream-123" {
		t.Errorf("X-Request-ID = %q, want upstream value", got)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	rec := serve(router, http.MethodGet, "/api/v1/movies", nil)

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on a plain HTTP request")
	}

	rec = serve(router, http.MethodGet, "/api/v1/movies", map[string]string{"X-Forwarded-Proto": "https"})
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS missing behind an HTTPS proxy")
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	rec := serve(router, http.MethodOptions, "/api/v1/recommendations", map[string]string{
		"Origin":                        "https://movies.example.com",
		"Access-Control-Request-Method": http.MethodGet,
	})

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRouter_Gzip(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	rec := serve(router, http.MethodGet, "/api/v1/movies", map[string]string{"Accept-Encoding": "gzip"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}

	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip body: %v", err)
	}

	var env struct {
		Data models.MovieList `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Count != 3 {
		t.Errorf("count = %d, want 3", env.Data.Count)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, func(h *Handler) {
		h.config.Security.RateLimitReqs = 2
		h.config.Security.RateLimitWindow = time.Minute
	})

	for i := 0; i < 2; i++ {
		if rec := serve(router, http.MethodGet, "/api/v1/movies", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}

	rec := serve(router, http.MethodGet, "/api/v1/movies", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("envelope = %+v", env)
	}

	// Health probes have their own budget.
	if rec := serve(router, http.MethodGet, "/api/v1/health/live", nil); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRouter_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, func(h *Handler) {
		h.config.Security.RateLimitReqs = 1
		h.config.Security.RateLimitDisabled = true
	})

	for i := 0; i < 5; i++ {
		if rec := serve(router, http.MethodGet, "/api/v1/movies", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
}

func TestRouter_MetricsExposition(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	serve(router, http.MethodGet, "/api/v1/movies", nil)

	rec := serve(router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/v1/movies") {
		t.Error("metrics output has no series for /api/v1/movies")
	}
}
