// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/config"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/models"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/recommend"
)

// fakeRecommender answers from a fixed title list.
type fakeRecommender struct {
	titles []string
	err    error
}

func (f *fakeRecommender) Recommend(_ context.Context, title string) (*recommend.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i, t := range f.titles {
		if t != title {
			continue
		}
		var items []recommend.RecommendedMovie
		for j, other := range f.titles {
			if j == i {
				continue
			}
			items = append(items, recommend.RecommendedMovie{
				Title:     other,
				MovieID:   100 + j,
				Score:     1 / float64(1+j),
				PosterURL: fmt.Sprintf("https://image.tmdb.org/t/p/w500/%d.jpg", 100+j),
			})
		}
		return &recommend.Response{Query: title, Items: items, LatencyMS: 3}, nil
	}
	return nil, &recommend.LookupError{Title: title}
}

func (f *fakeRecommender) Titles() []string { return f.titles }
func (f *fakeRecommender) CatalogSize() int { return len(f.titles) }

// fakePosters returns a predictable URL per id.
type fakePosters struct{}

func (fakePosters) URL(_ context.Context, movieID int) string {
	return fmt.Sprintf("https://image.tmdb.org/t/p/w500/%d.jpg", movieID)
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
	return env
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Timeout: 10 * time.Second},
		Recommend: config.RecommendConfig{TopK: 5, PosterConcurrency: 5},
		Security: config.SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
		},
	}
}

func newTestHandler(rec Recommender) *Handler {
	return NewHandler(rec, fakePosters{}, testConfig())
}

func TestHandler_Recommendations(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeRecommender{titles: []string{"Avatar", "Titanic", "Aliens"}})

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{"known title", "title=Avatar", http.StatusOK, ""},
		{"title with spaces", "title=" + url.QueryEscape("The Dark Knight"), http.StatusNotFound, ErrCodeTitleNotFound},
		{"unknown title", "title=Nope", http.StatusNotFound, ErrCodeTitleNotFound},
		{"case differs", "title=avatar", http.StatusNotFound, ErrCodeTitleNotFound},
		{"missing title", "", http.StatusBadRequest, ErrCodeValidation},
		{"empty title", "title=", http.StatusBadRequest, ErrCodeValidation},
		{"too long", "title=" + strings.Repeat("a", MaxTitleLength+1), http.StatusBadRequest, ErrCodeValidation},
		{"control characters", "title=" + url.QueryEscape("Ava\ntar"), http.StatusBadRequest, ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.Recommendations(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			if tt.wantCode == "" {
				if env.Status != "success" || env.Error != nil {
					t.Errorf("envelope = %+v, want success", env)
				}
				return
			}
			if env.Status != "error" || env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("envelope = %+v, want error code %s", env, tt.wantCode)
			}
		})
	}
}

func TestHandler_Recommendations_Body(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeRecommender{titles: []string{"A", "B", "C"}})

	rec := httptest.NewRecorder()
	h.Recommendations(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?title=A", nil))

	env := decodeEnvelope(t, rec)
	var resp recommend.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if resp.Query != "A" || len(resp.Items) != 2 {
		t.Fatalf("response = %+v", resp)
	}
	if resp.Items[0].Title != "B" || resp.Items[0].PosterURL != "https://image.tmdb.org/t/p/w500/101.jpg" {
		t.Errorf("first item = %+v", resp.Items[0])
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("missing ETag header")
	}
	if env.Metadata.Timestamp.IsZero() {
		t.Error("missing metadata timestamp")
	}
}

func TestHandler_Recommendations_InternalError(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeRecommender{titles: []string{"A"}, err: errors.New("boom")})

	rec := httptest.NewRecorder()
	h.Recommendations(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?title=A", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != ErrCodeInternal {
		t.Errorf("error = %+v", env.Error)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("internal error text leaked to the client")
	}
}

func TestHandler_Movies(t *testing.T) {
	t.Parallel()

	titles := []string{"Avatar", "Titanic", "Aliens"}
	h := newTestHandler(&fakeRecommender{titles: titles})

	rec := httptest.NewRecorder()
	h.Movies(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list models.MovieList
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &list); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if list.Count != 3 || strings.Join(list.Titles, ",") != "Avatar,Titanic,Aliens" {
		t.Errorf("list = %+v", list)
	}
}

func TestHandler_MoviePoster(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeRecommender{})

	tests := []struct {
		id         string
		wantStatus int
		wantURL    string
	}{
		{"19995", http.StatusOK, "https://image.tmdb.org/t/p/w500/19995.jpg"},
		{"-4", http.StatusOK, "https://image.tmdb.org/t/p/w500/-4.jpg"},
		{"0", http.StatusOK, "https://image.tmdb.org/t/p/w500/0.jpg"},
		{"abc", http.StatusBadRequest, ""},
		{"1.5", http.StatusBadRequest, ""},
		{"99999999999999999999999", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/"+tt.id+"/poster", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("movieID", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rec := httptest.NewRecorder()
			h.MoviePoster(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			env := decodeEnvelope(t, rec)
			if tt.wantStatus != http.StatusOK {
				if env.Error == nil || env.Error.Code != ErrCodeValidation {
					t.Errorf("error = %+v", env.Error)
				}
				return
			}
			var poster models.PosterResponse
			if err := json.Unmarshal(env.Data, &poster); err != nil {
				t.Fatalf("decode data: %v", err)
			}
			if poster.PosterURL != tt.wantURL {
				t.Errorf("poster_url = %q, want %q", poster.PosterURL, tt.wantURL)
			}
		})
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		circuit    string
		wantStatus string
	}{
		{"no breaker", "", "healthy"},
		{"closed", "closed", "healthy"},
		{"half-open", "half-open", "healthy"},
		{"open", "open", "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(&fakeRecommender{titles: []string{"A", "B"}})
			if tt.circuit != "" {
				h.SetCircuitStateFunc(func() string { return tt.circuit })
			}

			rec := httptest.NewRecorder()
			h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

			var health models.HealthStatus
			if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &health); err != nil {
				t.Fatalf("decode data: %v", err)
			}
			if health.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", health.Status, tt.wantStatus)
			}
			if health.CatalogSize != 2 || health.TopK != 5 || health.Version == "" {
				t.Errorf("health = %+v", health)
			}
		})
	}
}

func TestHandler_HealthProbes(t *testing.T) {
	t.Parallel()

	ready := newTestHandler(&fakeRecommender{titles: []string{"A"}})
	empty := newTestHandler(&fakeRecommender{})

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    int
	}{
		{"live", ready.HealthLive, http.StatusOK},
		{"live without catalog", empty.HealthLive, http.StatusOK},
		{"ready", ready.HealthReady, http.StatusOK},
		{"not ready", empty.HealthReady, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/x", nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
