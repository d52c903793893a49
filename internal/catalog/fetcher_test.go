// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHubFetcher_Fetch(t *testing.T) {
	t.Parallel()

	type seen struct{ path, auth string }
	requests := make(chan seen, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- seen{path: r.URL.Path, auth: r.Header.Get("Authorization")}
		_, _ = w.Write([]byte(`[{"movie_id":1,"title":"A"}]`))
	}))
	defer server.Close()

	f := NewHubFetcher(HubConfig{
		Endpoint: server.URL + "/",
		RepoID:   "Sakshi2064/movie-recommender-model",
		Token:    "hf_secret",
	}, server.Client())

	rc, err := f.Fetch(context.Background(), "movie_list.json")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	defer rc.Close()

	body, _ := io.ReadAll(rc)
	if !strings.Contains(string(body), `"title":"A"`) {
		t.Errorf("unexpected body: %s", body)
	}
	got := <-requests
	if got.path != "/Sakshi2064/movie-recommender-model/resolve/main/movie_list.json" {
		t.Errorf("path = %q", got.path)
	}
	if got.auth != "Bearer hf_secret" {
		t.Errorf("Authorization = %q", got.auth)
	}
}

func TestHubFetcher_NoTokenNoHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header")
		}
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	f := NewHubFetcher(HubConfig{Endpoint: server.URL, RepoID: "o/r", Revision: "v1"}, server.Client())
	rc, err := f.Fetch(context.Background(), "x.json")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	_ = rc.Close()
}

func TestHubFetcher_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		wantNotFound bool
		wantContains string
	}{
		{"not found", http.StatusNotFound, true, "movie_list.json"},
		{"unauthorized", http.StatusUnauthorized, false, "HTTP 401"},
		{"server error", http.StatusInternalServerError, false, "HTTP 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer server.Close()

			f := NewHubFetcher(HubConfig{Endpoint: server.URL, RepoID: "o/r"}, server.Client())
			_, err := f.Fetch(context.Background(), "movie_list.json")
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrArtifactNotFound) != tt.wantNotFound {
				t.Errorf("errors.Is(ErrArtifactNotFound) = %v, want %v (err: %v)", !tt.wantNotFound, tt.wantNotFound, err)
			}
			if !strings.Contains(err.Error(), tt.wantContains) {
				t.Errorf("error %q does not contain %q", err, tt.wantContains)
			}
		})
	}
}

func TestHubFetcher_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewHubFetcher(HubConfig{Endpoint: server.URL, RepoID: "o/r"}, server.Client())
	if _, err := f.Fetch(ctx, "movie_list.json"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestReadBodyForError_Truncates(t *testing.T) {
	t.Parallel()

	body := readBodyForError(strings.NewReader(strings.Repeat("x", 5000)))
	if !strings.HasSuffix(string(body), "(truncated)") {
		t.Errorf("expected truncation marker, got %d bytes", len(body))
	}
}

func TestDirFetcher_Fetch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "similarity.json"), []byte("[[1]]"), 0o600); err != nil {
		t.Fatal(err)
	}
	f := NewDirFetcher(dir)

	rc, err := f.Fetch(context.Background(), "similarity.json")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != "[[1]]" {
		t.Errorf("body = %q", body)
	}

	if _, err := f.Fetch(context.Background(), "missing.json"); !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("expected ErrArtifactNotFound, got %v", err)
	}
	if _, err := f.Fetch(context.Background(), "../etc/passwd"); err == nil {
		t.Error("expected non-local name to be rejected")
	}
}
