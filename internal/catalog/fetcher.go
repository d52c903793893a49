// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// maxErrorBodySize bounds how much of an error response is kept.
const maxErrorBodySize = 1024

// Fetcher opens a named artifact. Callers close the returned reader.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)
}

// HubConfig identifies a Hugging Face Hub repository.
type HubConfig struct {
	// Endpoint defaults to https://huggingface.co.
	Endpoint string
	// RepoID is "owner/name".
	RepoID string
	// Revision is a branch, tag or commit. Defaults to main.
	Revision string
	// Token is sent as a bearer token when set.
	Token string
}

// HubFetcher downloads artifacts from a Hugging Face Hub repository using
// the resolve endpoint: {endpoint}/{repo_id}/resolve/{revision}/{filename}.
type HubFetcher struct {
	client   *http.Client
	endpoint string
	repoID   string
	revision string
	token    string
}

// NewHubFetcher creates a Hub fetcher. A nil client uses http.DefaultClient.
func NewHubFetcher(cfg HubConfig, client *http.Client) *HubFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://huggingface.co"
	}
	if cfg.Revision == "" {
		cfg.Revision = "main"
	}
	return &HubFetcher{
		client:   client,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		repoID:   strings.Trim(cfg.RepoID, "/"),
		revision: cfg.Revision,
		token:    cfg.Token,
	}
}

// fileURL builds the resolve URL for name.
func (f *HubFetcher) fileURL(name string) string {
	segments := strings.Split(f.repoID, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("%s/%s/resolve/%s/%s",
		f.endpoint, strings.Join(segments, "/"), url.PathEscape(f.revision), url.PathEscape(name))
}

// Fetch downloads name. A 404 response wraps ErrArtifactNotFound.
func (f *HubFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	reqURL := f.fileURL(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}

	if resp.StatusCode == http.StatusOK {
		return resp.Body, nil
	}

	body := readBodyForError(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s in %s@%s", ErrArtifactNotFound, name, f.repoID, f.revision)
	}
	return nil, fmt.Errorf("fetch %s: HTTP %d: %s", name, resp.StatusCode, string(body))
}

// readBodyForError reads a bounded amount of an error response body.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// DirFetcher reads artifacts from a local directory.
type DirFetcher struct {
	dir string
}

// NewDirFetcher creates a fetcher rooted at dir.
func NewDirFetcher(dir string) *DirFetcher {
	return &DirFetcher{dir: dir}
}

// Fetch opens name inside the directory. Names must be local paths; a missing
// file wraps ErrArtifactNotFound.
func (f *DirFetcher) Fetch(_ context.Context, name string) (io.ReadCloser, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("artifact name %q must be a local path", name)
	}

	file, err := os.Open(filepath.Join(f.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s in %s", ErrArtifactNotFound, name, f.dir)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return file, nil
}
