// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/config"
	"github.com/sakshighorpade01/Movie-Recommendation-System/internal/logging"
)

// maxBodySize caps how much of a TMDB response is read.
const maxBodySize = 1 << 20

// ErrMalformedResponse is returned when TMDB answers 2xx with a body that is
// not a JSON object. Such responses are not retried.
var ErrMalformedResponse = errors.New("malformed TMDB response")

// StatusError reports a non-2xx TMDB response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("TMDB returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("TMDB returned HTTP %d: %s", e.StatusCode, e.Body)
}

// MetadataClient looks up the poster path of a movie. An empty path with a
// nil error means the movie has no poster.
type MetadataClient interface {
	PosterPath(ctx context.Context, movieID int) (string, error)
}

// Client is a TMDB movie details client with client-side rate limiting and
// a circuit breaker around every request.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	http     *http.Client
	limiter  *rate.Limiter
	breaker  *breaker
}

// NewClient creates a TMDB client. A nil httpClient uses a client without a
// global timeout; callers bound each request through the context.
func NewClient(cfg *config.TMDBConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		http:     httpClient,
		limiter:  rate.NewLimiter(limit, burst),
		breaker:  newBreaker("tmdb-api", cfg.BreakerMaxFailures, cfg.BreakerTimeout),
	}
}

// PosterPath fetches /movie/{id} and returns its poster_path.
//
// Errors are gobreaker.ErrOpenState or ErrTooManyRequests when the circuit
// rejects the call, a *StatusError for non-2xx responses, an error wrapping
// ErrMalformedResponse for unreadable bodies, or a transport error. Request
// URLs in errors have the API key redacted.
func (c *Client) PosterPath(ctx context.Context, movieID int) (string, error) {
	return c.breaker.execute(func() (string, error) {
		return c.fetchPosterPath(ctx, movieID)
	})
}

// BreakerState returns the circuit breaker state as a string.
func (c *Client) BreakerState() string {
	return stateToString(c.breaker.cb.State())
}

func (c *Client) fetchPosterPath(ctx context.Context, movieID int) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.movieURL(movieID), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", redactError(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", redactError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(readBodyForError(resp.Body))}
	}

	var payload struct {
		PosterPath any `json:"poster_path"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// Non-string values (null, numbers) mean no poster.
	path, _ := payload.PosterPath.(string)
	return path, nil
}

func (c *Client) movieURL(movieID int) string {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	return fmt.Sprintf("%s/movie/%d?%s", c.baseURL, movieID, params.Encode())
}

// redactError masks the API key in *url.Error values, which embed the full
// request URL in their message.
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = logging.RedactURL(urlErr.URL)
	}
	return err
}

// readBodyForError reads up to 512 bytes of an error response body.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return nil
	}
	return body
}

var _ MetadataClient = (*Client)(nil)

// isBreakerRejection reports whether err came from an open or saturated circuit.
func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
