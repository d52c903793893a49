// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

// Package logging provides the zerolog-based structured logger used across the
// service.
//
// A single global logger is configured once at startup from the logging
// section of the configuration. Packages either log through the package-level
// helpers or derive a component logger:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("movies", n).Msg("Catalog loaded")
//
//	log := logging.WithComponent("poster")
//	log.Warn().Int("movie_id", id).Msg("TMDB unreachable")
//
// HTTP handlers log through Ctx, which attaches the request and correlation
// IDs placed in the context by the request ID middleware.
//
// The slog adapter lets libraries that expect a *slog.Logger (the suture
// supervisor hooks) write through the same zerolog output.
//
// URLs that carry the TMDB API key must go through RedactURL before they are
// logged.
package logging
