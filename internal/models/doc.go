// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

// Package models defines the JSON payloads exchanged over the HTTP API:
// the response envelope shared by every endpoint and the data types the
// handlers place inside it.
package models
