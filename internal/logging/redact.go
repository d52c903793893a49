// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package logging

import (
	"net/url"
	"strings"
)

// sensitiveParams lists query parameters whose values never reach the logs.
var sensitiveParams = map[string]bool{
	"api_key":      true,
	"apikey":       true,
	"access_token": true,
	"token":        true,
}

// MaskSecret masks a secret, keeping the first and last 4 characters.
// Short secrets are fully masked.
//
//	MaskSecret("0123456789abcdef0123") // "0123...0123"
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 12 {
		return "***"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

// RedactURL returns rawURL with the values of sensitive query parameters
// replaced by "***". Unparseable input is returned fully masked.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "***"
	}
	if u.RawQuery == "" {
		return rawURL
	}

	query := u.Query()
	changed := false
	for key := range query {
		if sensitiveParams[strings.ToLower(key)] {
			query.Set(key, "***")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	u.RawQuery = query.Encode()
	return u.String()
}
