// Movie Recommendation System - Similar Movie Lookup Service
// Copyright 2026 sakshighorpade01
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sakshighorpade01/Movie-Recommendation-System

package validation

import (
	"strings"
	"sync"
	"testing"
)

type titleRequest struct {
	Title string `query:"title" validate:"required,max=20,nocontrol"`
}

type multiRequest struct {
	Title string `json:"title" validate:"required"`
	Limit int    `json:"limit" validate:"min=1,max=50"`
	Kind  string `validate:"omitempty,oneof=movie show"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	results := make(chan interface{}, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- GetValidator()
		}()
	}
	wg.Wait()
	close(results)

	first := GetValidator()
	for v := range results {
		if v != first {
			t.Fatal("expected a single validator instance")
		}
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       interface{}
		wantErr   bool
		wantField string
		wantMsg   string
	}{
		{"valid", &titleRequest{Title: "Avatar"}, false, "", ""},
		{"unicode title", &titleRequest{Title: "Amélie"}, false, "", ""},
		{"missing title", &titleRequest{}, true, "title", "title is required"},
		{"too long", &titleRequest{Title: strings.Repeat("x", 21)}, true, "title", "title must be at most 20 characters"},
		{"control character", &titleRequest{Title: "Ava\x00tar"}, true, "title", "title must not contain control characters"},
		{"json tag name", &multiRequest{Limit: 5}, true, "title", "title is required"},
		{"numeric min", &multiRequest{Title: "x", Limit: 0}, true, "limit", "limit must be at least 1"},
		{"oneof", &multiRequest{Title: "x", Limit: 1, Kind: "book"}, true, "Kind", "Kind must be one of: movie show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(tt.req)
			if !tt.wantErr {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			first := verr.Errors()[0]
			if first.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", first.Field(), tt.wantField)
			}
			if first.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", first.Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&titleRequest{}).ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Message != "title is required" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "title" || apiErr.Details["tag"] != "required" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()
		verr := ValidateStruct(&multiRequest{})
		apiErr := verr.ToAPIError()
		if !strings.Contains(apiErr.Message, "title: title is required") ||
			!strings.Contains(apiErr.Message, "limit: limit must be at least 1") {
			t.Errorf("Message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Errorf("Details[fields] = %v", apiErr.Details["fields"])
		}
		if verr.Error() != "title is required; limit must be at least 1" {
			t.Errorf("Error() = %q", verr.Error())
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}
