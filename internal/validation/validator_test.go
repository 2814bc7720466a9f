// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type testRequest struct {
	Site   string `query:"site" validate:"required,max=10"`
	Limit  int    `query:"limit" validate:"min=1,max=1000"`
	Sort   string `json:"sort" validate:"omitempty,oneof=asc desc"`
	Hidden int    `query:"-" validate:"gte=0"`
	Plain  int    `validate:"lte=5"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input testRequest
	}{
		{"typical", testRequest{Site: "Site A", Limit: 50, Sort: "asc"}},
		{"minimum values", testRequest{Site: "A", Limit: 1}},
		{"maximum values", testRequest{Site: "0123456789", Limit: 1000, Sort: "desc", Plain: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     testRequest
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing required site",
			input:     testRequest{Limit: 10},
			wantField: "site",
			wantTag:   "required",
			wantMsg:   "site is required",
		},
		{
			name:      "site too long",
			input:     testRequest{Site: "01234567890", Limit: 10},
			wantField: "site",
			wantTag:   "max",
			wantMsg:   "site must be at most 10 characters",
		},
		{
			name:      "limit too low",
			input:     testRequest{Site: "A"},
			wantField: "limit",
			wantTag:   "min",
			wantMsg:   "limit must be at least 1",
		},
		{
			name:      "limit too high",
			input:     testRequest{Site: "A", Limit: 2000},
			wantField: "limit",
			wantTag:   "max",
			wantMsg:   "limit must be at most 1000",
		},
		{
			name:      "json tag name",
			input:     testRequest{Site: "A", Limit: 1, Sort: "up"},
			wantField: "sort",
			wantTag:   "oneof",
			wantMsg:   "sort must be one of: asc desc",
		},
		{
			name:      "struct field name fallback",
			input:     testRequest{Site: "A", Limit: 1, Plain: 6},
			wantField: "Plain",
			wantTag:   "lte",
			wantMsg:   "Plain must be less than or equal to 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %v", errs)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("got field=%s tag=%s, want field=%s tag=%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if err.Detail() != tt.wantMsg {
				t.Errorf("Detail() = %q, want %q", err.Detail(), tt.wantMsg)
			}
		})
	}
}

func TestDetail_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&testRequest{Limit: 0})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(err.Errors()))
	}

	detail := err.Detail()
	if !strings.Contains(detail, "site: site is required") || !strings.Contains(detail, "limit: limit must be at least 1") {
		t.Errorf("Detail() = %q", detail)
	}
	if err.Error() != "site is required; limit must be at least 1" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestValidateVar_UsesGivenField(t *testing.T) {
	err := ValidateVar("page_size", 1500, "max=1000")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Errors()[0].Field(); got != "page_size" {
		t.Errorf("Field() = %q, want page_size", got)
	}
	if err.Detail() != "page_size must be at most 1000" {
		t.Errorf("Detail() = %q", err.Detail())
	}

	if err := ValidateVar("page_size", 10, "max=1000"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEmptyRequestValidationError(t *testing.T) {
	ve := NewRequestValidationError()
	if ve.Error() != "validation failed" || ve.Detail() != "Validation failed" {
		t.Errorf("unexpected messages: %q / %q", ve.Error(), ve.Detail())
	}
}
