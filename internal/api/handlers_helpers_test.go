// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
		{"Amélie (2001)", "Amélie (2001)"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`{"a":1}`))
	if a != generateETag([]byte(`{"a":1}`)) {
		t.Error("ETag is not deterministic")
	}
	if a == generateETag([]byte(`{"a":2}`)) {
		t.Error("different payloads share an ETag")
	}
	if !strings.HasPrefix(a, `"`) || !strings.HasSuffix(a, `"`) {
		t.Errorf("ETag %s is not quoted", a)
	}
}

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  int
	}{
		{"", 6},
		{"k=", 6},
		{"k=3", 3},
		{"k=%203%20", 3},
		{"k=abc", invalidIntParam},
		{"k=2.5", invalidIntParam},
		{"k=-4", -4},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
		if got := getIntParam(req, "k", 6); got != tt.want {
			t.Errorf("getIntParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	if apiErr := validateRequest(&RecommendationsRequest{Title: "toy", K: 6}); apiErr != nil {
		t.Errorf("valid request error = %+v", apiErr)
	}

	apiErr := validateRequest(&RecommendationsRequest{Title: "", K: 6})
	if apiErr == nil {
		t.Fatal("missing title accepted")
	}
	if apiErr.Code != ErrCodeValidation {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrCodeValidation)
	}
	if apiErr.Details["field"] != "title" {
		t.Errorf("Details[field] = %v, want title", apiErr.Details["field"])
	}
}

func TestRespondError_LogsWrappedError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respondError(rec, http.StatusInternalServerError, ErrCodeInternal, "boom", errors.New("disk\nfull"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	env := decode[any](t, rec)
	if env.Error == nil || env.Error.Message != "boom" {
		t.Errorf("Error = %+v", env.Error)
	}
}
