// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/cinematch/internal/middleware"
	"github.com/tomtom215/cinematch/internal/models"
)

func newTestServer(t *testing.T, cfg *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = DefaultChiMiddlewareConfig()
		cfg.RateLimitDisabled = true
	}
	return NewRouter(newTestHandler(t, testMovies()), cfg).SetupChi()
}

func TestSetupChi_Routes(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	tests := []struct {
		method      string
		path        string
		wantStatus  int
		contentType string
	}{
		{http.MethodGet, "/", http.StatusOK, "text/html; charset=utf-8"},
		{http.MethodPost, "/", http.StatusOK, "text/html; charset=utf-8"},
		{http.MethodGet, "/api/v1/search?movie=toy", http.StatusOK, "application/json"},
		{http.MethodGet, "/api/v1/recommendations?title=toy", http.StatusOK, "application/json"},
		{http.MethodGet, "/api/v1/genres", http.StatusOK, "application/json"},
		{http.MethodGet, "/api/v1/health/live", http.StatusOK, "application/json"},
		{http.MethodGet, "/api/v1/health/ready", http.StatusOK, "application/json"},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound, "application/json"},
		{http.MethodDelete, "/", http.StatusMethodNotAllowed, "application/json"},
		{http.MethodPost, "/api/v1/genres", http.StatusMethodNotAllowed, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if rec.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("missing X-Request-ID header")
			}
		})
	}
}

func TestSetupChi_Metrics(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	// generate one labeled sample first
	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"api_requests_total", `endpoint="/api/v1/genres"`} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestSetupChi_RequestIDInMetadata(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	env := decode[models.GenresResponse](t, rec)
	if env.Metadata.RequestID != "trace-42" {
		t.Errorf("Metadata.RequestID = %q, want trace-42", env.Metadata.RequestID)
	}
}

func TestSetupChi_SecurityHeaders(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	t.Run("page carries CSP nonce", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		csp := rec.Header().Get("Content-Security-Policy")
		m := regexp.MustCompile(`'nonce-([^']+)'`).FindStringSubmatch(csp)
		if m == nil || m[1] == "" {
			t.Fatalf("CSP %q has no nonce", csp)
		}
		if !strings.Contains(rec.Body.String(), `<style nonce="`+m[1]+`">`) {
			t.Error("page style element does not carry the CSP nonce")
		}
		if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
			t.Errorf("X-Frame-Options = %q, want DENY", got)
		}
	})

	t.Run("api headers", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
			t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
		}
		if got := rec.Header().Get("Strict-Transport-Security"); got == "" {
			t.Error("missing Strict-Transport-Security behind https proxy")
		}
		if got := rec.Header().Get("Content-Security-Policy"); got != "" {
			t.Errorf("api response has CSP %q", got)
		}
	})
}

func TestSetupChi_Compression(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader() error = %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !strings.Contains(string(body), `"Comedy"`) {
		t.Errorf("decompressed body = %s", body)
	}
}

func TestSetupChi_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	srv := newTestServer(t, cfg)

	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil))
		codes[i] = rec.Code
		if i == 2 {
			env := decode[any](t, rec)
			if env.Error == nil || env.Error.Code != ErrCodeRateLimit {
				t.Errorf("Error = %+v, want %s", env.Error, ErrCodeRateLimit)
			}
		}
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d status = %d, want %d", i, codes[i], want[i])
		}
	}

	// health checks have their own budget
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}
