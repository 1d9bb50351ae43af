// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Parallel()

	sec := &config.SecurityConfig{
		RateLimitReqs:     7,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
		CORSOrigins:       []string{"https://movies.example"},
	}
	cfg := ChiMiddlewareConfigFromSecurity(sec)

	if cfg.RateLimitRequests != 7 || cfg.RateLimitWindow != 30*time.Second || !cfg.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitDisabled)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://movies.example" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}

	sec.CORSOrigins[0] = "changed"
	if cfg.CORSAllowedOrigins[0] != "https://movies.example" {
		t.Error("config aliases the security origins slice")
	}

	if def := ChiMiddlewareConfigFromSecurity(nil); def.RateLimitRequests != 100 {
		t.Errorf("nil security RateLimitRequests = %d, want 100", def.RateLimitRequests)
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://movies.example"}
	handler := NewChiMiddleware(cfg).CORS()(okHandler())

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{name: "allowed origin", origin: "https://movies.example", want: "https://movies.example"},
		{name: "other origin", origin: "https://evil.example", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	handler := NewChiMiddleware(cfg).RateLimit("/test")(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}
}

func TestRateLimit_RecordsHits(t *testing.T) {
	t.Parallel()

	const endpoint = "/rate-limit-test"
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitWindow = time.Minute
	handler := NewChiMiddleware(cfg).RateLimit(endpoint)(okHandler())

	counter := metrics.APIRateLimitHits.WithLabelValues(endpoint)
	before := testutil.ToFloat64(counter)

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("rate limit hits = %v, want 2", got)
	}
}

func TestRateLimit_KeyFunc(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitKeyFunc = func(r *http.Request) (string, error) {
		return r.Header.Get("X-Client"), nil
	}
	handler := NewChiMiddleware(cfg).RateLimit("/keyed")(okHandler())

	for _, client := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Client", client)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("client %s status = %d, want 200", client, rec.Code)
		}
	}
}
