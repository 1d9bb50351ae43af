// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
)

type fakeStats struct {
	calls atomic.Int32
	stats recommend.Stats
}

func (f *fakeStats) Stats() recommend.Stats {
	f.calls.Add(1)
	return f.stats
}

func TestNewStatsReporterService_DefaultInterval(t *testing.T) {
	t.Parallel()

	svc := NewStatsReporterService(&fakeStats{}, 0, zerolog.Nop())
	if svc.interval != DefaultStatsInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultStatsInterval)
	}
	if svc.String() != "engine-stats" {
		t.Errorf("String() = %q, want engine-stats", svc.String())
	}
}

func TestStatsReporterService_Serve(t *testing.T) {
	var buf bytes.Buffer
	src := &fakeStats{stats: recommend.Stats{
		Movies:      8,
		Vocabulary:  12,
		Requests:    10,
		CacheHits:   3,
		CacheMisses: 1,
		CacheSize:   4,
	}}
	svc := NewStatsReporterService(src, 10*time.Millisecond, logging.NewTestLogger(&buf))

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}

	// start, at least one tick, and shutdown
	if got := src.calls.Load(); got < 3 {
		t.Errorf("Stats() calls = %d, want >= 3", got)
	}
	if got := testutil.ToFloat64(metrics.RecommendationCacheEntries); got != 4 {
		t.Errorf("cache entries gauge = %v, want 4", got)
	}

	first, _, _ := strings.Cut(buf.String(), "\n")
	var line struct {
		Message string  `json:"message"`
		Service string  `json:"service"`
		Movies  int     `json:"movies"`
		HitRate float64 `json:"cache_hit_rate"`
	}
	if err := json.Unmarshal([]byte(first), &line); err != nil {
		t.Fatalf("decode log line %q: %v", first, err)
	}
	if line.Message != "engine stats" || line.Service != "engine-stats" || line.Movies != 8 {
		t.Errorf("log line = %+v", line)
	}
	if line.HitRate != 0.75 {
		t.Errorf("cache_hit_rate = %v, want 0.75", line.HitRate)
	}
}

func TestStatsReporterService_NoLookups(t *testing.T) {
	var buf bytes.Buffer
	svc := NewStatsReporterService(&fakeStats{}, time.Hour, logging.NewTestLogger(&buf))
	svc.report()

	if !strings.Contains(buf.String(), `"cache_hit_rate":0`) {
		t.Errorf("log = %s, want zero hit rate", buf.String())
	}
}
