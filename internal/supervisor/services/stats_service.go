// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// DefaultStatsInterval is used when StatsReporterService gets no interval.
const DefaultStatsInterval = time.Minute

// StatsSource is satisfied by *recommend.Engine.
type StatsSource interface {
	Stats() recommend.Stats
}

// StatsReporterService periodically publishes engine counters: the cache
// size gauge in Prometheus and a structured log line.
type StatsReporterService struct {
	source   StatsSource
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewStatsReporterService creates a reporter for source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsReporterService(source StatsSource, interval time.Duration, logger zerolog.Logger) *StatsReporterService {
	if interval <= 0 {
		interval = DefaultStatsInterval
	}
	return &StatsReporterService{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("service", "engine-stats").Logger(),
		name:     "engine-stats",
	}
}

// Serve implements suture.Service. It reports once on start, then on every
// tick, and once more on shutdown.
func (s *StatsReporterService) Serve(ctx context.Context) error {
	s.report()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.report()
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *StatsReporterService) report() {
	st := s.source.Stats()
	metrics.RecordCacheEntries(st.CacheSize)

	var hitRate float64
	if lookups := st.CacheHits + st.CacheMisses; lookups > 0 {
		hitRate = float64(st.CacheHits) / float64(lookups)
	}

	s.logger.Info().
		Int("movies", st.Movies).
		Int("vocabulary", st.Vocabulary).
		Int64("requests", st.Requests).
		Int64("cache_hits", st.CacheHits).
		Int64("cache_misses", st.CacheMisses).
		Int("cache_size", st.CacheSize).
		Float64("cache_hit_rate", hitRate).
		Msg("engine stats")
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *StatsReporterService) String() string {
	return s.name
}
