// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Engine ranks catalog movies by genre similarity.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
	model   *Model

	cache *cache.LRU[cacheKey, []ScoredMovie]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
}

type cacheKey struct {
	index int
	topN  int
}

// NewEngine vectorizes every movie in cat and returns a ready engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("nil catalog")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start := time.Now()
	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
		model:   Fit(cat.Documents()),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.New[cacheKey, []ScoredMovie](cfg.Cache.Size, cfg.Cache.TTL)
	}

	metrics.RecordCatalogLoad(e.model.Len(), len(e.model.vocabulary), time.Since(start))
	e.logger.Info().
		Int("movies", e.model.Len()).
		Int("vocabulary", len(e.model.vocabulary)).
		Dur("duration", time.Since(start)).
		Msg("genre vectors built")
	e.logger.Debug().Strs("terms", e.model.Vocabulary()).Msg("genre vocabulary")

	return e, nil
}

// Similar returns up to topN movies most similar to the movie at index,
// highest score first, ties in catalog order. The movie itself is never
// included. topN <= 0 selects the configured default.
func (e *Engine) Similar(index, topN int) ([]ScoredMovie, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if index < 0 || index >= e.model.Len() {
		return nil, fmt.Errorf("%w: index %d", ErrMovieNotFound, index)
	}
	topN = e.clampTopN(topN)

	key := cacheKey{index: index, topN: topN}
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			e.cacheHits.Add(1)
			metrics.RecordRecommendation(time.Since(start), true)
			return append([]ScoredMovie(nil), cached...), nil
		}
		e.cacheMisses.Add(1)
	}

	results := e.rank(index, topN)

	if e.cache != nil {
		e.cache.Add(key, results)
	}
	metrics.RecordRecommendation(time.Since(start), false)

	e.logger.Debug().
		Int("index", index).
		Int("top_n", topN).
		Int("results", len(results)).
		Dur("duration", time.Since(start)).
		Msg("ranked similar movies")

	return append([]ScoredMovie(nil), results...), nil
}

// Score returns the cosine similarity of the movies at i and j.
func (e *Engine) Score(i, j int) (float64, error) {
	n := e.model.Len()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrMovieNotFound
	}
	return clamp01(e.model.Vector(i).Dot(e.model.Vector(j))), nil
}

// rank scores every movie against index and keeps the best topN.
func (e *Engine) rank(index, topN int) []ScoredMovie {
	query := e.model.Vector(index)
	n := e.model.Len()

	scored := make([]ScoredMovie, 0, n)
	for i := 0; i < n; i++ {
		if i == index {
			continue
		}
		var score float64
		if !query.IsZero() {
			score = clamp01(query.Dot(e.model.Vector(i)))
		}
		scored = append(scored, ScoredMovie{Index: i, Score: score})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	for k := range scored {
		scored[k].Movie, _ = e.catalog.Movie(scored[k].Index)
	}
	return scored
}

func (e *Engine) clampTopN(topN int) int {
	if topN <= 0 {
		return e.config.DefaultTopN
	}
	if topN > e.config.MaxTopN {
		return e.config.MaxTopN
	}
	return topN
}

// clamp01 guards against floating-point drift outside [0, 1].
func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// Catalog returns the catalog the engine was built from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Movies:      e.model.Len(),
		Vocabulary:  len(e.model.vocabulary),
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
	}
	if e.cache != nil {
		s.CacheSize = e.cache.Len()
	}
	return s
}
