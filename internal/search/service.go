// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package search answers a page request: it resolves the base movie from a
// title fragment, asks the engine for similar movies, and builds the
// filtered, sorted and capped display list.
//
// The base movie is the first title match in catalog order while the
// display list holds every title match, so the two can disagree when a
// fragment matches several movies.
package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Default caps.
const (
	DefaultDisplayLimit   = 20
	DefaultRecommendLimit = 6
)

// Options configures a Service.
type Options struct {
	// DisplayLimit caps the display list. Zero selects DefaultDisplayLimit.
	DisplayLimit int

	// RecommendLimit caps the recommendations. Zero selects DefaultRecommendLimit.
	RecommendLimit int
}

// Result is everything a page needs to render.
type Result struct {
	// Movies is the filtered, sorted and capped display list.
	Movies []catalog.Movie `json:"movies"`

	// Recommendations is empty unless a base movie resolved.
	Recommendations []recommend.ScoredMovie `json:"recommendations"`

	// Genres is the full filter vocabulary.
	Genres []string `json:"genres"`

	// BaseMovie is the resolved base movie title, or "" when none.
	BaseMovie string `json:"base_movie,omitempty"`

	// Total is the display list size before the cap.
	Total int `json:"total"`
}

// Service is the immutable request context: the catalog and the engine
// built from it. Safe for concurrent use.
type Service struct {
	catalog        *catalog.Catalog
	engine         *recommend.Engine
	displayLimit   int
	recommendLimit int
}

// NewService wires an engine to its catalog.
func NewService(engine *recommend.Engine, opts Options) (*Service, error) {
	if engine == nil {
		return nil, fmt.Errorf("nil engine")
	}
	if opts.DisplayLimit < 0 || opts.RecommendLimit < 0 {
		return nil, fmt.Errorf("limits must be non-negative: display=%d recommend=%d",
			opts.DisplayLimit, opts.RecommendLimit)
	}
	if opts.DisplayLimit == 0 {
		opts.DisplayLimit = DefaultDisplayLimit
	}
	if opts.RecommendLimit == 0 {
		opts.RecommendLimit = DefaultRecommendLimit
	}
	return &Service{
		catalog:        engine.Catalog(),
		engine:         engine,
		displayLimit:   opts.DisplayLimit,
		recommendLimit: opts.RecommendLimit,
	}, nil
}

// Search runs one request. A fragment that matches nothing is not an error;
// it yields an empty display list and no recommendations.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) Search(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	logger := logging.Ctx(ctx)

	res := &Result{
		Movies:          []catalog.Movie{},
		Recommendations: []recommend.ScoredMovie{},
		Genres:          s.catalog.Genres(),
	}

	if req.Movie != "" {
		if idx, ok := s.catalog.FindTitle(req.Movie); ok {
			recs, err := s.engine.Similar(idx, s.recommendLimit)
			if err != nil {
				return nil, fmt.Errorf("recommend for %q: %w", req.Movie, err)
			}
			base, _ := s.catalog.Movie(idx)
			res.BaseMovie = base.Title
			res.Recommendations = recs
		}
	}

	res.Movies, res.Total = s.display(req)

	metrics.RecordSearch(res.BaseMovie != "")
	logEvent(logger, req, res, time.Since(start))

	return res, nil
}

// Recommend resolves title and returns up to k similar movies. The bool is
// false when no title matched.
func (s *Service) Recommend(ctx context.Context, title string, k int) (catalog.Movie, []recommend.ScoredMovie, bool, error) {
	idx, ok := s.catalog.FindTitle(title)
	if !ok {
		logging.Ctx(ctx).Debug().Str("title", title).Msg("no title match")
		return catalog.Movie{}, nil, false, nil
	}
	recs, err := s.engine.Similar(idx, k)
	if err != nil {
		return catalog.Movie{}, nil, false, fmt.Errorf("recommend for %q: %w", title, err)
	}
	base, _ := s.catalog.Movie(idx)
	return base, recs, true, nil
}

// Similarity resolves both title fragments and returns the cosine
// similarity of their genre vectors. The bool is false when either
// fragment matched nothing.
func (s *Service) Similarity(ctx context.Context, titleA, titleB string) (a, b catalog.Movie, score float64, ok bool, err error) {
	i, okA := s.catalog.FindTitle(titleA)
	j, okB := s.catalog.FindTitle(titleB)
	if !okA || !okB {
		logging.Ctx(ctx).Debug().
			Str("title_a", titleA).
			Str("title_b", titleB).
			Bool("matched_a", okA).
			Bool("matched_b", okB).
			Msg("no title match")
		return a, b, 0, false, nil
	}
	score, err = s.engine.Score(i, j)
	if err != nil {
		return a, b, 0, false, fmt.Errorf("score %q against %q: %w", titleA, titleB, err)
	}
	a, _ = s.catalog.Movie(i)
	b, _ = s.catalog.Movie(j)
	return a, b, score, true, nil
}

// Genres returns the filter vocabulary.
func (s *Service) Genres() []string {
	return s.catalog.Genres()
}

// RecommendLimit returns the default number of recommendations.
func (s *Service) RecommendLimit() int {
	return s.recommendLimit
}

// CatalogSize returns the number of movies served.
func (s *Service) CatalogSize() int {
	return s.catalog.Len()
}

// display filters by title and genre, sorts, and caps.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) display(req Request) ([]catalog.Movie, int) {
	idx := s.catalog.MatchTitles(req.Movie)

	movies := make([]catalog.Movie, 0, len(idx))
	for _, i := range idx {
		m, _ := s.catalog.Movie(i)
		if m.HasGenre(req.Genre) {
			movies = append(movies, m)
		}
	}

	switch req.Sort {
	case SortAZ:
		sort.SliceStable(movies, func(a, b int) bool { return movies[a].Title < movies[b].Title })
	case SortZA:
		sort.SliceStable(movies, func(a, b int) bool { return movies[a].Title > movies[b].Title })
	}

	total := len(movies)
	if total > s.displayLimit {
		movies = movies[:s.displayLimit]
	}
	return movies, total
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func logEvent(logger *zerolog.Logger, req Request, res *Result, d time.Duration) {
	logger.Debug().
		Str("movie", req.Movie).
		Str("genre", req.Genre).
		Str("sort", string(req.Sort)).
		Str("base_movie", res.BaseMovie).
		Int("matches", res.Total).
		Int("recommendations", len(res.Recommendations)).
		Dur("duration", d).
		Msg("search")
}
