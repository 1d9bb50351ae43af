// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// ErrMovieNotFound is returned when a catalog index is out of range.
var ErrMovieNotFound = errors.New("movie not found")

// ScoredMovie is a recommended movie and its cosine similarity to the
// query movie.
type ScoredMovie struct {
	// Index is the movie's position in the catalog.
	Index int `json:"-"`

	// Movie is the recommended catalog entry.
	Movie catalog.Movie `json:"movie"`

	// Score is the cosine similarity, in [0, 1].
	Score float64 `json:"score"`
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Movies      int   `json:"movies"`
	Vocabulary  int   `json:"vocabulary"`
	Requests    int64 `json:"requests"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	CacheSize   int   `json:"cache_size"`
}
