// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
)

// Source kinds accepted by NewSource.
const (
	SourceCSV    = "csv"
	SourceDuckDB = "duckdb"
)

var (
	// ErrEmptySource is returned when a source has no header row.
	ErrEmptySource = errors.New("catalog source is empty")

	// ErrMissingColumn is returned when the title or genres column is absent.
	ErrMissingColumn = errors.New("catalog source is missing a required column")

	// ErrUnknownSource is returned by NewSource for an unrecognized kind.
	ErrUnknownSource = errors.New("unknown catalog source")
)

// Source produces the raw movie rows of a catalog, in source order.
type Source interface {
	Load(ctx context.Context) ([]Movie, error)
	String() string
}

// NewSource returns the Source for kind ("csv" or "duckdb").
// table is only used by DuckDB database files.
func NewSource(kind, path, table string) (Source, error) {
	switch strings.ToLower(kind) {
	case "", SourceCSV:
		return &CSVSource{Path: path}, nil
	case SourceDuckDB:
		return &DuckDBSource{Path: path, Table: table}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}

// Load reads src and builds a Catalog. Rows without a title are skipped
// with a warning; any other failure is returned.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	start := time.Now()

	rows, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}

	movies := make([]Movie, 0, len(rows))
	skipped := 0
	for _, m := range rows {
		if strings.TrimSpace(m.Title) == "" {
			skipped++
			continue
		}
		movies = append(movies, m)
	}
	if skipped > 0 {
		logging.Warn().
			Str("source", src.String()).
			Int("skipped", skipped).
			Msg("Skipped catalog rows without a title")
	}

	c, err := New(movies)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	logging.Info().
		Str("source", src.String()).
		Int("movies", c.Len()).
		Int("genres", len(c.genres)).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	return c, nil
}
