// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVSource reads a MovieLens-style movies.csv (movieId,title,genres).
// Columns are located by header name; genres are "|"-separated.
type CSVSource struct {
	Path string
}

// Load implements Source.
func (s *CSVSource) Load(ctx context.Context) ([]Movie, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return ReadCSV(ctx, f)
}

func (s *CSVSource) String() string {
	return "csv:" + s.Path
}

// ReadCSV parses movie rows from r. The first record must be a header with
// "title" and "genres" columns; "movieId" (or "id") is optional.
func ReadCSV(ctx context.Context, r io.Reader) ([]Movie, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptySource
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	titleCol, genresCol, idCol := -1, -1, -1
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		switch name {
		case "title":
			titleCol = i
		case "genres":
			genresCol = i
		case "movieid", "id":
			idCol = i
		}
	}
	if titleCol < 0 {
		return nil, fmt.Errorf("%w: title", ErrMissingColumn)
	}
	if genresCol < 0 {
		return nil, fmt.Errorf("%w: genres", ErrMissingColumn)
	}

	var movies []Movie
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		m := Movie{
			Title:  strings.TrimSpace(rec[titleCol]),
			Genres: splitGenres(rec[genresCol]),
		}
		if idCol >= 0 {
			m.ID = strings.TrimSpace(rec[idCol])
		}
		movies = append(movies, m)
	}

	return movies, nil
}
