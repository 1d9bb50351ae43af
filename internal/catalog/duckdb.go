// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// DuckDBSource reads movies through DuckDB.
//
// A path ending in .duckdb or .db is opened read-only and Table is queried.
// Any other path is scanned with read_csv_auto in an in-memory database,
// which also covers compressed or oddly-delimited CSV exports.
type DuckDBSource struct {
	Path  string
	Table string
}

// Load implements Source. Columns are matched by name, ignoring case:
// "title" and "genres" are required, "movieId" (or "id") is optional.
func (s *DuckDBSource) Load(ctx context.Context) ([]Movie, error) {
	from, order, dsn, err := s.relation()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close() //nolint:errcheck // read-only connection

	columns, err := relationColumns(ctx, db, from)
	if err != nil {
		return nil, err
	}
	query, err := selectMovies(from, order, columns)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close() //nolint:errcheck // closed after iteration

	var movies []Movie
	for rows.Next() {
		var id, title, genres sql.NullString
		if err := rows.Scan(&id, &title, &genres); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, Movie{
			ID:     strings.TrimSpace(id.String),
			Title:  strings.TrimSpace(title.String),
			Genres: splitGenres(genres.String),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return movies, nil
}

// relation returns the FROM expression, its ORDER BY clause and the DSN for
// the configured path.
func (s *DuckDBSource) relation() (from, order, dsn string, err error) {
	if s.Path == "" {
		return "", "", "", fmt.Errorf("duckdb source: empty path")
	}

	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".duckdb", ".db":
		table := s.Table
		if table == "" {
			table = "movies"
		}
		if !tableNamePattern.MatchString(table) {
			return "", "", "", fmt.Errorf("duckdb source: invalid table name %q", table)
		}
		return table, " ORDER BY rowid", s.Path + "?access_mode=read_only", nil
	default:
		literal := "'" + strings.ReplaceAll(s.Path, "'", "''") + "'"
		return "read_csv_auto(" + literal + ", header = true)", "", "", nil
	}
}

// relationColumns lists the column names of from without reading rows.
func relationColumns(ctx context.Context, db *sql.DB, from string) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+from+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("describe movies: %w", err)
	}
	defer rows.Close() //nolint:errcheck // no rows are read

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("describe movies: %w", err)
	}
	return columns, nil
}

// selectMovies builds the id, title, genres projection over from. A missing
// id column selects NULL.
func selectMovies(from, order string, columns []string) (string, error) {
	var titleCol, genresCol, idCol string
	for _, c := range columns {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))) {
		case "title":
			titleCol = c
		case "genres":
			genresCol = c
		case "movieid", "id":
			if idCol == "" {
				idCol = c
			}
		}
	}
	if titleCol == "" || genresCol == "" {
		return "", fmt.Errorf("%w: need title and genres, have %v", ErrMissingColumn, columns)
	}

	id := "NULL"
	if idCol != "" {
		id = "CAST(" + quoteIdent(idCol) + " AS VARCHAR)"
	}
	return "SELECT " + id +
		", CAST(" + quoteIdent(titleCol) + " AS VARCHAR)" +
		", CAST(" + quoteIdent(genresCol) + " AS VARCHAR)" +
		" FROM " + from + order, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (s *DuckDBSource) String() string {
	return "duckdb:" + s.Path
}
