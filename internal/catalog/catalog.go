// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog holds the static movie table that every request reads.
//
// A Catalog is built once at startup from a Source (CSV file or DuckDB) and is
// never modified afterwards, so it can be shared by any number of concurrent
// request handlers without locking.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyTitle is returned when a movie without a title is added to a catalog.
var ErrEmptyTitle = errors.New("movie title is empty")

// Catalog is an ordered, read-only list of movies.
type Catalog struct {
	movies      []Movie
	lowerTitles []string
	genres      []string
}

// New builds a catalog from movies, preserving their order. The slice and the
// genre slices are copied so later changes by the caller are not observed.
func New(movies []Movie) (*Catalog, error) {
	c := &Catalog{
		movies:      make([]Movie, len(movies)),
		lowerTitles: make([]string, len(movies)),
	}

	words := make(map[string]struct{})
	for i, m := range movies {
		if strings.TrimSpace(m.Title) == "" {
			return nil, fmt.Errorf("movie %d: %w", i, ErrEmptyTitle)
		}
		m.Genres = append([]string(nil), m.Genres...)
		c.movies[i] = m
		c.lowerTitles[i] = strings.ToLower(m.Title)
		for _, g := range m.Genres {
			for _, w := range strings.Fields(g) {
				words[w] = struct{}{}
			}
		}
	}

	c.genres = make([]string, 0, len(words))
	for w := range words {
		c.genres = append(c.genres, w)
	}
	sort.Strings(c.genres)

	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Movie returns the movie at position i.
func (c *Catalog) Movie(i int) (Movie, bool) {
	if i < 0 || i >= len(c.movies) {
		return Movie{}, false
	}
	return c.movies[i], true
}

// Movies returns a copy of the movie list in catalog order.
func (c *Catalog) Movies() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Documents returns the genre string of every movie in catalog order.
func (c *Catalog) Documents() []string {
	docs := make([]string, len(c.movies))
	for i, m := range c.movies {
		docs[i] = m.GenreString()
	}
	return docs
}

// Genres returns the distinct whitespace-separated words of all genre tags,
// sorted byte-wise. These are the options offered by the genre filter.
func (c *Catalog) Genres() []string {
	return append([]string(nil), c.genres...)
}

// FindTitle returns the index of the first movie, in catalog order, whose
// title contains fragment ignoring case.
func (c *Catalog) FindTitle(fragment string) (int, bool) {
	needle := strings.ToLower(fragment)
	for i, t := range c.lowerTitles {
		if strings.Contains(t, needle) {
			return i, true
		}
	}
	return -1, false
}

// MatchTitles returns the indexes of every movie whose title contains
// fragment ignoring case, in catalog order. An empty fragment matches all.
func (c *Catalog) MatchTitles(fragment string) []int {
	needle := strings.ToLower(fragment)
	idx := make([]int, 0)
	for i, t := range c.lowerTitles {
		if strings.Contains(t, needle) {
			idx = append(idx, i)
		}
	}
	return idx
}
