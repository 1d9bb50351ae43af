// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import "strings"

// Movie is a single catalog entry. Movies are immutable once a Catalog is built.
type Movie struct {
	// ID is the source identifier (MovieLens movieId). Optional.
	ID string `json:"id,omitempty"`

	// Title is the display title and lookup key. Never empty.
	Title string `json:"title"`

	// Genres holds the genre tags in source order, e.g. ["Action", "Sci-Fi"].
	Genres []string `json:"genres"`
}

// GenreString joins the genre tags with single spaces. This is the document
// the vectorizer tokenizes and the string shown next to the title.
func (m Movie) GenreString() string {
	return strings.Join(m.Genres, " ")
}

// HasGenre reports whether any single genre tag contains fragment, ignoring
// case. A fragment spanning two tags does not match. An empty fragment
// matches every movie.
func (m Movie) HasGenre(fragment string) bool {
	if fragment == "" {
		return true
	}
	needle := strings.ToLower(fragment)
	for _, g := range m.Genres {
		if strings.Contains(strings.ToLower(g), needle) {
			return true
		}
	}
	return false
}

// splitGenres parses a MovieLens genre field ("Action|Sci-Fi").
func splitGenres(field string) []string {
	parts := strings.Split(field, "|")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}
