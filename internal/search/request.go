// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package search

import "strings"

// SortOrder selects how the display list is ordered.
type SortOrder string

const (
	// SortNone keeps catalog order.
	SortNone SortOrder = ""
	// SortAZ orders titles ascending.
	SortAZ SortOrder = "az"
	// SortZA orders titles descending.
	SortZA SortOrder = "za"
)

// ParseSortOrder maps a raw sort value to a SortOrder. Only the exact
// directives "az" and "za" sort; anything else, including "AZ" or " za ",
// is SortNone.
func ParseSortOrder(raw string) SortOrder {
	switch SortOrder(raw) {
	case SortAZ:
		return SortAZ
	case SortZA:
		return SortZA
	default:
		return SortNone
	}
}

// Request is a validated search. The zero value lists the whole catalog in
// catalog order with no recommendations.
type Request struct {
	// Movie is a title fragment. Empty means no title filter and no
	// base movie.
	Movie string `json:"movie"`

	// Genre is a genre fragment. Empty means no genre filter.
	Genre string `json:"genre"`

	// Sort orders the display list.
	Sort SortOrder `json:"sort"`
}

// ParseRequest builds a Request from raw form values, trimming whitespace.
func ParseRequest(movie, genre, sort string) Request {
	return Request{
		Movie: strings.TrimSpace(movie),
		Genre: strings.TrimSpace(genre),
		Sort:  ParseSortOrder(sort),
	}
}
