// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

// SearchRequest holds the /api/v1/search query parameters. Sort is not
// validated: unknown values mean catalog order, as on the HTML page.
type SearchRequest struct {
	Movie string `query:"movie" validate:"max=200"`
	Genre string `query:"genre" validate:"max=100"`
	Sort  string `query:"sort" validate:"max=10"`
}

// RecommendationsRequest holds the /api/v1/recommendations query parameters.
//
// Fields:
//   - Title: title fragment, resolved to the first catalog match (required)
//   - K: number of recommendations (1-50, default from config)
type RecommendationsRequest struct {
	Title string `query:"title" validate:"required,max=200"`
	K     int    `query:"k" validate:"min=1,max=50"`
}
