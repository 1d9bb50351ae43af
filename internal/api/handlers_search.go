// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/search"
)

// Search handles GET /api/v1/search.
// Returns the same movie list, recommendations and base movie as the page.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	params := SearchRequest{
		Movie: q.Get("movie"),
		Genre: q.Get("genre"),
		Sort:  q.Get("sort"),
	}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondErrorWithDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	res, err := h.service.Search(r.Context(), search.ParseRequest(params.Movie, params.Genre, params.Sort))
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Search failed", err)
		return
	}

	respondSuccess(w, r, &models.SearchResponse{
		Movies:          res.Movies,
		Recommendations: res.Recommendations,
		BaseMovie:       res.BaseMovie,
		Total:           res.Total,
	}, start)
}

// Recommendations handles GET /api/v1/recommendations?title=&k=.
// Returns 404 NOT_FOUND when no catalog title contains the fragment.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params := RecommendationsRequest{
		Title: r.URL.Query().Get("title"),
		K:     getIntParam(r, "k", h.service.RecommendLimit()),
	}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondErrorWithDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	base, recs, ok, err := h.service.Recommend(r.Context(), params.Title, params.K)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to generate recommendations", err)
		return
	}
	if !ok {
		respondErrorWithDetails(w, http.StatusNotFound, &models.APIError{
			Code:    ErrCodeNotFound,
			Message: "No movie title matched",
			Details: map[string]interface{}{"title": params.Title},
		}, nil)
		return
	}

	respondSuccess(w, r, &models.RecommendationsResponse{
		BaseMovie:       base,
		Recommendations: recs,
	}, start)
}

// Genres handles GET /api/v1/genres.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	genres := h.service.Genres()
	respondSuccess(w, r, &models.GenresResponse{
		Genres: genres,
		Count:  len(genres),
	}, start)
}
