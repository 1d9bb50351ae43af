// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package models holds the JSON shapes returned by the HTTP API.
package models

import (
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// APIResponse is the envelope every JSON endpoint returns.
//
// Status field values:
//   - "success": see Data
//   - "error": see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"base_movie": "Toy Story (1995)", "recommendations": [...]},
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z", "query_time_ms": 1}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "k must be at most 50"},
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response timing and request correlation.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a machine-readable error.
//
// Error codes:
//   - VALIDATION_ERROR: invalid query parameters
//   - NOT_FOUND: no movie title matched
//   - INTERNAL_ERROR: unexpected failure
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SearchResponse mirrors what the HTML page shows.
type SearchResponse struct {
	Movies          []catalog.Movie         `json:"movies"`
	Recommendations []recommend.ScoredMovie `json:"recommendations"`
	BaseMovie       string                  `json:"base_movie,omitempty"`
	Total           int                     `json:"total"`
}

// RecommendationsResponse is the result of a title lookup.
type RecommendationsResponse struct {
	BaseMovie       catalog.Movie           `json:"base_movie"`
	Recommendations []recommend.ScoredMovie `json:"recommendations"`
}

// GenresResponse lists the genre filter vocabulary.
type GenresResponse struct {
	Genres []string `json:"genres"`
	Count  int      `json:"count"`
}

// HealthResponse reports liveness or readiness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Movies  int    `json:"movies,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
	Ready   bool   `json:"ready"`
}
