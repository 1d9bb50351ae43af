// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api serves Cinematch over HTTP.

Routes:

	GET|POST /                       HTML search page (movie, genre, sort form fields)
	GET      /api/v1/search          same result as the page, as JSON
	GET      /api/v1/recommendations title and k; validated
	GET      /api/v1/genres          genre filter vocabulary
	GET      /api/v1/health/live     liveness check
	GET      /api/v1/health/ready    readiness check (catalog loaded)
	GET      /metrics                Prometheus exposition

JSON endpoints return the models.APIResponse envelope. Errors carry a
machine-readable code (see errors.go).

The Handler holds no mutable state of its own: all request work is delegated
to the immutable search.Service built at startup, so handlers are safe for
concurrent use.
*/
package api
