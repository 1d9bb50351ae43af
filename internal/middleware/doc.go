// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides HTTP middleware shared by the Cinematch router.

Every component has the chi signature func(http.Handler) http.Handler:

  - Compression: pooled gzip encoding for clients that accept it
  - RequestID: X-Request-ID propagation plus logging context
  - PrometheusMetrics: request count, latency and in-flight gauge,
    labeled by chi route pattern so path parameters do not explode
    label cardinality

A typical stack:

	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)
*/
package middleware
