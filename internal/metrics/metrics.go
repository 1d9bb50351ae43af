// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package metrics registers the Prometheus collectors exposed at /metrics.
//
// Collectors are package-level and registered on the default registry via
// promauto, so any package can record without wiring:
//
//	metrics.RecordRecommendation(time.Since(start), false)
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_catalog_vocabulary_size",
			Help: "Number of distinct genre terms in the TF-IDF vocabulary",
		},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_catalog_load_duration_seconds",
			Help:    "Duration of catalog load and vectorization",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	// Recommendation Metrics
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_recommendation_duration_seconds",
			Help:    "Duration of similarity ranking, cache hits included",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinematch_recommendation_cache_hits_total",
			Help: "Total number of similarity ranking cache hits",
		},
	)

	RecommendationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinematch_recommendation_cache_misses_total",
			Help: "Total number of similarity ranking cache misses",
		},
	)

	RecommendationCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_recommendation_cache_entries",
			Help: "Number of rankings held in the recommendation cache",
		},
	)

	// Search Metrics
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_searches_total",
			Help: "Total number of searches by whether a base movie resolved",
		},
		[]string{"resolved"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCatalogLoad records the size of a freshly built catalog.
func RecordCatalogLoad(movies, vocabulary int, duration time.Duration) {
	CatalogMovies.Set(float64(movies))
	CatalogVocabularySize.Set(float64(vocabulary))
	CatalogLoadDuration.Observe(duration.Seconds())
}

// RecordRecommendation records one similarity ranking.
func RecordRecommendation(duration time.Duration, cacheHit bool) {
	RecommendationDuration.Observe(duration.Seconds())
	if cacheHit {
		RecommendationCacheHits.Inc()
	} else {
		RecommendationCacheMisses.Inc()
	}
}

// RecordCacheEntries sets the current recommendation cache size.
func RecordCacheEntries(n int) {
	RecommendationCacheEntries.Set(float64(n))
}

// RecordSearch counts a search request.
func RecordSearch(resolved bool) {
	label := "false"
	if resolved {
		label = "true"
	}
	SearchesTotal.WithLabelValues(label).Inc()
}
