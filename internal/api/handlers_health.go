// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
)

// HealthLive handles liveness check requests (Kubernetes-style).
// Always 200 while the process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: &models.HealthResponse{
			Status:  "alive",
			Version: h.version,
			Uptime:  time.Since(h.startTime).Round(time.Second).String(),
			Ready:   true,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness check requests (Kubernetes-style).
// Returns 503 until the catalog holds at least one movie.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	movies := h.service.CatalogSize()
	health := &models.HealthResponse{
		Status:  "ready",
		Version: h.version,
		Movies:  movies,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Ready:   movies > 0,
	}

	if !health.Ready {
		health.Status = "not_ready"
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data:   health,
			Metadata: models.Metadata{
				Timestamp: time.Now(),
			},
			Error: &models.APIError{
				Code:    ErrCodeNotReady,
				Message: "Catalog is empty",
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
