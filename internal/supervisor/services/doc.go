// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package services adapts Cinematch components to the suture.Service
// interface: Serve(ctx) blocks until ctx is canceled or the component fails.
package services
