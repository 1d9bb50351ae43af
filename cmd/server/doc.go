// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package main is the entry point for the Cinematch server.

Cinematch loads a movie catalog once at startup, builds a TF-IDF model over
each movie's genre string, and serves a single page that lists movies
(optionally filtered by genre and sorted by title) together with the movies
whose genres are most similar to a chosen title.

# Application Architecture

Processes run under a Suture v4 supervisor tree:

	RootSupervisor ("cinematch")
	├── EngineSupervisor ("engine-layer")
	│   └── Stats reporter (cache gauge, periodic log line)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (page, JSON API, health, metrics)

Initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: CSV or DuckDB source, loaded once
 4. Engine: TF-IDF vectorizer and cosine ranking with an LRU cache
 5. Search service and Chi router
 6. Supervisor tree, stopped by SIGINT or SIGTERM

# Configuration

Priority: environment variables > config file > defaults.

	HTTP_PORT=5000               # listen port
	CATALOG_SOURCE=csv           # csv or duckdb
	CATALOG_PATH=movies.csv      # CSV file, .duckdb database, or any read_csv_auto input
	CATALOG_TABLE=movies         # table read from a .duckdb database
	RECOMMEND_TOP_N=6            # recommendations per request
	DISPLAY_LIMIT=20             # movies shown on the page
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	DISABLE_RATE_LIMIT=false

The config file is looked up as config.yaml in the working directory,
/etc/cinematch/config.yaml, or the path in CONFIG_PATH.

# Endpoints

	GET|POST /                          HTML page
	GET      /api/v1/search             movies + recommendations as JSON
	GET      /api/v1/recommendations    similar movies for a title
	GET      /api/v1/genres             filter vocabulary
	GET      /api/v1/health/live        liveness
	GET      /api/v1/health/ready       readiness
	GET      /metrics                   Prometheus

Build with a version string:

	go build -ldflags "-X main.version=1.0.0" ./cmd/server
*/
package main
