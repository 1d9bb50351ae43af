// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package config loads Cinematch configuration from defaults, an optional
// YAML file, and environment variables, in that order of precedence.
package config

import (
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/search"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production" (default: "development")
}

// CatalogConfig selects the movie source read at startup.
type CatalogConfig struct {
	// Source is "csv" or "duckdb".
	Source string `koanf:"source"`

	// Path is the CSV file, or for duckdb a .duckdb database or any file
	// read_csv_auto accepts.
	Path string `koanf:"path"`

	// Table is queried when Path is a DuckDB database.
	Table string `koanf:"table"`
}

// RecommendConfig holds ranking and result-size settings.
type RecommendConfig struct {
	TopN         int           `koanf:"top_n"`
	MaxTopN      int           `koanf:"max_top_n"`
	DisplayLimit int           `koanf:"display_limit"`
	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheSize    int           `koanf:"cache_size"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds request limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// EngineConfig converts the recommend section to the engine's config.
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		DefaultTopN: r.TopN,
		MaxTopN:     r.MaxTopN,
		Cache: recommend.CacheConfig{
			Enabled: r.CacheEnabled,
			Size:    r.CacheSize,
			TTL:     r.CacheTTL,
		},
	}
}

// SearchOptions converts the recommend section to search options.
func (r RecommendConfig) SearchOptions() search.Options {
	return search.Options{
		DisplayLimit:   r.DisplayLimit,
		RecommendLimit: r.TopN,
	}
}

// LoggingOptions converts the logging section to a logging.Config.
func (l LoggingConfig) LoggingOptions() logging.Config {
	return logging.Config{
		Level:  l.Level,
		Format: l.Format,
		Caller: l.Caller,
	}
}

// Load reads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
