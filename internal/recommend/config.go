// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"time"
)

// Config contains the similarity engine configuration.
type Config struct {
	// DefaultTopN is used when Similar is called with topN <= 0.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN caps any requested topN.
	MaxTopN int `json:"max_top_n"`

	// Cache contains caching parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains result caching parameters.
type CacheConfig struct {
	// Enabled turns the ranking cache on.
	Enabled bool `json:"enabled"`

	// Size is the maximum number of cached rankings.
	Size int `json:"size"`

	// TTL is how long a ranking stays cached. Zero keeps it until evicted.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultTopN: 6,
		MaxTopN:     50,
		Cache: CacheConfig{
			Enabled: true,
			Size:    1024,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultTopN < 1 {
		return fmt.Errorf("default_top_n must be positive, got %d", c.DefaultTopN)
	}
	if c.MaxTopN < c.DefaultTopN {
		return fmt.Errorf("max_top_n (%d) must be >= default_top_n (%d)", c.MaxTopN, c.DefaultTopN)
	}
	if c.Cache.Enabled && c.Cache.Size < 1 {
		return fmt.Errorf("cache.size must be positive when caching is enabled, got %d", c.Cache.Size)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative, got %v", c.Cache.TTL)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
