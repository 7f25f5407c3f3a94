// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package config

import "time"

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Session  SessionConfig  `koanf:"session"`
	Plot     PlotConfig     `koanf:"plot"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// DatabaseConfig holds DuckDB connection settings
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`                  // 0 = use NumCPU
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // default true
	// SeedPath is a JSON seed document imported at startup when set.
	SeedPath string `koanf:"seed_path"`
}

// SessionConfig holds browsing session settings.
//
// Environment Variables:
//   - SESSION_TTL: idle time before a session is dropped (default: 2h)
//   - SESSION_STORE: snapshot backend, "memory" or "badger" (default: memory)
//   - SESSION_STORE_PATH: BadgerDB directory (required when SESSION_STORE=badger)
//   - SESSION_CLEANUP_INTERVAL: how often expired sessions are purged (default: 5m)
//   - SESSION_MAX: maximum number of live sessions, 0 = unlimited
type SessionConfig struct {
	TTL             time.Duration `koanf:"ttl"`
	Store           string        `koanf:"store"`
	StorePath       string        `koanf:"store_path"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
	MaxSessions     int           `koanf:"max_sessions"`
}

// PlotConfig describes the scatterplot the server computes pixel geometry
// for. Clients that pick points send coordinates in this space.
type PlotConfig struct {
	Width      int     `koanf:"width"`
	Height     int     `koanf:"height"`
	PickRadius float64 `koanf:"pick_radius"`
}

// BreakerConfig tunes the circuit breaker in front of the screening store.
type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests"`      // probes allowed while half-open
	Interval         time.Duration `koanf:"interval"`          // closed-state counter reset period
	Timeout          time.Duration `koanf:"timeout"`           // open-state duration
	FailureThreshold uint32        `koanf:"failure_threshold"` // consecutive failures that trip
}

// SecurityConfig holds HTTP hardening settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
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

// Load reads configuration with the following precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (CONFIG_PATH, or config.yaml in a default location)
//  3. Built-in defaults
func Load() (*Config, error) {
	return LoadWithKoanf()
}
