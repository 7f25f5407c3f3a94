// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package config

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"empty db path", func(c *Config) { c.Database.Path = " " }, true},
		{"short ttl", func(c *Config) { c.Session.TTL = time.Second }, true},
		{"badger without path", func(c *Config) {
			c.Session.Store = SessionStoreBadger
			c.Session.StorePath = ""
		}, true},
		{"badger with path", func(c *Config) {
			c.Session.Store = SessionStoreBadger
			c.Session.StorePath = "/tmp/sessions"
		}, false},
		{"unknown store", func(c *Config) { c.Session.Store = "redis" }, true},
		{"negative max sessions", func(c *Config) { c.Session.MaxSessions = -1 }, true},
		{"zero plot", func(c *Config) { c.Plot.Width = 0 }, true},
		{"zero pick radius", func(c *Config) { c.Plot.PickRadius = 0 }, true},
		{"breaker threshold", func(c *Config) { c.Breaker.FailureThreshold = 0 }, true},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{"rate limit disabled", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, false},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigHelpers(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS should be a wildcard")
	}
	if cfg.IsProduction() {
		t.Error("default environment is development")
	}
	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", got)
	}
	cfg.Server.Environment = "Production"
	if !cfg.IsProduction() {
		t.Error("IsProduction() should be case-insensitive")
	}
}
