// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "data/microscopium.duckdb" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Errorf("Session.TTL = %v, want 2h", cfg.Session.TTL)
	}
	if cfg.Session.Store != SessionStoreMemory {
		t.Errorf("Session.Store = %q, want memory", cfg.Session.Store)
	}
	if cfg.Plot.Width != 960 || cfg.Plot.Height != 540 || cfg.Plot.PickRadius != 7 {
		t.Errorf("Plot = %+v", cfg.Plot)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"DUCKDB_PATH", "database.path"},
		{"SEED_PATH", "database.seed_path"},
		{"SESSION_TTL", "session.ttl"},
		{"SESSION_STORE", "session.store"},
		{"LOG_LEVEL", "logging.level"},
		{"PLOT_PICK_RADIUS", "plot.pick_radius"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_STORE", "badger")
	t.Setenv("SESSION_STORE_PATH", t.TempDir())
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("Session.TTL = %v, want 30m", cfg.Session.TTL)
	}
	if cfg.Session.Store != SessionStoreBadger {
		t.Errorf("Session.Store = %q", cfg.Session.Store)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 7000
plot:
  width: 400
  height: 300
database:
  path: /tmp/screens.duckdb
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("env should win over file: port = %d", cfg.Server.Port)
	}
	if cfg.Plot.Width != 400 || cfg.Plot.Height != 300 {
		t.Errorf("Plot = %+v", cfg.Plot)
	}
	if cfg.Database.Path != "/tmp/screens.duckdb" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Plot.PickRadius != 7 {
		t.Errorf("unset values should keep defaults, PickRadius = %v", cfg.Plot.PickRadius)
	}
}

func TestLoadWithKoanf_Invalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("SESSION_STORE", "redis")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for unknown session store")
	}
}
