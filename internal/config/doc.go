// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

/*
Package config provides layered configuration for the screening browser.

Configuration is loaded with koanf in three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: CONFIG_PATH, or config.yaml in the working directory or
    /etc/microscopium
 3. Environment variables, mapped explicitly (see envMappings)

# Environment Variables

HTTP Server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 8080)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - ENVIRONMENT: development or production

Screening store:
  - DUCKDB_PATH: database file (default: data/microscopium.duckdb)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - SEED_PATH: JSON seed document imported on startup

Sessions:
  - SESSION_TTL, SESSION_STORE, SESSION_STORE_PATH, SESSION_CLEANUP_INTERVAL, SESSION_MAX

Plot geometry:
  - PLOT_WIDTH, PLOT_HEIGHT (default: 960x540), PLOT_PICK_RADIUS (default: 7)

Security:
  - CORS_ORIGINS, TRUSTED_PROXIES: comma-separated lists
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example config.yaml

	server:
	  port: 8080
	database:
	  path: /var/lib/microscopium/screens.duckdb
	session:
	  store: badger
	  store_path: /var/lib/microscopium/sessions
*/
package config
