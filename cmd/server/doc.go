// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

/*
Package main is the entry point for the Microscopium browser server.

The server lets a client explore a high-content screen: every sample of a
screen is a point in a 2-D embedding (t-SNE or PCA), and a browsing session
tracks which sample is selected, its neighbours, the navigation history and
the active filter. Sessions are driven over a REST API and push their
changes to WebSocket subscribers.

# Application Architecture

	RootSupervisor ("microscopium")
	├── "data-layer"
	│   └── session cleanup (evicts idle sessions, drops expired snapshots)
	├── "messaging-layer"
	│   └── WebSocket hub (per-session event fan-out)
	└── "api-layer"
	    └── HTTP server (chi router)

Startup order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Database: DuckDB screening store, optional seed import
 4. Session store: in memory or BadgerDB
 5. Session service behind a gobreaker circuit breaker
 6. Supervisor tree: suture v4 with sutureslog events

# Configuration

	HTTP_PORT=8080
	DUCKDB_PATH=data/microscopium.duckdb
	SEED_PATH=screens.json         # imported at startup when set
	SESSION_STORE=memory           # memory or badger
	SESSION_STORE_PATH=data/sessions
	SESSION_TTL=2h
	PLOT_WIDTH=960
	PLOT_HEIGHT=540
	LOG_LEVEL=info
	LOG_FORMAT=json

# API Documentation

Swagger documentation is served at /swagger/index.html. The docs package is
generated from the handler annotations with:

	swag init -g cmd/server/docs.go -o docs

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains for
HTTP_SHUTDOWN_TIMEOUT, the hub closes its clients, and the database is
checkpointed on close.
*/
package main
