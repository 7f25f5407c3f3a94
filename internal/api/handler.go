// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/microscopium-browser/internal/config"
	"github.com/tomtom215/microscopium-browser/internal/logging"
	"github.com/tomtom215/microscopium-browser/internal/session"
	ws "github.com/tomtom215/microscopium-browser/internal/websocket"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	sessions  *session.Service
	db        Pinger
	wsHub     *ws.Hub
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler. db and wsHub may be nil in tests.
func NewHandler(sessions *session.Service, db Pinger, wsHub *ws.Hub, cfg *config.Config) *Handler {
	return &Handler{
		sessions:  sessions,
		db:        db,
		wsHub:     wsHub,
		config:    cfg,
		startTime: time.Now(),
	}
}

func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  4096,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts origins allowed by the CORS configuration.
// Browsers always send Origin on websocket handshakes, so a missing header
// is rejected.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}
	if h.config == nil {
		return true
	}
	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
