// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package api

import (
	"net/http"

	"github.com/tomtom215/microscopium-browser/internal/logging"
	"github.com/tomtom215/microscopium-browser/internal/metrics"
	ws "github.com/tomtom215/microscopium-browser/internal/websocket"
)

// WebSocket handles GET /ws?session=<id>. The session must exist; the
// connection then receives that session's events.
//
// @Summary Subscribe to session events
// @Description Upgrades to a websocket that receives the selection, navigation, filter, view and session_closed events of one session.
// @Tags Realtime
// @Produce json
// @Param session query string true "Session ID"
// @Success 101 "Switching protocols"
// @Failure 400 {object} models.APIResponse "Missing session"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Failure 503 {object} models.APIResponse "Live updates disabled"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Live updates are disabled", nil)
		return
	}

	id := r.URL.Query().Get("session")
	if id == "" {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "query parameter \"session\" is required", nil)
		return
	}
	if _, err := h.sessions.Get(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		metrics.WSErrors.WithLabelValues("upgrade").Inc()
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.wsHub, conn, id)
	if !h.wsHub.Attach(client) {
		_ = conn.Close()
		return
	}
	client.Start()
}
