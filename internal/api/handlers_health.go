// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/microscopium-browser/internal/models"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status            string  `json:"status"`
	DatabaseConnected bool    `json:"database_connected"`
	ActiveSessions    int     `json:"active_sessions"`
	WebSocketClients  int     `json:"websocket_clients"`
	Uptime            float64 `json:"uptime"`
}

func (h *Handler) databaseConnected(r *http.Request) bool {
	return h.db != nil && h.db.Ping(r.Context()) == nil
}

// Health reports overall status. It always answers 200; a failing
// database shows up as "degraded".
//
// @Summary Get service health
// @Description Returns database connectivity, active sessions, websocket clients and uptime.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=api.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	dbConnected := h.databaseConnected(r)

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}
	health := HealthStatus{
		Status:            status,
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
	}
	if h.sessions != nil {
		health.ActiveSessions = h.sessions.ActiveSessions()
	}
	if h.wsHub != nil {
		health.WebSocketClients = h.wsHub.GetClientCount()
	}
	respondData(w, http.StatusOK, health, start)
}

// HealthLive answers 200 while the process is running.
//
// @Summary Liveness probe
// @Description Returns 200 while the process is running.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// HealthReady answers 200 when the screening database is reachable and
// 503 otherwise.
//
// @Summary Readiness probe
// @Description Returns 200 when the screening database is reachable and 503 otherwise.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.databaseConnected(r)

	statusCode := http.StatusOK
	status := "ready"
	if !dbConnected {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}
	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"database_connected": dbConnected,
			"ready_to_serve":     dbConnected,
			"uptime":             time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
