// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package services

import (
	"context"
	"errors"

	"github.com/tomtom215/microscopium-browser/internal/logging"
)

// EventHub is satisfied by *websocket.Hub.
type EventHub interface {
	RunWithContext(ctx context.Context) error
	GetClientCount() int
}

// WebSocketHubService runs the session event hub under supervision. The
// hub closes its own clients when the context ends.
type WebSocketHubService struct {
	hub  EventHub
	name string
}

// NewWebSocketHubService creates a new WebSocket hub service wrapper.
func NewWebSocketHubService(hub EventHub) *WebSocketHubService {
	return &WebSocketHubService{hub: hub, name: "websocket-hub"}
}

// Serve implements suture.Service.
func (w *WebSocketHubService) Serve(ctx context.Context) error {
	err := w.hub.RunWithContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		logging.Warn().Err(err).Int("clients", w.hub.GetClientCount()).Msg("WebSocket hub stopped unexpectedly")
	}
	return err
}

func (w *WebSocketHubService) String() string {
	return w.name
}
