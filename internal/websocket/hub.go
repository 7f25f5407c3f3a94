// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/tomtom215/microscopium-browser/internal/logging"
	"github.com/tomtom215/microscopium-browser/internal/metrics"
)

// ShutdownReason identifies why the hub stopped.
type ShutdownReason string

const (
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types handled by the hub itself. Session events use the type
// names of the session package.
const (
	MessageTypePing          = "ping"
	MessageTypePong          = "pong"
	MessageTypeSessionClosed = "session_closed"
)

// Message is the envelope of every websocket message.
type Message struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// Hub tracks connected clients and routes session events to the clients
// subscribed to that session.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	reply      chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
}

// NewHub creates a hub. It does nothing until RunWithContext is called.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		reply:      make(chan *Client, 64),
		done:       make(chan struct{}),
	}
}

// RunWithContext processes registrations and broadcasts until ctx is done.
// Lifecycle events are handled before pending broadcasts so a client that
// registered first never misses a message queued after it. All clients are
// closed on return. The hub goroutine is the only writer and closer of a
// client's send channel.
func (h *Hub) RunWithContext(ctx context.Context) error {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.register(client)
			continue
		case client := <-h.Unregister:
			h.unregister(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.register(client)
		case client := <-h.Unregister:
			h.unregister(client)
		case client := <-h.reply:
			h.pong(client)
		case message := <-h.broadcast:
			h.deliver(message)
		}
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	n := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Set(float64(n))
	logging.Debug().Str("session_id", client.sessionID).Int("total_clients", n).Msg("websocket client connected")
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	n := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Set(float64(n))
	logging.Debug().Str("session_id", client.sessionID).Int("total_clients", n).Msg("websocket client disconnected")
}

// pong answers a client ping. Clients already dropped by the hub are skipped.
func (h *Hub) pong(client *Client) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.clients[client] {
		return
	}
	select {
	case client.send <- Message{Type: MessageTypePong, SessionID: client.sessionID}:
	default:
	}
}

// Attach registers client with the running hub. It returns false once the
// hub has stopped.
func (h *Hub) Attach(client *Client) bool {
	select {
	case h.Register <- client:
		return true
	case <-h.done:
		return false
	}
}

// detach unregisters client unless the hub has already stopped.
func (h *Hub) detach(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}

// requestPong asks the hub to answer a ping from client.
func (h *Hub) requestPong(client *Client) {
	select {
	case h.reply <- client:
	case <-h.done:
	default:
		metrics.WSErrors.WithLabelValues("pong_dropped").Inc()
	}
}

// subscribers returns the clients of sessionID ordered by id. Callers hold mu.
func (h *Hub) subscribers(sessionID string) []*Client {
	out := make([]*Client, 0)
	for client := range h.clients {
		if client.sessionID == sessionID {
			out = append(out, client)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// deliver queues message on every subscriber of its session. Clients that
// cannot keep up are dropped. A session_closed message also disconnects
// the subscribers once it is queued.
func (h *Hub) deliver(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.subscribers(message.SessionID) {
		drop := message.Type == MessageTypeSessionClosed
		select {
		case client.send <- message:
		default:
			metrics.WSErrors.WithLabelValues("slow_client").Inc()
			logging.Warn().Str("session_id", client.sessionID).Msg("websocket client too slow, disconnecting")
			drop = true
		}
		if drop {
			close(client.send)
			delete(h.clients, client)
		}
	}
	metrics.WSConnections.Set(float64(len(h.clients)))
}

func (h *Hub) shutdown(ctx context.Context) {
	h.mu.Lock()
	n := len(h.clients)
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.mu.Unlock()
	metrics.WSConnections.Set(0)

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(shutdownReason(ctx))).
		Int("clients_closed", n).
		Msg("websocket hub stopped")
}

func shutdownReason(ctx context.Context) ShutdownReason {
	if ctx.Err() == context.DeadlineExceeded {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

// BroadcastToSession queues an event for the subscribers of sessionID. The
// event is dropped when the broadcast queue is full.
func (h *Hub) BroadcastToSession(sessionID, msgType string, data interface{}) {
	message := Message{Type: msgType, SessionID: sessionID, Data: data}
	select {
	case h.broadcast <- message:
	default:
		metrics.WSErrors.WithLabelValues("queue_full").Inc()
		logging.Warn().Str("session_id", sessionID).Str("message_type", msgType).Msg("broadcast channel full, dropping message")
	}
}

// GetClientCount returns the number of connected clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// SessionClientCount returns the number of clients subscribed to sessionID.
func (h *Hub) SessionClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers(sessionID))
}
