// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

/*
Package websocket pushes browsing session events to connected clients.

A client connects with the id of an open session and receives only that
session's events:

  - selection: a sample was selected
  - navigation: the history moved back or forward
  - filter: the filter changed
  - view: the embedding changed
  - screen_switched: another screen was loaded
  - session_closed: the session ended; the connection is closed after it

Clients may send {"type":"ping"} and receive {"type":"pong"}.

The Hub runs under the supervisor through RunWithContext. Each Client has a
read pump and a write pump goroutine; the hub owns the send channel and
closes it when the client is removed.

	hub := websocket.NewHub()
	svc := session.NewService(data, store, cfg.Session, cfg.Plot,
	    session.WithBroadcaster(hub))
*/
package websocket
