// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

/*
Package supervisor runs the browser's long-lived services under a suture v4
supervisor tree.

The tree has three layers so that a failure in one does not restart the
others:

	RootSupervisor ("microscopium")
	├── "data-layer"
	│   └── SessionCleanupService
	├── "messaging-layer"
	│   └── WebSocketHubService
	└── "api-layer"
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, which main wires to the zerolog-backed slog
handler from internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewSessionCleanupService(sessions, cfg.Session.CleanupInterval))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)

On shutdown, UnstoppedServiceReport lists services that overran the
shutdown timeout.
*/
package supervisor
