// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

/*
Package api exposes browsing sessions over HTTP and websocket.

Routes (all under /api/v1):

	GET    /health, /health/live, /health/ready
	GET    /screens
	POST   /sessions                         {"screen_id": "..."}
	GET    /sessions/{id}
	DELETE /sessions/{id}
	POST   /sessions/{id}/select             {"sample_id": "..."}
	POST   /sessions/{id}/back
	POST   /sessions/{id}/forward
	PUT    /sessions/{id}/screen             {"screen_id": "..."}
	PUT    /sessions/{id}/filter             {"rows": [...], "columns": [...], "plates": [...], "genes": [...]}
	GET    /sessions/{id}/filter/options?gene=<pattern>
	PUT    /sessions/{id}/view               {"view": "tsne"|"pca"}
	GET    /sessions/{id}/layers
	GET    /sessions/{id}/pick?x=<px>&y=<py>
	GET    /ws?session=<id>

Prometheus metrics are served at /metrics.

Every JSON response uses the models.APIResponse envelope. Errors carry one
of the codes VALIDATION_ERROR, BAD_REQUEST, NOT_FOUND, SERVICE_UNAVAILABLE
or INTERNAL_ERROR.
*/
package api
