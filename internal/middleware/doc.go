// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

/*
Package middleware provides the HTTP middleware shared by every route.

  - RequestID: propagates or generates X-Request-ID and stores it in the
    logging context
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern
  - AccessLog: one zerolog line per request, warn for slow or failed ones

CORS, rate limiting, panic recovery and compression come from chi and its
companion packages and are assembled in the api package:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
