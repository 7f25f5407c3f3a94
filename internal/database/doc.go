// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package database stores screens and their samples in DuckDB.
//
// The schema is two tables, screens and samples, created idempotently when
// the store opens. Data arrives through ImportSeed, which validates a JSON
// seed document and upserts it in a single transaction:
//
//	{
//	  "screens": [{"id": "myores", "name": "Myoblast screen", ...}],
//	  "samples": [{"id": "myores-1-A01", "screen": "myores", "row": "A", ...}]
//	}
//
// Reads return typed models. Unknown screens are reported with ErrNotFound,
// and every query duration is recorded to Prometheus.
package database
