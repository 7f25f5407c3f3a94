// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package session holds browsing sessions: one screen, a selection
// history, per-sample statuses, the current embedding and a filter.
//
// Live sessions sit in a TTL cache. Every mutation writes a Snapshot to a
// Store (MemoryStore or BadgerStore), and a session missing from the cache
// is rebuilt from its snapshot by reloading the screen and replaying the
// history cursor and the filter. Reads from the screening store go
// through a Dataset, normally a BreakerDataset around the DuckDB store.
package session
