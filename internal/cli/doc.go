// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package cli implements screenctl, the administration tool for the
// screening store: seed imports and read-only listings of screens and
// samples, printed as tables or JSON.
package cli
