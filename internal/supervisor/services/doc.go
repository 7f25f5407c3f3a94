// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package services adapts the browser's components to suture.Service.
//
// Each wrapper translates a component's own lifecycle (ListenAndServe,
// RunWithContext, a periodic sweep) into Serve(ctx) and names itself via
// fmt.Stringer for supervisor log events.
package services
