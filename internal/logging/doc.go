// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package logging provides centralized zerolog-based structured logging.
//
// The global logger is configured once at startup from the logging section
// of the application config:
//
//	logging.Init(logging.Config{
//	    Level:  cfg.Logging.Level,
//	    Format: cfg.Logging.Format,
//	    Caller: cfg.Logging.Caller,
//	})
//
// Handlers and services log through Ctx so that request and browsing
// session identifiers follow the call:
//
//	logging.Ctx(ctx).Info().Str("sample_id", id).Msg("Sample selected")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
//
// SlogHandler bridges slog-only libraries (the supervisor's sutureslog hook)
// onto the same zerolog output.
package logging
