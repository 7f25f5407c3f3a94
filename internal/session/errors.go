// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package session

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or expired sessions.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSampleNotFound is returned when a sample id is not part of the
	// session's screen.
	ErrSampleNotFound = errors.New("sample not found")

	// ErrScreenNotFound is returned when a screen does not exist.
	ErrScreenNotFound = errors.New("screen not found")

	// ErrInvalidView is returned for a view other than tsne or pca.
	ErrInvalidView = errors.New("invalid view")

	// ErrUnavailable is returned when the screening store cannot serve
	// requests, for example while its circuit breaker is open.
	ErrUnavailable = errors.New("screening data unavailable")

	// ErrTooManySessions is returned when the live session limit is reached.
	ErrTooManySessions = errors.New("too many sessions")
)
