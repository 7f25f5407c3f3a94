// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/microscopium-browser/internal/session"
)

// respondServiceError maps session errors to HTTP responses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Session not found", nil)
	case errors.Is(err, session.ErrScreenNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Screen not found", nil)
	case errors.Is(err, session.ErrSampleNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Sample not found in this screen", nil)
	case errors.Is(err, session.ErrInvalidView):
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "View must be tsne or pca", nil)
	case errors.Is(err, session.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Screening data is temporarily unavailable", err)
	case errors.Is(err, session.ErrTooManySessions):
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Too many open sessions", nil)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err)
	}
}
