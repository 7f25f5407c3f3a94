// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/microscopium-browser/internal/filter"
	"github.com/tomtom215/microscopium-browser/internal/logging"
)

func sessionID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// sessionContext adds the session id of the route to the logging context.
func sessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := sessionID(r); id != "" {
			r = r.WithContext(logging.ContextWithSessionID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// ListScreens handles GET /screens.
//
// @Summary List screens
// @Description Returns every imported screen with its sample count.
// @Tags Screens
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Screen} "Screens retrieved"
// @Failure 503 {object} models.APIResponse "Dataset unavailable"
// @Router /screens [get]
func (h *Handler) ListScreens(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	screens, err := h.sessions.ListScreens(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, screens, start)
}

// OpenSession handles POST /sessions.
//
// @Summary Open a browsing session
// @Description Creates a session on a screen with an empty history, the t-SNE view and no filter.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body api.OpenSessionRequest true "Screen to open"
// @Success 201 {object} models.APIResponse{data=session.State} "Session opened"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 404 {object} models.APIResponse "Screen not found"
// @Failure 503 {object} models.APIResponse "Session limit reached or dataset unavailable"
// @Router /sessions [post]
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req OpenSessionRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	state, err := h.sessions.Open(r.Context(), req.ScreenID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	w.Header().Set("Location", "/api/v1/sessions/"+state.ID)
	respondData(w, http.StatusCreated, state, start)
}

// GetSession handles GET /sessions/{id}.
//
// @Summary Get session state
// @Description Returns the screen, view, history and filter of a session.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=session.State} "Session state"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	state, err := h.sessions.Get(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, state, start)
}

// CloseSession handles DELETE /sessions/{id}.
//
// @Summary Close a session
// @Description Ends a session, removes its snapshot and disconnects its live subscribers.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 204 "Session closed"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /sessions/{id} [delete]
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Close(r.Context(), sessionID(r)); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Select handles POST /sessions/{id}/select.
//
// @Summary Select a sample
// @Description Makes a sample active, highlights its neighbours and appends it to the history.
// @Tags Navigation
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body api.SelectRequest true "Sample to select"
// @Success 200 {object} models.APIResponse{data=session.Selection} "Sample selected"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 404 {object} models.APIResponse "Session or sample not found"
// @Router /sessions/{id}/select [post]
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req SelectRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	sel, err := h.sessions.Select(r.Context(), sessionID(r), req.SampleID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, sel, start)
}

// Back handles POST /sessions/{id}/back. Reaching the start of the history
// is not an error; the body reports moved=false.
//
// @Summary Go back in the history
// @Description Moves the history cursor back one selection. At the start of the history moved is false.
// @Tags Navigation
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=session.Navigation} "Navigation result"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /sessions/{id}/back [post]
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	nav, err := h.sessions.Back(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, nav, start)
}

// Forward handles POST /sessions/{id}/forward.
//
// @Summary Go forward in the history
// @Description Moves the history cursor forward one selection. At the end of the history moved is false.
// @Tags Navigation
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=session.Navigation} "Navigation result"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /sessions/{id}/forward [post]
func (h *Handler) Forward(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	nav, err := h.sessions.Forward(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, nav, start)
}

// SwitchScreen handles PUT /sessions/{id}/screen.
//
// @Summary Switch screen
// @Description Loads another screen into the session. The history, selection and filter are reset; the view is kept.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body api.SwitchScreenRequest true "Screen to load"
// @Success 200 {object} models.APIResponse{data=session.State} "Screen switched"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 404 {object} models.APIResponse "Session or screen not found"
// @Router /sessions/{id}/screen [put]
func (h *Handler) SwitchScreen(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req SwitchScreenRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	state, err := h.sessions.SwitchScreen(r.Context(), sessionID(r), req.ScreenID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, state, start)
}

// ApplyFilter handles PUT /sessions/{id}/filter.
//
// @Summary Apply a filter
// @Description Marks samples outside the included rows, columns, plates and genes as filtered out.
// @Tags Filter
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body filter.Query true "Filter selection"
// @Success 200 {object} models.APIResponse{data=session.FilterResult} "Filter applied"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /sessions/{id}/filter [put]
func (h *Handler) ApplyFilter(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var q filter.Query
	if !decodeRequest(w, r, &q) {
		return
	}
	res, err := h.sessions.ApplyFilter(r.Context(), sessionID(r), q)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, res, start)
}

// FilterOptions handles GET /sessions/{id}/filter/options.
//
// @Summary Get filter options
// @Description Returns the filter values of the session screen. The gene pattern narrows the unselected genes.
// @Tags Filter
// @Produce json
// @Param id path string true "Session ID"
// @Param gene query string false "Gene pattern (regular expression or substring)"
// @Success 200 {object} models.APIResponse{data=session.FilterChoices} "Filter options"
// @Failure 400 {object} models.APIResponse "Pattern too long"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /sessions/{id}/filter/options [get]
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	pattern := r.URL.Query().Get("gene")
	if len(pattern) > 128 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "gene pattern must be at most 128 characters", nil)
		return
	}
	choices, err := h.sessions.FilterOptions(r.Context(), sessionID(r), pattern)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, choices, start)
}

// SetView handles PUT /sessions/{id}/view.
//
// @Summary Switch embedding
// @Description Redraws the plot with the t-SNE or PCA embedding.
// @Tags Plot
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body api.ViewRequest true "Embedding"
// @Success 200 {object} models.APIResponse{data=session.Scene} "Plot scene"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /sessions/{id}/view [put]
func (h *Handler) SetView(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req ViewRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	scene, err := h.sessions.SetView(r.Context(), sessionID(r), req.View)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, scene, start)
}

// Layers handles GET /sessions/{id}/layers.
//
// @Summary Get plot scene
// @Description Returns pixel positions, statuses and draw layers of every sample.
// @Tags Plot
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=session.Scene} "Plot scene"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /sessions/{id}/layers [get]
func (h *Handler) Layers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	scene, err := h.sessions.Scene(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, scene, start)
}

// Pick handles GET /sessions/{id}/pick.
//
// @Summary Pick a point
// @Description Finds the sample nearest to a pixel within the pick radius.
// @Tags Plot
// @Produce json
// @Param id path string true "Session ID"
// @Param x query number true "Pixel x"
// @Param y query number true "Pixel y"
// @Success 200 {object} models.APIResponse{data=session.Pick} "Pick result"
// @Failure 400 {object} models.APIResponse "Invalid coordinates"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /sessions/{id}/pick [get]
func (h *Handler) Pick(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	x, err := parseFloatParam(r, "x")
	if err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	y, err := parseFloatParam(r, "y")
	if err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	req := PickRequest{X: x, Y: y}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	pick, err := h.sessions.Pick(r.Context(), sessionID(r), req.X, req.Y)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, pick, start)
}
