// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package session

import (
	"sync"
	"time"

	"github.com/tomtom215/microscopium-browser/internal/byteflag"
	"github.com/tomtom215/microscopium-browser/internal/filter"
	"github.com/tomtom215/microscopium-browser/internal/history"
	"github.com/tomtom215/microscopium-browser/internal/models"
	"github.com/tomtom215/microscopium-browser/internal/samples"
)

// Session is one user's view of a screen: the selection history, the
// sample statuses, the current embedding and the filter. All methods
// expect mu to be held by the caller.
type Session struct {
	mu sync.Mutex

	id        string
	screen    models.Screen
	history   *history.History
	manager   *samples.Manager
	options   filter.Options
	genes     *filter.GeneSelection
	query     filter.Query
	width     float64
	height    float64
	createdAt time.Time
	updatedAt time.Time
	closed    bool
}

// newSession builds a session over the samples of screen with an empty
// history, the t-SNE view and no filter.
func newSession(id string, screen models.Screen, list []models.Sample, width, height float64, now time.Time) *Session {
	s := &Session{
		id:        id,
		history:   history.New(),
		width:     width,
		height:    height,
		createdAt: now,
		updatedAt: now,
	}
	s.load(screen, list)
	return s
}

// load replaces the screen and resets every piece of state tied to it.
func (s *Session) load(screen models.Screen, list []models.Sample) {
	s.screen = screen
	s.manager = samples.New(list)
	s.manager.FitScales(s.width, s.height)
	s.options = filter.NewOptions(list)
	s.genes = filter.NewGeneSelection(s.options.Genes)
	s.query = filter.Query{}
	s.history.Reset()
}

// selectIndex marks sample i Active and its known neighbours Neighbour.
func (s *Session) selectIndex(i int) []string {
	sample := s.manager.Sample(i)
	s.manager.SetStatus([]int{i}, samples.Active)
	neighbours := s.manager.IndicesOf(sample.Neighbours)
	s.manager.SetStatus(neighbours, samples.Neighbour)
	return s.manager.IDs(neighbours)
}

// clearSelection removes Active and Neighbour from every sample.
func (s *Session) clearSelection() {
	s.manager.ClearStatus(samples.Active | samples.Neighbour)
}

// showCurrent re-applies the selection for the history cursor.
func (s *Session) showCurrent() []string {
	id, ok := s.history.Current()
	if !ok {
		s.clearSelection()
		return nil
	}
	i := s.manager.IndexOf(id)
	if i < 0 {
		s.clearSelection()
		return nil
	}
	return s.selectIndex(i)
}

// applyQuery filters samples out and records the gene selection.
func (s *Session) applyQuery(q filter.Query) int {
	s.query = q
	s.genes.SetSelected(q.Genes)
	out := filter.FilterOut(s.manager.Samples(), q)
	s.manager.SetStatus(out, samples.FilteredOut)
	return len(out)
}

// setView switches the embedding and refits the pixel scales.
func (s *Session) setView(v models.View) {
	s.manager.SetView(v)
	s.manager.FitScales(s.width, s.height)
}

func (s *Session) snapshot() *Snapshot {
	return &Snapshot{
		ID:        s.id,
		ScreenID:  s.screen.ID,
		View:      s.manager.View(),
		Filter:    s.query,
		History:   s.history.Snapshot(),
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
}

// restore applies a stored snapshot to a freshly loaded session.
func (s *Session) restore(snap *Snapshot) error {
	if err := s.history.Restore(snap.History); err != nil {
		return err
	}
	if snap.View != "" {
		s.setView(snap.View)
	}
	s.applyQuery(snap.Filter)
	s.showCurrent()
	s.createdAt = snap.CreatedAt
	s.updatedAt = snap.UpdatedAt
	return nil
}

// HistoryState describes the navigation history.
type HistoryState struct {
	Entries    []string `json:"entries"`
	Cursor     int      `json:"cursor"`
	Current    string   `json:"current,omitempty"`
	CanBack    bool     `json:"can_back"`
	CanForward bool     `json:"can_forward"`
}

// State is the externally visible state of a session.
type State struct {
	ID           string        `json:"id"`
	Screen       models.Screen `json:"screen"`
	View         models.View   `json:"view"`
	History      HistoryState  `json:"history"`
	Filter       filter.Query  `json:"filter"`
	FilterActive bool          `json:"filter_active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (s *Session) state() State {
	current, _ := s.history.Current()
	return State{
		ID:     s.id,
		Screen: s.screen,
		View:   s.manager.View(),
		History: HistoryState{
			Entries:    s.history.Entries(),
			Cursor:     s.history.Cursor(),
			Current:    current,
			CanBack:    s.history.CanBack(),
			CanForward: s.history.CanForward(),
		},
		Filter:       s.query,
		FilterActive: s.query.Active(s.options),
		CreatedAt:    s.createdAt,
		UpdatedAt:    s.updatedAt,
	}
}

// PlotPoint is one sample placed on the plot.
type PlotPoint struct {
	ID     string        `json:"id"`
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	Status byteflag.Flag `json:"status"`
	Labels []string      `json:"labels,omitempty"`
}

// Scene is everything a client needs to draw the scatterplot: pixel
// positions in index order and the draw layers referring to those indices.
type Scene struct {
	View   models.View    `json:"view"`
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Points []PlotPoint    `json:"points"`
	Layers samples.Layers `json:"layers"`
}

func (s *Session) scene() Scene {
	points := make([]PlotPoint, s.manager.Len())
	for i := range points {
		x, y := s.manager.PixelOf(i)
		points[i] = PlotPoint{
			ID:     s.manager.Sample(i).ID,
			X:      x,
			Y:      y,
			Status: s.manager.Status(i),
			Labels: samples.StatusLabels(s.manager.Status(i)),
		}
	}
	return Scene{
		View:   s.manager.View(),
		Width:  s.width,
		Height: s.height,
		Points: points,
		Layers: s.manager.Layers(),
	}
}
