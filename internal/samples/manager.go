// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package samples tracks the display status of every sample of a screen
// and answers the geometric queries a scatterplot needs: which point is
// under the cursor and in which order points are drawn.
//
// A Manager is not safe for concurrent use; the owning session serialises
// access.
package samples

import (
	"github.com/tomtom215/microscopium-browser/internal/byteflag"
	"github.com/tomtom215/microscopium-browser/internal/models"
	"github.com/tomtom215/microscopium-browser/internal/stats"
)

// Manager wraps the ordered samples of one screen with a status flag each.
type Manager struct {
	samples  []models.Sample
	status   []byteflag.Flag
	index    map[string]int
	view     models.View
	xScale   Scale
	yScale   Scale
	hasScale bool
}

// New creates a Manager over samples. The slice is not copied and must not
// be modified afterwards. The initial view is t-SNE and every status is 0.
func New(samples []models.Sample) *Manager {
	index := make(map[string]int, len(samples))
	for i, s := range samples {
		index[s.ID] = i
	}
	return &Manager{
		samples: samples,
		status:  make([]byteflag.Flag, len(samples)),
		index:   index,
		view:    models.ViewTSNE,
	}
}

// Len returns the number of samples.
func (m *Manager) Len() int { return len(m.samples) }

// Samples returns the managed samples in index order.
func (m *Manager) Samples() []models.Sample { return m.samples }

// Sample returns the sample at index i.
func (m *Manager) Sample(i int) models.Sample { return m.samples[i] }

// Status returns the status flag of the sample at index i.
func (m *Manager) Status(i int) byteflag.Flag { return m.status[i] }

// Statuses returns a copy of every status flag in index order.
func (m *Manager) Statuses() []byteflag.Flag {
	out := make([]byteflag.Flag, len(m.status))
	copy(out, m.status)
	return out
}

// IndexOf returns the index of the sample with the given id, or -1.
func (m *Manager) IndexOf(id string) int {
	if i, ok := m.index[id]; ok {
		return i
	}
	return -1
}

// IndicesOf returns the indices of ids in query order. Unknown ids are skipped.
func (m *Manager) IndicesOf(ids []string) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if i, ok := m.index[id]; ok {
			out = append(out, i)
		}
	}
	return out
}

// IDs returns the sample ids for indices.
func (m *Manager) IDs(indices []int) []string {
	out := make([]string, 0, len(indices))
	for _, i := range indices {
		if m.valid(i) {
			out = append(out, m.samples[i].ID)
		}
	}
	return out
}

// WithStatus returns the ascending indices whose flag contains status.
func (m *Manager) WithStatus(status byteflag.Flag) []int {
	out := make([]int, 0)
	for i, f := range m.status {
		if byteflag.Check(f, status) {
			out = append(out, i)
		}
	}
	return out
}

// AddStatus sets status on the given indices. Exclusive statuses (Active,
// Selected) are first cleared from every sample, so they end up on exactly
// the given indices. Out of range indices are ignored.
func (m *Manager) AddStatus(indices []int, status byteflag.Flag) {
	if ex := status & exclusive; ex != 0 {
		m.clear(ex)
	}
	for _, i := range indices {
		if m.valid(i) {
			m.status[i] = byteflag.Add(m.status[i], status)
		}
	}
}

// SetStatus sets status on exactly the given indices and clears it from
// every other sample. An empty slice clears it everywhere.
func (m *Manager) SetStatus(indices []int, status byteflag.Flag) {
	m.clear(status)
	for _, i := range indices {
		if m.valid(i) {
			m.status[i] = byteflag.Add(m.status[i], status)
		}
	}
}

// ClearStatus removes status from every sample.
func (m *Manager) ClearStatus(status byteflag.Flag) {
	m.clear(status)
}

func (m *Manager) clear(status byteflag.Flag) {
	for i := range m.status {
		m.status[i] = byteflag.Remove(m.status[i], status)
	}
}

func (m *Manager) valid(i int) bool {
	return i >= 0 && i < len(m.samples)
}

// View returns the current embedding.
func (m *Manager) View() models.View { return m.view }

// SetView switches the embedding used for geometry. Installed scales are
// dropped because they belong to the previous embedding.
func (m *Manager) SetView(v models.View) {
	if v != m.view {
		m.hasScale = false
	}
	m.view = v
}

// SetScales installs explicit pixel scales.
func (m *Manager) SetScales(x, y Scale) {
	m.xScale, m.yScale = x, y
	m.hasScale = true
}

// Scales returns the installed scales and whether any are installed.
func (m *Manager) Scales() (Scale, Scale, bool) {
	return m.xScale, m.yScale, m.hasScale
}

// FitScales derives scales from the extent of the current embedding,
// widened by AxisMargin, onto a width x height plot with the y axis
// pointing up.
func (m *Manager) FitScales(width, height float64) {
	xs := make([]float64, len(m.samples))
	ys := make([]float64, len(m.samples))
	for i, s := range m.samples {
		p := s.Embedding.At(m.view)
		xs[i], ys[i] = p.X(), p.Y()
	}
	x0, x1 := extentWithMargin(xs)
	y0, y1 := extentWithMargin(ys)
	m.SetScales(NewScale(x0, x1, 0, width), NewScale(y0, y1, height, 0))
}

// PixelOf returns the pixel position of sample i under the current scales.
func (m *Manager) PixelOf(i int) (float64, float64) {
	p := m.samples[i].Embedding.At(m.view)
	return m.xScale.Apply(p.X()), m.yScale.Apply(p.Y())
}

// FindNearest returns the index of the sample closest to pixel (px, py)
// that lies within radius, or -1 when none does or no scales are set.
func (m *Manager) FindNearest(px, py, radius float64) int {
	if !m.hasScale {
		return -1
	}
	best := -1
	bestDist := radius
	for i := range m.samples {
		x, y := m.PixelOf(i)
		d := stats.EuclideanDistance(px, py, x, y)
		if d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Layers partitions every sample into the groups a scatterplot draws, in
// draw order. A sample belongs to the first matching group of
// Active, Neighbour, not FilteredOut, FilteredOut.
type Layers struct {
	FilteredOut []int `json:"filtered_out"`
	Visible     []int `json:"visible"`
	Neighbours  []int `json:"neighbours"`
	Active      int   `json:"active"`
}

// Layers classifies every sample by status. Active is -1 when no sample
// is active.
func (m *Manager) Layers() Layers {
	l := Layers{
		FilteredOut: make([]int, 0),
		Visible:     make([]int, 0, len(m.samples)),
		Neighbours:  make([]int, 0),
		Active:      -1,
	}
	for i, f := range m.status {
		switch {
		case byteflag.Check(f, Active):
			l.Active = i
		case byteflag.Check(f, Neighbour):
			l.Neighbours = append(l.Neighbours, i)
		case !byteflag.Check(f, FilteredOut):
			l.Visible = append(l.Visible, i)
		default:
			l.FilteredOut = append(l.FilteredOut, i)
		}
	}
	return l
}
