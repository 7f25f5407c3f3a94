// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package samples

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/microscopium-browser/internal/byteflag"
	"github.com/tomtom215/microscopium-browser/internal/models"
)

// The coordinates below do not come from a real screen.
func testSamples() []models.Sample {
	return []models.Sample{
		{ID: "test-A", Embedding: models.Embedding{TSNE: models.Point{0.5, 0.5}, PCA: models.Point{0, 0.25}}},
		{ID: "test-B", Embedding: models.Embedding{TSNE: models.Point{-0.5, 0.5}, PCA: models.Point{0.25, 0}}},
		{ID: "test-C", Embedding: models.Embedding{TSNE: models.Point{0.5, -0.5}, PCA: models.Point{0, -0.25}}},
		{ID: "test-D", Embedding: models.Embedding{TSNE: models.Point{-0.5, -0.5}, PCA: models.Point{-0.25, 0}}},
	}
}

// newTestManager uses x in [-1, 1] -> [0, 100] and y in [-1, 1] -> [100, 0].
func newTestManager() *Manager {
	m := New(testSamples())
	m.SetScales(NewScale(-1, 1, 0, 100), NewScale(-1, 1, 100, 0))
	return m
}

func TestAddStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		apply func(m *Manager)
		want  []byteflag.Flag
	}{
		{
			name:  "single index",
			apply: func(m *Manager) { m.AddStatus([]int{0}, Active) },
			want:  []byteflag.Flag{Active, 0, 0, 0},
		},
		{
			name:  "set of indices",
			apply: func(m *Manager) { m.AddStatus([]int{0, 2}, FilteredOut) },
			want:  []byteflag.Flag{FilteredOut, 0, FilteredOut, 0},
		},
		{
			name: "more than one status",
			apply: func(m *Manager) {
				m.AddStatus([]int{0}, Active)
				m.AddStatus([]int{1}, FilteredOut)
				m.AddStatus([]int{1, 2}, Selected)
			},
			want: []byteflag.Flag{Active, Selected | FilteredOut, Selected, 0},
		},
		{
			name: "exclusive statuses move",
			apply: func(m *Manager) {
				m.AddStatus([]int{0}, Active)
				m.AddStatus([]int{2, 3}, Selected)
				m.AddStatus([]int{1}, Active)
				m.AddStatus([]int{0, 2}, Selected)
			},
			want: []byteflag.Flag{Selected, Active, Selected, 0},
		},
		{
			name: "non exclusive statuses accumulate",
			apply: func(m *Manager) {
				m.AddStatus([]int{0}, Neighbour)
				m.AddStatus([]int{3}, Neighbour)
			},
			want: []byteflag.Flag{Neighbour, 0, 0, Neighbour},
		},
		{
			name:  "out of range ignored",
			apply: func(m *Manager) { m.AddStatus([]int{-1, 4, 1}, FilteredOut) },
			want:  []byteflag.Flag{0, FilteredOut, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newTestManager()
			tt.apply(m)
			if got := m.Statuses(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("statuses = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetStatus(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	m.AddStatus([]int{0}, Active)
	m.SetStatus([]int{1, 2}, FilteredOut)
	m.SetStatus([]int{2, 3}, FilteredOut)

	want := []byteflag.Flag{Active, 0, FilteredOut, FilteredOut}
	if got := m.Statuses(); !reflect.DeepEqual(got, want) {
		t.Errorf("statuses = %v, want %v", got, want)
	}

	m.SetStatus(nil, FilteredOut)
	want = []byteflag.Flag{Active, 0, 0, 0}
	if got := m.Statuses(); !reflect.DeepEqual(got, want) {
		t.Errorf("after clearing statuses = %v, want %v", got, want)
	}
}

func TestIndexLookup(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	if got := m.IndexOf("test-A"); got != 0 {
		t.Errorf("IndexOf(test-A) = %d, want 0", got)
	}
	if got := m.IndexOf("missing"); got != -1 {
		t.Errorf("IndexOf(missing) = %d, want -1", got)
	}

	got := m.IndicesOf([]string{"test-D", "test-A", "missing", "test-C"})
	if want := []int{3, 0, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("IndicesOf() = %v, want %v", got, want)
	}
	if ids := m.IDs([]int{2, 0, 9}); !reflect.DeepEqual(ids, []string{"test-C", "test-A"}) {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestFindNearest(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	tests := []struct {
		name   string
		px, py float64
		radius float64
		want   int
	}{
		{"top left quadrant", 22, 22, 5, 1},
		{"top right quadrant", 76, 24, 5, 0},
		{"bottom right quadrant", 75, 75, 5, 2},
		{"near center", 5, 5, 5, -1},
		{"large radius picks closest", 40, 30, 50, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := m.FindNearest(tt.px, tt.py, tt.radius); got != tt.want {
				t.Errorf("FindNearest(%v, %v, %v) = %d, want %d", tt.px, tt.py, tt.radius, got, tt.want)
			}
		})
	}
}

func TestFindNearest_NoScales(t *testing.T) {
	t.Parallel()

	m := New(testSamples())
	if got := m.FindNearest(25, 25, 100); got != -1 {
		t.Errorf("FindNearest without scales = %d, want -1", got)
	}
}

func TestSetView_SwitchesGeometry(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	m.SetView(models.ViewPCA)
	if _, _, ok := m.Scales(); ok {
		t.Fatal("changing view should drop scales")
	}
	m.SetScales(NewScale(-1, 1, 0, 100), NewScale(-1, 1, 100, 0))

	// test-B in PCA is (0.25, 0) -> pixel (62.5, 50)
	if got := m.FindNearest(62, 50, 2); got != 1 {
		t.Errorf("FindNearest in pca = %d, want 1", got)
	}

	m.SetView(models.ViewPCA)
	if _, _, ok := m.Scales(); !ok {
		t.Error("setting the same view should keep scales")
	}
}

func TestFitScales(t *testing.T) {
	t.Parallel()

	m := New(testSamples())
	m.FitScales(200, 100)

	x, y, ok := m.Scales()
	if !ok {
		t.Fatal("FitScales should install scales")
	}
	// t-SNE extent is [-0.5, 0.5], margin 0.02 -> [-0.52, 0.52]
	if math.Abs(x.Domain[0]+0.52) > 1e-9 || math.Abs(x.Domain[1]-0.52) > 1e-9 {
		t.Errorf("x domain = %v", x.Domain)
	}
	if x.Range != [2]float64{0, 200} || y.Range != [2]float64{100, 0} {
		t.Errorf("ranges = %v, %v", x.Range, y.Range)
	}

	// the highest point maps near the top of the plot
	_, py := m.PixelOf(0)
	if py >= 50 {
		t.Errorf("y axis should point up, got py=%v", py)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	s := NewScale(-1, 1, 100, 0)
	if got := s.Apply(0.5); got != 25 {
		t.Errorf("Apply(0.5) = %v, want 25", got)
	}

	flat := NewScale(3, 3, 0, 10)
	if got := flat.Apply(42); got != 5 {
		t.Errorf("degenerate Apply = %v, want 5", got)
	}
}

func TestLayers(t *testing.T) {
	t.Parallel()

	m := New(append(testSamples(), models.Sample{ID: "test-E"}, models.Sample{ID: "test-F"}))
	m.AddStatus([]int{1}, Active)
	m.SetStatus([]int{2, 3}, Neighbour)
	m.SetStatus([]int{1, 3, 4}, FilteredOut)

	got := m.Layers()
	want := Layers{
		FilteredOut: []int{4},
		Visible:     []int{0, 5},
		Neighbours:  []int{2, 3},
		Active:      1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Layers() = %+v, want %+v", got, want)
	}
}

func TestLayers_NoActive(t *testing.T) {
	t.Parallel()

	l := newTestManager().Layers()
	if l.Active != -1 {
		t.Errorf("Active = %d, want -1", l.Active)
	}
	if len(l.Visible) != 4 {
		t.Errorf("Visible = %v, want all four", l.Visible)
	}
}

func TestWithStatus(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	m.SetStatus([]int{3, 1}, Neighbour)
	if got := m.WithStatus(Neighbour); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("WithStatus() = %v", got)
	}
}

func TestStatusLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		flag byteflag.Flag
		want []string
	}{
		{"none", 0, nil},
		{"active", Active, []string{"active"}},
		{"neighbour filtered", Neighbour | FilteredOut, []string{"neighbour", "filtered_out"}},
		{"all", Active | Neighbour | FilteredOut | Selected, []string{"active", "neighbour", "filtered_out", "selected"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StatusLabels(tt.flag); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StatusLabels(%d) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}
