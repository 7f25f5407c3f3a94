// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/microscopium-browser/internal/config"
	"github.com/tomtom215/microscopium-browser/internal/database"
	"github.com/tomtom215/microscopium-browser/internal/filter"
	"github.com/tomtom215/microscopium-browser/internal/logging"
	"github.com/tomtom215/microscopium-browser/internal/models"
)

func TestMain(m *testing.M) {
	logging.Init(logging.Config{Level: "error", Output: io.Discard})
	os.Exit(m.Run())
}

// fakeDataset serves two small screens from memory.
type fakeDataset struct {
	mu      sync.Mutex
	screens map[string]models.Screen
	samples map[string][]models.Sample
	err     error
	calls   int
}

func newFakeDataset() *fakeDataset {
	point := func(x, y float64) models.Embedding {
		return models.Embedding{TSNE: models.Point{x, y}, PCA: models.Point{y, -x}}
	}
	return &fakeDataset{
		screens: map[string]models.Screen{
			"s1": {ID: "s1", Name: "Screen one", NumSamples: 4},
			"s2": {ID: "s2", Name: "Screen two", NumSamples: 1},
		},
		samples: map[string][]models.Sample{
			"s1": {
				{ID: "s1-1-A01", Screen: "s1", GeneName: "Mbnl1", Row: "A", Column: 1, Plate: 1,
					Neighbours: []string{"s1-1-A02", "s1-2-B01"}, Embedding: point(0.5, 0.5)},
				{ID: "s1-1-A02", Screen: "s1", GeneName: "Fxr1", Row: "A", Column: 2, Plate: 1,
					Embedding: point(-0.5, 0.5)},
				{ID: "s1-2-B01", Screen: "s1", GeneName: "Mbnl1", Row: "B", Column: 1, Plate: 2,
					Neighbours: []string{"s1-1-A01"}, Embedding: point(0.5, -0.5)},
				{ID: "s1-2-B02", Screen: "s1", Row: "B", Column: 2, Plate: 2,
					Embedding: point(-0.5, -0.5)},
			},
			"s2": {
				{ID: "s2-1-A01", Screen: "s2", GeneName: "Cdk1", Row: "A", Column: 1, Plate: 1,
					Embedding: point(0, 0)},
			},
		},
	}
}

func (f *fakeDataset) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeDataset) ListScreens(_ context.Context) ([]models.Screen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []models.Screen{f.screens["s1"], f.screens["s2"]}, nil
}

func (f *fakeDataset) GetScreen(_ context.Context, id string) (*models.Screen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.screens[id]
	if !ok {
		return nil, fmt.Errorf("screen %s: %w", id, database.ErrNotFound)
	}
	return &s, nil
}

func (f *fakeDataset) SamplesForScreen(_ context.Context, id string) ([]models.Sample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	list, ok := f.samples[id]
	if !ok {
		return nil, fmt.Errorf("screen %s: %w", id, database.ErrNotFound)
	}
	return append([]models.Sample(nil), list...), nil
}

type event struct {
	session string
	typ     string
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []event
}

func (r *recordingBroadcaster) BroadcastToSession(sessionID, msgType string, _ interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{session: sessionID, typ: msgType})
}

func (r *recordingBroadcaster) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.typ)
	}
	return out
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	svc   *Service
	data  *fakeDataset
	store Store
	clock *fakeClock
	bc    *recordingBroadcaster
}

func newFixture(t *testing.T, mutate ...func(*config.SessionConfig)) *fixture {
	t.Helper()
	f := &fixture{
		data:  newFakeDataset(),
		store: NewMemoryStore(),
		clock: &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		bc:    &recordingBroadcaster{},
	}
	f.svc = f.newService(mutate...)
	return f
}

func (f *fixture) newService(mutate ...func(*config.SessionConfig)) *Service {
	sessCfg := config.SessionConfig{TTL: time.Hour}
	for _, m := range mutate {
		m(&sessCfg)
	}
	n := 0
	return NewService(f.data, f.store, sessCfg,
		config.PlotConfig{Width: 200, Height: 100, PickRadius: 5},
		WithBroadcaster(f.bc),
		WithClock(f.clock.Now),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("sess-%d", n)
		}),
	)
}

func TestService_Open(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	state, err := f.svc.Open(ctx, "s1")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if state.ID != "sess-1" || state.Screen.ID != "s1" {
		t.Errorf("state = %+v", state)
	}
	if state.View != models.ViewTSNE {
		t.Errorf("View = %q, want tsne", state.View)
	}
	if state.History.Cursor != -1 || state.History.CanBack || state.History.CanForward {
		t.Errorf("History = %+v, want empty", state.History)
	}
	if state.FilterActive {
		t.Error("FilterActive = true on a new session")
	}

	got, err := f.svc.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Screen.ID != "s1" {
		t.Errorf("Get screen = %q", got.Screen.ID)
	}
	if n, _ := f.store.Count(ctx); n != 1 {
		t.Errorf("stored snapshots = %d, want 1", n)
	}
}

func TestService_Open_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	if _, err := f.svc.Open(ctx, "missing"); !errors.Is(err, ErrScreenNotFound) {
		t.Errorf("Open(missing) err = %v, want ErrScreenNotFound", err)
	}
	if _, err := f.svc.Get(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(nope) err = %v, want ErrSessionNotFound", err)
	}

	limited := newFixture(t, func(c *config.SessionConfig) { c.MaxSessions = 1 })
	if _, err := limited.svc.Open(ctx, "s1"); err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := limited.svc.Open(ctx, "s1"); !errors.Is(err, ErrTooManySessions) {
		t.Errorf("second Open err = %v, want ErrTooManySessions", err)
	}
}

func TestService_Select(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	sel, err := f.svc.Select(ctx, "sess-1", "s1-1-A01")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Sample.ID != "s1-1-A01" {
		t.Errorf("Sample = %q", sel.Sample.ID)
	}
	if want := []string{"s1-1-A02", "s1-2-B01"}; !reflect.DeepEqual(sel.Neighbours, want) {
		t.Errorf("Neighbours = %v, want %v", sel.Neighbours, want)
	}
	if sel.Layers.Active != 0 {
		t.Errorf("Layers.Active = %d, want 0", sel.Layers.Active)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(sel.Layers.Neighbours, want) {
		t.Errorf("Layers.Neighbours = %v, want %v", sel.Layers.Neighbours, want)
	}
	if want := []int{3}; !reflect.DeepEqual(sel.Layers.Visible, want) {
		t.Errorf("Layers.Visible = %v, want %v", sel.Layers.Visible, want)
	}

	if _, err := f.svc.Select(ctx, "sess-1", "s2-1-A01"); !errors.Is(err, ErrSampleNotFound) {
		t.Errorf("Select(other screen) err = %v, want ErrSampleNotFound", err)
	}
	if got := f.bc.types(); !reflect.DeepEqual(got, []string{EventSelection}) {
		t.Errorf("events = %v", got)
	}
}

func TestService_Navigation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"s1-1-A01", "s1-1-A02", "s1-2-B01"} {
		if _, err := f.svc.Select(ctx, "sess-1", id); err != nil {
			t.Fatalf("Select(%s): %v", id, err)
		}
	}

	steps := []struct {
		name       string
		back       bool
		wantMoved  bool
		wantID     string
		wantActive int
	}{
		{"back to A02", true, true, "s1-1-A02", 1},
		{"back to A01", true, true, "s1-1-A01", 0},
		{"back at start", true, false, "", 0},
		{"forward to A02", false, true, "s1-1-A02", 1},
		{"forward to B01", false, true, "s1-2-B01", 2},
		{"forward at tail", false, false, "", 2},
	}
	for _, step := range steps {
		var nav Navigation
		var err error
		if step.back {
			nav, err = f.svc.Back(ctx, "sess-1")
		} else {
			nav, err = f.svc.Forward(ctx, "sess-1")
		}
		if err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if nav.Moved != step.wantMoved || nav.Current != step.wantID {
			t.Errorf("%s: moved=%v current=%q, want %v %q", step.name, nav.Moved, nav.Current, step.wantMoved, step.wantID)
		}
		if nav.Layers.Active != step.wantActive {
			t.Errorf("%s: active = %d, want %d", step.name, nav.Layers.Active, step.wantActive)
		}
	}

	// Selecting after going back drops the forward entries.
	if _, err := f.svc.Back(ctx, "sess-1"); err != nil {
		t.Fatal(err)
	}
	sel, err := f.svc.Select(ctx, "sess-1", "s1-2-B02")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"s1-1-A01", "s1-1-A02", "s1-2-B02"}
	if !reflect.DeepEqual(sel.History.Entries, want) {
		t.Errorf("Entries = %v, want %v", sel.History.Entries, want)
	}
	if sel.History.CanForward {
		t.Error("CanForward = true after a new selection")
	}
}

func TestService_ApplyFilter(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	res, err := f.svc.ApplyFilter(ctx, "sess-1", filter.Query{Rows: []string{"A"}})
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	if !res.Active || res.FilteredOut != 2 {
		t.Errorf("result = %+v, want active with 2 filtered out", res)
	}
	if want := []int{2, 3}; !reflect.DeepEqual(res.Layers.FilteredOut, want) {
		t.Errorf("FilteredOut = %v, want %v", res.Layers.FilteredOut, want)
	}

	// A filtered-out neighbour is still drawn as a neighbour.
	sel, err := f.svc.Select(ctx, "sess-1", "s1-1-A01")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(sel.Layers.Neighbours, want) {
		t.Errorf("Neighbours = %v, want %v", sel.Layers.Neighbours, want)
	}
	if want := []int{3}; !reflect.DeepEqual(sel.Layers.FilteredOut, want) {
		t.Errorf("FilteredOut = %v, want %v", sel.Layers.FilteredOut, want)
	}

	res, err = f.svc.ApplyFilter(ctx, "sess-1", filter.Query{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Active || res.FilteredOut != 0 || len(res.Layers.FilteredOut) != 0 {
		t.Errorf("cleared filter result = %+v", res)
	}
}

func TestService_FilterOptions(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	choices, err := f.svc.FilterOptions(ctx, "sess-1", "mbn")
	if err != nil {
		t.Fatalf("FilterOptions: %v", err)
	}
	if want := []string{"Mbnl1"}; !reflect.DeepEqual(choices.Matches, want) {
		t.Errorf("Matches = %v, want %v", choices.Matches, want)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(choices.Options.Rows, want) {
		t.Errorf("Rows = %v, want %v", choices.Options.Rows, want)
	}

	if _, err := f.svc.ApplyFilter(ctx, "sess-1", filter.Query{Genes: []string{"Mbnl1"}}); err != nil {
		t.Fatal(err)
	}
	choices, err = f.svc.FilterOptions(ctx, "sess-1", "")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Fxr1"}; !reflect.DeepEqual(choices.Matches, want) {
		t.Errorf("Matches = %v, want %v", choices.Matches, want)
	}
	if want := []string{"Mbnl1"}; !reflect.DeepEqual(choices.Selected, want) {
		t.Errorf("Selected = %v, want %v", choices.Selected, want)
	}
}

func TestService_ViewAndPick(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.SetView(ctx, "sess-1", "umap"); !errors.Is(err, ErrInvalidView) {
		t.Errorf("SetView(umap) err = %v, want ErrInvalidView", err)
	}

	scene, err := f.svc.SetView(ctx, "sess-1", "pca")
	if err != nil {
		t.Fatalf("SetView: %v", err)
	}
	if scene.View != models.ViewPCA || len(scene.Points) != 4 {
		t.Fatalf("scene = %+v", scene)
	}
	if scene.Width != 200 || scene.Height != 100 {
		t.Errorf("scene size = %vx%v", scene.Width, scene.Height)
	}

	target := scene.Points[2]
	pick, err := f.svc.Pick(ctx, "sess-1", target.X+1, target.Y-1)
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if !pick.Found || pick.SampleID != "s1-2-B01" {
		t.Errorf("Pick = %+v, want s1-2-B01", pick)
	}

	pick, err = f.svc.Pick(ctx, "sess-1", -500, -500)
	if err != nil {
		t.Fatal(err)
	}
	if pick.Found {
		t.Errorf("Pick far away = %+v, want not found", pick)
	}

	state, err := f.svc.Get(ctx, "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if state.View != models.ViewPCA {
		t.Errorf("state view = %q, want pca", state.View)
	}
}

func TestService_SwitchScreen(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Select(ctx, "sess-1", "s1-1-A01"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.ApplyFilter(ctx, "sess-1", filter.Query{Plates: []int{1}}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.SwitchScreen(ctx, "sess-1", "missing"); !errors.Is(err, ErrScreenNotFound) {
		t.Errorf("SwitchScreen(missing) err = %v", err)
	}

	state, err := f.svc.SwitchScreen(ctx, "sess-1", "s2")
	if err != nil {
		t.Fatalf("SwitchScreen: %v", err)
	}
	if state.Screen.ID != "s2" {
		t.Errorf("Screen = %q, want s2", state.Screen.ID)
	}
	if len(state.History.Entries) != 0 || state.History.Cursor != -1 {
		t.Errorf("History = %+v, want reset", state.History)
	}
	if !state.Filter.IsZero() || state.FilterActive {
		t.Errorf("Filter = %+v, want reset", state.Filter)
	}

	sel, err := f.svc.Select(ctx, "sess-1", "s2-1-A01")
	if err != nil {
		t.Fatal(err)
	}
	if len(sel.History.Entries) != 1 {
		t.Errorf("Entries = %v", sel.History.Entries)
	}

	want := []string{EventSelection, EventFilter, EventScreenSwitched, EventSelection}
	if got := f.bc.types(); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestService_RestoreFromStore(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"s1-1-A01", "s1-2-B01"} {
		if _, err := f.svc.Select(ctx, "sess-1", id); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.svc.Back(ctx, "sess-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.ApplyFilter(ctx, "sess-1", filter.Query{Columns: []int{1}}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.SetView(ctx, "sess-1", "pca"); err != nil {
		t.Fatal(err)
	}
	before, err := f.svc.Scene(ctx, "sess-1")
	if err != nil {
		t.Fatal(err)
	}

	// A second service over the same store starts with an empty cache.
	restarted := f.newService()
	state, err := restarted.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get after restart: %v", err)
	}
	if state.History.Current != "s1-1-A01" || !state.History.CanForward {
		t.Errorf("History = %+v", state.History)
	}
	if state.View != models.ViewPCA {
		t.Errorf("View = %q, want pca", state.View)
	}
	if !reflect.DeepEqual(state.Filter.Columns, []int{1}) {
		t.Errorf("Filter = %+v", state.Filter)
	}

	after, err := restarted.Scene(ctx, "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("restored scene differs:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestService_Expiry(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Open(ctx, "s2"); err != nil {
		t.Fatal(err)
	}

	f.clock.Advance(30 * time.Minute)
	if _, err := f.svc.Select(ctx, "sess-2", "s2-1-A01"); err != nil {
		t.Fatal(err)
	}
	f.clock.Advance(45 * time.Minute)

	removed, err := f.svc.Cleanup(ctx)
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, err := f.svc.Get(ctx, "sess-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(expired) err = %v, want ErrSessionNotFound", err)
	}
	if _, err := f.svc.Get(ctx, "sess-2"); err != nil {
		t.Errorf("Get(recent) err = %v", err)
	}
}

func TestService_Close(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	if err := f.svc.Close(ctx, "sess-1"); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := f.svc.Get(ctx, "sess-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after Close err = %v", err)
	}
	if err := f.svc.Close(ctx, "sess-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Close err = %v, want ErrSessionNotFound", err)
	}
	if n, _ := f.store.Count(ctx); n != 0 {
		t.Errorf("stored snapshots = %d, want 0", n)
	}
	if got := f.bc.types(); !reflect.DeepEqual(got, []string{EventSessionClosed}) {
		t.Errorf("events = %v", got)
	}
}

func TestService_CloseDuringSelect(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	sess, ok := f.svc.live.Get("sess-1")
	if !ok {
		t.Fatal("session not live")
	}

	sess.mu.Lock()
	selectErr := make(chan error, 1)
	go func() {
		_, err := f.svc.Select(ctx, "sess-1", "s1-1-A01")
		selectErr <- err
	}()
	time.Sleep(20 * time.Millisecond)
	closeErr := make(chan error, 1)
	go func() { closeErr <- f.svc.Close(ctx, "sess-1") }()
	time.Sleep(20 * time.Millisecond)
	sess.mu.Unlock()

	if err := <-closeErr; err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := <-selectErr; err != nil && !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Select: %v", err)
	}
	if _, err := f.svc.Get(ctx, "sess-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after Close err = %v, want ErrSessionNotFound", err)
	}
	if n, _ := f.store.Count(ctx); n != 0 {
		t.Errorf("stored snapshots = %d, want 0", n)
	}
}

func TestService_ConcurrentSelect(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	ids := []string{"s1-1-A01", "s1-1-A02", "s1-2-B01", "s1-2-B02"}
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := f.svc.Select(ctx, "sess-1", id); err != nil {
				t.Errorf("Select: %v", err)
			}
		}(ids[i%len(ids)])
	}
	wg.Wait()

	scene, err := f.svc.Scene(ctx, "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if scene.Layers.Active < 0 {
		t.Fatal("no active sample after concurrent selects")
	}
	if got := scene.Points[scene.Layers.Active].Labels; len(got) == 0 || got[0] != "active" {
		t.Errorf("active point labels = %v, want active first", got)
	}
}
