// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package session

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/microscopium-browser/internal/filter"
	"github.com/tomtom215/microscopium-browser/internal/history"
	"github.com/tomtom215/microscopium-browser/internal/models"
)

func newInMemoryBadger(t *testing.T) *BadgerStore {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	store := NewBadgerStore(db, 0)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func storeFactories() map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"memory": func(*testing.T) Store { return NewMemoryStore() },
		"badger": func(t *testing.T) Store { return newInMemoryBadger(t) },
	}
}

func testSnapshot(id string, updated time.Time) *Snapshot {
	return &Snapshot{
		ID:       id,
		ScreenID: "s1",
		View:     models.ViewPCA,
		Filter:   filter.Query{Rows: []string{"A"}, Genes: []string{"Mbnl1"}},
		History: history.Snapshot{
			Entries: []string{"s1-1-A01", "s1-1-A02"},
			Cursor:  1,
			Last:    "s1-1-A02",
			HasLast: true,
		},
		CreatedAt: updated.Add(-time.Minute),
		UpdatedAt: updated,
	}
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			store := factory(t)
			ctx := context.Background()

			if _, err := store.Load(ctx, "a"); !errors.Is(err, ErrSessionNotFound) {
				t.Fatalf("Load(missing) err = %v, want ErrSessionNotFound", err)
			}

			snap := testSnapshot("a", now)
			if err := store.Save(ctx, snap); err != nil {
				t.Fatalf("Save: %v", err)
			}
			snap.History.Entries[0] = "changed"

			got, err := store.Load(ctx, "a")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			want := testSnapshot("a", now)
			if !reflect.DeepEqual(got.History, want.History) {
				t.Errorf("History = %+v, want %+v", got.History, want.History)
			}
			if !reflect.DeepEqual(got.Filter, want.Filter) {
				t.Errorf("Filter = %+v, want %+v", got.Filter, want.Filter)
			}
			if got.View != want.View || got.ScreenID != want.ScreenID {
				t.Errorf("got %+v", got)
			}
			if !got.UpdatedAt.Equal(want.UpdatedAt) {
				t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, want.UpdatedAt)
			}

			if err := store.Delete(ctx, "a"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if err := store.Delete(ctx, "a"); err != nil {
				t.Errorf("second Delete: %v", err)
			}
			if _, err := store.Load(ctx, "a"); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Load after Delete err = %v", err)
			}
		})
	}
}

func TestStore_DeleteExpired(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			store := factory(t)
			ctx := context.Background()

			for id, age := range map[string]time.Duration{
				"old":    3 * time.Hour,
				"older":  5 * time.Hour,
				"recent": 10 * time.Minute,
			} {
				if err := store.Save(ctx, testSnapshot(id, now.Add(-age))); err != nil {
					t.Fatal(err)
				}
			}

			removed, err := store.DeleteExpired(ctx, now.Add(-2*time.Hour))
			if err != nil {
				t.Fatalf("DeleteExpired: %v", err)
			}
			if removed != 2 {
				t.Errorf("removed = %d, want 2", removed)
			}
			n, err := store.Count(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if n != 1 {
				t.Errorf("Count = %d, want 1", n)
			}
			if _, err := store.Load(ctx, "recent"); err != nil {
				t.Errorf("Load(recent): %v", err)
			}
		})
	}
}

func TestService_WithBadgerStore(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.store = newInMemoryBadger(t)
	f.svc = f.newService()
	ctx := context.Background()

	if _, err := f.svc.Open(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Select(ctx, "sess-1", "s1-2-B01"); err != nil {
		t.Fatal(err)
	}

	state, err := f.newService().Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get from badger: %v", err)
	}
	if state.History.Current != "s1-2-B01" {
		t.Errorf("Current = %q, want s1-2-B01", state.History.Current)
	}
}
