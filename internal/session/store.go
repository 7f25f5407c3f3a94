// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package session

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/microscopium-browser/internal/filter"
	"github.com/tomtom215/microscopium-browser/internal/history"
	"github.com/tomtom215/microscopium-browser/internal/models"
)

// Snapshot is the persisted form of a session. Samples and statuses are not
// stored; they are rebuilt from the screen, the history and the filter.
type Snapshot struct {
	ID        string           `json:"id"`
	ScreenID  string           `json:"screen_id"`
	View      models.View      `json:"view"`
	Filter    filter.Query     `json:"filter"`
	History   history.Snapshot `json:"history"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Store persists session snapshots so that sessions outlive the in-memory
// cache and, with a durable backend, process restarts.
type Store interface {
	// Save creates or replaces the snapshot for snap.ID.
	Save(ctx context.Context, snap *Snapshot) error

	// Load returns the snapshot for id, or ErrSessionNotFound.
	Load(ctx context.Context, id string) (*Snapshot, error)

	// Delete removes a snapshot. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes snapshots last updated before cutoff and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int, error)

	// Count returns the number of stored snapshots.
	Count(ctx context.Context) (int, error)

	// Close releases the store's resources.
	Close() error
}

// MemoryStore is an in-memory Store. Snapshots are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]Snapshot)}
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, snap *Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[snap.ID] = cloneSnapshot(snap)
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context, id string) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.snaps[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := cloneSnapshot(&snap)
	return &out, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snaps, id)
	return nil
}

// DeleteExpired implements Store.
func (m *MemoryStore) DeleteExpired(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, snap := range m.snaps {
		if snap.UpdatedAt.Before(cutoff) {
			delete(m.snaps, id)
			n++
		}
	}
	return n, nil
}

// Count implements Store.
func (m *MemoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.snaps), nil
}

// Close implements Store.
func (m *MemoryStore) Close() error { return nil }

// cloneSnapshot copies the slices of snap so stored snapshots cannot be
// changed through the caller's value.
func cloneSnapshot(snap *Snapshot) Snapshot {
	out := *snap
	out.History.Entries = append([]string(nil), snap.History.Entries...)
	out.Filter = filter.Query{
		Rows:    append([]string(nil), snap.Filter.Rows...),
		Columns: append([]int(nil), snap.Filter.Columns...),
		Plates:  append([]int(nil), snap.Filter.Plates...),
		Genes:   append([]string(nil), snap.Filter.Genes...),
	}
	return out
}
