// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package history tracks the sequence of samples a user has viewed and
// provides browser-style back/forward traversal over it.
//
// Adding an entry while the cursor is behind the tail prunes the entries
// after the cursor, so a new selection always becomes the tail. Navigating
// past either end is not an error: Back and Forward report it by returning
// false and leave the cursor where it was.
//
// A History is owned by a single caller and is not safe for concurrent use.
package history

import "fmt"

// History is a branch-on-write navigation list of sample identifiers.
// The zero value is an empty history ready to use.
type History struct {
	entries []string
	cursor  int // index of the current entry; meaningful only when len(entries) > 0
	last    string
	hasLast bool
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Add makes id the current entry.
//
// Adding the identifier that was added most recently is a no-op. Otherwise
// every entry after the cursor is discarded before id is appended.
func (h *History) Add(id string) {
	if h.hasLast && h.last == id {
		return
	}
	if len(h.entries) > 0 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, id)
	h.cursor = len(h.entries) - 1
	h.last = id
	h.hasLast = true
}

// Back moves the cursor one entry towards the start and returns the entry
// now current. It returns ("", false) without moving when there is nothing
// before the cursor.
func (h *History) Back() (string, bool) {
	if !h.CanBack() {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves the cursor one entry towards the tail and returns the entry
// now current. It returns ("", false) without moving when the cursor is
// already at the tail.
func (h *History) Forward() (string, bool) {
	if !h.CanForward() {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Reset empties the history and forgets the last added identifier.
func (h *History) Reset() {
	h.entries = nil
	h.cursor = 0
	h.last = ""
	h.hasLast = false
}

// CanBack reports whether Back would move the cursor.
func (h *History) CanBack() bool {
	return len(h.entries) > 0 && h.cursor > 0
}

// CanForward reports whether Forward would move the cursor.
func (h *History) CanForward() bool {
	return len(h.entries) > 0 && h.cursor < len(h.entries)-1
}

// Len returns the number of reachable entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the current entry, or -1 when empty.
func (h *History) Cursor() int {
	if len(h.entries) == 0 {
		return -1
	}
	return h.cursor
}

// Current returns the current entry, or ("", false) when empty.
func (h *History) Current() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[h.cursor], true
}

// Entries returns a copy of the reachable entries in order.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Snapshot is the serialisable state of a History.
type Snapshot struct {
	Entries []string `json:"entries"`
	Cursor  int      `json:"cursor"`
	Last    string   `json:"last,omitempty"`
	HasLast bool     `json:"has_last,omitempty"`
}

// Snapshot captures the current state.
func (h *History) Snapshot() Snapshot {
	return Snapshot{
		Entries: h.Entries(),
		Cursor:  h.Cursor(),
		Last:    h.last,
		HasLast: h.hasLast,
	}
}

// Restore replaces the state with s. The cursor must index an entry, or be
// -1 for an empty snapshot.
func (h *History) Restore(s Snapshot) error {
	switch {
	case len(s.Entries) == 0 && s.Cursor != -1:
		return fmt.Errorf("history snapshot: cursor %d on empty history", s.Cursor)
	case len(s.Entries) > 0 && (s.Cursor < 0 || s.Cursor >= len(s.Entries)):
		return fmt.Errorf("history snapshot: cursor %d out of range [0, %d)", s.Cursor, len(s.Entries))
	}

	h.entries = append([]string(nil), s.Entries...)
	h.cursor = s.Cursor
	if len(h.entries) == 0 {
		h.cursor = 0
	}
	h.last = s.Last
	h.hasLast = s.HasLast
	return nil
}
