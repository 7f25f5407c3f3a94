// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package services

import (
	"context"
	"time"

	"github.com/tomtom215/microscopium-browser/internal/logging"
)

// SessionJanitor is satisfied by *session.Service.
type SessionJanitor interface {
	Cleanup(ctx context.Context) (int, error)
}

// SessionCleanupService evicts idle browsing sessions and deletes their
// expired snapshots on a fixed interval.
//
// A failed sweep is logged and retried on the next tick; the service only
// returns when its context ends.
type SessionCleanupService struct {
	janitor  SessionJanitor
	interval time.Duration
	name     string
}

// NewSessionCleanupService creates the cleanup ticker. A non-positive
// interval falls back to 5m.
func NewSessionCleanupService(janitor SessionJanitor, interval time.Duration) *SessionCleanupService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SessionCleanupService{
		janitor:  janitor,
		interval: interval,
		name:     "session-cleanup",
	}
}

// Serve implements suture.Service.
func (s *SessionCleanupService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionCleanupService) sweep(ctx context.Context) {
	removed, err := s.janitor.Cleanup(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logging.Warn().Err(err).Msg("Session cleanup failed")
		}
		return
	}
	if removed > 0 {
		logging.Debug().Int("removed", removed).Msg("Session snapshots removed")
	}
}

func (s *SessionCleanupService) String() string {
	return s.name
}
