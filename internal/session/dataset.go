// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package session

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/microscopium-browser/internal/config"
	"github.com/tomtom215/microscopium-browser/internal/database"
	"github.com/tomtom215/microscopium-browser/internal/logging"
	"github.com/tomtom215/microscopium-browser/internal/metrics"
	"github.com/tomtom215/microscopium-browser/internal/models"
)

// Dataset is the read side of the screening store. Unknown screens are
// reported with an error wrapping ErrScreenNotFound or database.ErrNotFound.
type Dataset interface {
	ListScreens(ctx context.Context) ([]models.Screen, error)
	GetScreen(ctx context.Context, id string) (*models.Screen, error)
	SamplesForScreen(ctx context.Context, screenID string) ([]models.Sample, error)
}

// BreakerDataset guards a Dataset with a circuit breaker. Not-found results
// and cancelled requests do not count as failures. While the breaker is
// open every call fails fast with ErrUnavailable.
type BreakerDataset struct {
	next Dataset
	cb   *gobreaker.CircuitBreaker[interface{}]
	name string
}

// NewBreakerDataset wraps next with a breaker tuned by cfg.
func NewBreakerDataset(next Dataset, cfg config.BreakerConfig) *BreakerDataset {
	name := "screening-store"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	threshold := cfg.FailureThreshold
	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= threshold
			if trip {
				logging.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isNotFound(err) ||
				errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &BreakerDataset{next: next, cb: cb, name: name}
}

// State returns the breaker state.
func (b *BreakerDataset) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerDataset) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		return result, nil
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return nil, err
	}
}

// ListScreens implements Dataset.
func (b *BreakerDataset) ListScreens(ctx context.Context) ([]models.Screen, error) {
	res, err := b.execute(func() (interface{}, error) { return b.next.ListScreens(ctx) })
	if err != nil {
		return nil, err
	}
	return res.([]models.Screen), nil
}

// GetScreen implements Dataset.
func (b *BreakerDataset) GetScreen(ctx context.Context, id string) (*models.Screen, error) {
	res, err := b.execute(func() (interface{}, error) { return b.next.GetScreen(ctx, id) })
	if err != nil {
		return nil, err
	}
	return res.(*models.Screen), nil
}

// SamplesForScreen implements Dataset.
func (b *BreakerDataset) SamplesForScreen(ctx context.Context, screenID string) ([]models.Sample, error) {
	res, err := b.execute(func() (interface{}, error) { return b.next.SamplesForScreen(ctx, screenID) })
	if err != nil {
		return nil, err
	}
	return res.([]models.Sample), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrScreenNotFound) || errors.Is(err, database.ErrNotFound)
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
