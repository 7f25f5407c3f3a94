// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/microscopium-browser/internal/metrics"
	"github.com/tomtom215/microscopium-browser/internal/models"
)

const screenColumns = `s.id, s.name, s.description, s.features,
	(SELECT count(*) FROM samples WHERE samples.screen = s.id) AS num_samples`

// ListScreens returns every screen ordered by id.
func (db *DB) ListScreens(ctx context.Context) (screens []models.Screen, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("SELECT", "screens", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, "SELECT "+screenColumns+" FROM screens s ORDER BY s.id")
	if err != nil {
		return nil, fmt.Errorf("failed to query screens: %w", err)
	}
	defer closeWithLog(rows, "screen rows")

	screens = make([]models.Screen, 0)
	for rows.Next() {
		s, err := scanScreen(rows)
		if err != nil {
			return nil, err
		}
		screens = append(screens, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate screens: %w", err)
	}
	return screens, nil
}

// GetScreen returns one screen, or ErrNotFound.
func (db *DB) GetScreen(ctx context.Context, id string) (screen *models.Screen, err error) {
	start := time.Now()
	defer func() {
		if errors.Is(err, ErrNotFound) {
			metrics.RecordDBQuery("SELECT", "screens", time.Since(start), nil)
			return
		}
		metrics.RecordDBQuery("SELECT", "screens", time.Since(start), err)
	}()

	row := db.conn.QueryRowContext(ctx, "SELECT "+screenColumns+" FROM screens s WHERE s.id = ?", id)
	s, err := scanScreen(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("screen %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SamplesForScreen returns the samples of a screen ordered by id. A known
// screen without samples yields an empty slice; an unknown one ErrNotFound.
func (db *DB) SamplesForScreen(ctx context.Context, screenID string) ([]models.Sample, error) {
	if _, err := db.GetScreen(ctx, screenID); err != nil {
		return nil, err
	}

	start := time.Now()
	samples, err := db.querySamples(ctx, screenID)
	metrics.RecordDBQuery("SELECT", "samples", time.Since(start), err)
	return samples, err
}

func (db *DB) querySamples(ctx context.Context, screenID string) ([]models.Sample, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, screen, gene_name, control_pos, control_neg, plate_row, plate_column, plate,
			neighbours, feature_vector, tsne_x, tsne_y, pca_x, pca_y
		FROM samples
		WHERE screen = ?
		ORDER BY id`, screenID)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer closeWithLog(rows, "sample rows")

	samples := make([]models.Sample, 0)
	for rows.Next() {
		var (
			s                    models.Sample
			neighbours, features string
			tsneX, tsneY, pX, pY float64
		)
		if err := rows.Scan(&s.ID, &s.Screen, &s.GeneName, &s.ControlPos, &s.ControlNeg,
			&s.Row, &s.Column, &s.Plate, &neighbours, &features, &tsneX, &tsneY, &pX, &pY); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		if err := json.Unmarshal([]byte(neighbours), &s.Neighbours); err != nil {
			return nil, fmt.Errorf("sample %s: bad neighbours: %w", s.ID, err)
		}
		if err := json.Unmarshal([]byte(features), &s.FeatureVector); err != nil {
			return nil, fmt.Errorf("sample %s: bad feature vector: %w", s.ID, err)
		}
		s.Embedding = models.Embedding{
			TSNE: models.Point{tsneX, tsneY},
			PCA:  models.Point{pX, pY},
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate samples: %w", err)
	}
	return samples, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScreen(row rowScanner) (models.Screen, error) {
	var (
		s          models.Screen
		features   string
		numSamples int64
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &features, &numSamples); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, err
		}
		return s, fmt.Errorf("failed to scan screen: %w", err)
	}
	if err := json.Unmarshal([]byte(features), &s.Features); err != nil {
		return s, fmt.Errorf("screen %s: bad features: %w", s.ID, err)
	}
	s.NumSamples = int(numSamples)
	return s, nil
}
