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
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/microscopium-browser/internal/logging"
	"github.com/tomtom215/microscopium-browser/internal/metrics"
	"github.com/tomtom215/microscopium-browser/internal/models"
	"github.com/tomtom215/microscopium-browser/internal/validation"
)

// ErrInvalidSeed is returned when a seed document fails validation. Nothing
// is written in that case.
var ErrInvalidSeed = errors.New("invalid seed document")

// Seed is the import document format.
type Seed struct {
	Screens []models.Screen `json:"screens"`
	Samples []models.Sample `json:"samples"`
}

// ImportResult counts the records written by ImportSeed.
type ImportResult struct {
	Screens int `json:"screens"`
	Samples int `json:"samples"`
}

// ImportSeed decodes a seed document from r, validates every record and
// upserts the whole document in one transaction. Samples must belong to a
// screen of the document or one already stored.
func (db *DB) ImportSeed(ctx context.Context, r io.Reader) (ImportResult, error) {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return db.Import(ctx, &seed)
}

// Import validates and upserts an already decoded seed.
func (db *DB) Import(ctx context.Context, seed *Seed) (ImportResult, error) {
	if err := db.validateSeed(ctx, seed); err != nil {
		return ImportResult{}, err
	}

	start := time.Now()
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		if err := upsertScreens(ctx, tx, seed.Screens); err != nil {
			return err
		}
		return upsertSamples(ctx, tx, seed.Samples)
	})
	metrics.RecordDBQuery("UPSERT", "samples", time.Since(start), err)
	if err != nil {
		return ImportResult{}, err
	}

	metrics.SeedRecordsImported.WithLabelValues("screen").Add(float64(len(seed.Screens)))
	metrics.SeedRecordsImported.WithLabelValues("sample").Add(float64(len(seed.Samples)))
	logging.Ctx(ctx).Info().
		Int("screens", len(seed.Screens)).
		Int("samples", len(seed.Samples)).
		Dur("duration", time.Since(start)).
		Msg("Seed imported")

	return ImportResult{Screens: len(seed.Screens), Samples: len(seed.Samples)}, nil
}

func (db *DB) validateSeed(ctx context.Context, seed *Seed) error {
	known := make(map[string]bool, len(seed.Screens))
	for i := range seed.Screens {
		if verr := validation.ValidateStruct(&seed.Screens[i]); verr != nil {
			return fmt.Errorf("%w: screens[%d]: %s", ErrInvalidSeed, i, verr.Error())
		}
		known[seed.Screens[i].ID] = true
	}

	sampleIDs := make(map[string]bool, len(seed.Samples))
	for i := range seed.Samples {
		s := &seed.Samples[i]
		if verr := validation.ValidateStruct(s); verr != nil {
			return fmt.Errorf("%w: samples[%d]: %s", ErrInvalidSeed, i, verr.Error())
		}
		if sampleIDs[s.ID] {
			return fmt.Errorf("%w: samples[%d]: duplicate id %q", ErrInvalidSeed, i, s.ID)
		}
		sampleIDs[s.ID] = true

		if known[s.Screen] {
			continue
		}
		if _, err := db.GetScreen(ctx, s.Screen); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: samples[%d]: unknown screen %q", ErrInvalidSeed, i, s.Screen)
			}
			return err
		}
		known[s.Screen] = true
	}
	return nil
}

// withTx runs fn in a transaction, committing on success.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logging.Warn().Err(rbErr).Msg("Failed to roll back transaction")
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func upsertScreens(ctx context.Context, tx *sql.Tx, screens []models.Screen) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO screens (id, name, description, features)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			features = excluded.features,
			imported_at = current_timestamp`)
	if err != nil {
		return fmt.Errorf("failed to prepare screen upsert: %w", err)
	}
	defer closeWithLog(stmt, "screen statement")

	for _, s := range screens {
		features, err := marshalList(s.Features)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, s.ID, s.Name, s.Description, features); err != nil {
			return fmt.Errorf("failed to upsert screen %s: %w", s.ID, err)
		}
	}
	return nil
}

func upsertSamples(ctx context.Context, tx *sql.Tx, samples []models.Sample) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO samples (id, screen, gene_name, control_pos, control_neg, plate_row,
			plate_column, plate, neighbours, feature_vector, tsne_x, tsne_y, pca_x, pca_y)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			screen = excluded.screen,
			gene_name = excluded.gene_name,
			control_pos = excluded.control_pos,
			control_neg = excluded.control_neg,
			plate_row = excluded.plate_row,
			plate_column = excluded.plate_column,
			plate = excluded.plate,
			neighbours = excluded.neighbours,
			feature_vector = excluded.feature_vector,
			tsne_x = excluded.tsne_x,
			tsne_y = excluded.tsne_y,
			pca_x = excluded.pca_x,
			pca_y = excluded.pca_y`)
	if err != nil {
		return fmt.Errorf("failed to prepare sample upsert: %w", err)
	}
	defer closeWithLog(stmt, "sample statement")

	for i := range samples {
		s := &samples[i]
		neighbours, err := marshalList(s.Neighbours)
		if err != nil {
			return err
		}
		features, err := marshalList(s.FeatureVector)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, s.ID, s.Screen, s.GeneName, s.ControlPos, s.ControlNeg,
			s.Row, s.Column, s.Plate, neighbours, features,
			s.Embedding.TSNE.X(), s.Embedding.TSNE.Y(), s.Embedding.PCA.X(), s.Embedding.PCA.Y()); err != nil {
			return fmt.Errorf("failed to upsert sample %s: %w", s.ID, err)
		}
	}
	return nil
}

// marshalList encodes a slice as JSON text, nil as "[]".
func marshalList[T any](list []T) (string, error) {
	if list == nil {
		return "[]", nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(b), nil
}
