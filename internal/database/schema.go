// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext bounds schema statements run outside a request.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// Array valued fields are stored as JSON text so rows scan into plain Go
// strings. samples carries no secondary index: DuckDB rejects ON CONFLICT
// updates of indexed columns, and zonemaps serve the screen filter.
var tableQueries = []string{
	`CREATE TABLE IF NOT EXISTS screens (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		description VARCHAR NOT NULL DEFAULT '',
		features VARCHAR NOT NULL DEFAULT '[]',
		imported_at TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`,
	`CREATE TABLE IF NOT EXISTS samples (
		id VARCHAR PRIMARY KEY,
		screen VARCHAR NOT NULL,
		gene_name VARCHAR NOT NULL DEFAULT '',
		control_pos BOOLEAN NOT NULL DEFAULT false,
		control_neg BOOLEAN NOT NULL DEFAULT false,
		plate_row VARCHAR NOT NULL,
		plate_column INTEGER NOT NULL,
		plate INTEGER NOT NULL,
		neighbours VARCHAR NOT NULL DEFAULT '[]',
		feature_vector VARCHAR NOT NULL DEFAULT '[]',
		tsne_x DOUBLE NOT NULL,
		tsne_y DOUBLE NOT NULL,
		pca_x DOUBLE NOT NULL,
		pca_y DOUBLE NOT NULL
	)`,
}

func (db *DB) createTables(ctx context.Context) error {
	for _, q := range tableQueries {
		if _, err := db.conn.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
