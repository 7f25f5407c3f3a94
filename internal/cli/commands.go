// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomtom215/microscopium-browser/internal/config"
	"github.com/tomtom215/microscopium-browser/internal/database"
	"github.com/tomtom215/microscopium-browser/internal/logging"
)

// Store is what the commands need from the screening database.
type Store interface {
	Importer
	Catalog
	Close() error
}

// Opener opens the screening store at path, or at the configured path when
// path is empty.
type Opener func(path string) (Store, error)

// OpenDatabase is the default Opener. It loads the server configuration so
// the CLI and the server agree on DuckDB settings.
func OpenDatabase(path string) (Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Init(logging.Config{Level: "warn", Format: "console"})
	if path != "" {
		cfg.Database.Path = path
	}
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type rootOptions struct {
	dbPath string
	json   bool
	open   Opener
}

// New builds the screenctl command tree.
func New(open Opener) *cobra.Command {
	opts := &rootOptions{open: open}

	cmd := &cobra.Command{
		Use:           "screenctl",
		Short:         "Manage the screening data served by the Microscopium browser.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.SetOut(color.Output)
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "DuckDB file (defaults to DUCKDB_PATH or the config file)")
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Output as JSON.")

	cmd.AddCommand(
		newImportCmd(opts),
		newScreensCmd(opts),
		newSamplesCmd(opts),
	)
	return cmd
}

// withStore opens the store for the duration of fn.
func (o *rootOptions) withStore(ctx context.Context, fn func(context.Context, Store) error) (err error) {
	store, err := o.open(o.dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(ctx, store)
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <seed.json>",
		Short: "Import screens and samples from a seed document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return opts.withStore(cmd.Context(), func(ctx context.Context, store Store) error {
				r := Import{Source: args[0], Reader: f, Importer: store, JSON: opts.json}
				return r.Do(ctx, cmd.OutOrStdout())
			})
		},
	}
}

func newScreensCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "screens",
		Short: "List screens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withStore(cmd.Context(), func(ctx context.Context, store Store) error {
				r := Screens{Catalog: store, JSON: opts.json}
				return r.Do(ctx, cmd.OutOrStdout())
			})
		},
	}
}

func newSamplesCmd(opts *rootOptions) *cobra.Command {
	var gene string
	var controls bool
	cmd := &cobra.Command{
		Use:   "samples <screen>",
		Short: "List the samples of a screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd.Context(), func(ctx context.Context, store Store) error {
				r := Samples{
					Catalog:      store,
					Screen:       args[0],
					Gene:         gene,
					ControlsOnly: controls,
					JSON:         opts.json,
				}
				return r.Do(ctx, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().StringVar(&gene, "gene", "", "only samples with this gene")
	cmd.Flags().BoolVar(&controls, "controls", false, "only positive or negative controls")
	return cmd
}
