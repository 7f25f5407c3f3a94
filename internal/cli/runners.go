// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/gosuri/uitable"

	"github.com/tomtom215/microscopium-browser/internal/database"
	"github.com/tomtom215/microscopium-browser/internal/models"
)

// Importer loads a seed document.
type Importer interface {
	ImportSeed(ctx context.Context, r io.Reader) (database.ImportResult, error)
}

// Catalog reads screens and samples.
type Catalog interface {
	ListScreens(ctx context.Context) ([]models.Screen, error)
	SamplesForScreen(ctx context.Context, screenID string) ([]models.Sample, error)
}

var (
	header = color.New(color.Bold, color.Underline).SprintFunc()
	good   = color.New(color.FgGreen).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

func newTable(columns ...interface{}) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	for i, c := range columns {
		columns[i] = header(c)
	}
	tbl.AddRow(columns...)
	return tbl
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Import loads a seed document into the store.
type Import struct {
	Source   string
	Reader   io.Reader
	Importer Importer
	JSON     bool
}

func (i *Import) Do(ctx context.Context, w io.Writer) error {
	result, err := i.Importer.ImportSeed(ctx, i.Reader)
	if err != nil {
		return fmt.Errorf("import %s: %w", i.Source, err)
	}
	if i.JSON {
		return writeJSON(w, result)
	}
	_, err = fmt.Fprintf(w, "%s %d screens, %d samples from %s\n",
		good("imported"), result.Screens, result.Samples, i.Source)
	return err
}

// Screens prints every screen.
type Screens struct {
	Catalog Catalog
	JSON    bool
}

func (s *Screens) Do(ctx context.Context, w io.Writer) error {
	screens, err := s.Catalog.ListScreens(ctx)
	if err != nil {
		return err
	}
	if s.JSON {
		return writeJSON(w, screens)
	}
	if len(screens) == 0 {
		_, err = fmt.Fprintln(w, faint("no screens"))
		return err
	}

	tbl := newTable("ID", "Name", "Samples", "Features")
	for _, sc := range screens {
		tbl.AddRow(sc.ID, sc.Name, sc.NumSamples, strings.Join(sc.Features, ","))
	}
	_, err = fmt.Fprintln(w, tbl)
	return err
}

// Samples prints the samples of one screen, optionally narrowed to a
// gene or to control wells.
type Samples struct {
	Catalog      Catalog
	Screen       string
	Gene         string
	ControlsOnly bool
	JSON         bool
}

func (s *Samples) Do(ctx context.Context, w io.Writer) error {
	all, err := s.Catalog.SamplesForScreen(ctx, s.Screen)
	if err != nil {
		return err
	}

	list := make([]models.Sample, 0, len(all))
	for _, sample := range all {
		if s.Gene != "" && !strings.EqualFold(sample.GeneName, s.Gene) {
			continue
		}
		if s.ControlsOnly && !sample.ControlPos && !sample.ControlNeg {
			continue
		}
		list = append(list, sample)
	}

	if s.JSON {
		return writeJSON(w, list)
	}
	if len(list) == 0 {
		_, err = fmt.Fprintf(w, "%s\n", faint("no samples in "+s.Screen))
		return err
	}

	tbl := newTable("ID", "Gene", "Plate", "Well", "Control", "Neighbours", "t-SNE", "PCA")
	for _, sample := range list {
		tbl.AddRow(
			sample.ID,
			sample.GeneName,
			sample.Plate,
			fmt.Sprintf("%s%02d", sample.Row, sample.Column),
			control(sample),
			len(sample.Neighbours),
			formatPoint(sample.Embedding.TSNE),
			formatPoint(sample.Embedding.PCA),
		)
	}
	_, err = fmt.Fprintln(w, tbl)
	return err
}

func control(s models.Sample) string {
	switch {
	case s.ControlPos:
		return "+"
	case s.ControlNeg:
		return "-"
	default:
		return ""
	}
}

func formatPoint(p models.Point) string {
	return fmt.Sprintf("%.3f,%.3f", p.X(), p.Y())
}
