// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package filter narrows the visible samples of a screen by plate
// position and gene.
package filter

import (
	"slices"

	"github.com/tomtom215/microscopium-browser/internal/models"
	"github.com/tomtom215/microscopium-browser/internal/stats"
)

// Options lists every value a filter dimension can take on a screen.
type Options struct {
	Rows    []string `json:"rows"`
	Columns []int    `json:"columns"`
	Plates  []int    `json:"plates"`
	Genes   []string `json:"genes"`
}

// NewOptions collects the sorted distinct rows, columns, plates and genes
// of samples. Samples without a gene do not contribute an empty gene.
func NewOptions(samples []models.Sample) Options {
	genes := stats.Unique(samples, func(s models.Sample) string { return s.GeneName })
	genes = slices.DeleteFunc(genes, func(g string) bool { return g == "" })
	return Options{
		Rows:    stats.Unique(samples, func(s models.Sample) string { return s.Row }),
		Columns: stats.Unique(samples, func(s models.Sample) int { return s.Column }),
		Plates:  stats.Unique(samples, func(s models.Sample) int { return s.Plate }),
		Genes:   genes,
	}
}

// Query is a filter selection. Rows, Columns and Plates list the included
// values; an empty list includes everything. Genes lists the genes to keep;
// an empty list disables the gene filter.
type Query struct {
	Rows    []string `json:"rows,omitempty" validate:"omitempty,dive,min=1,max=8"`
	Columns []int    `json:"columns,omitempty" validate:"omitempty,dive,gte=0"`
	Plates  []int    `json:"plates,omitempty" validate:"omitempty,dive,gte=0"`
	Genes   []string `json:"genes,omitempty" validate:"omitempty,dive,min=1,max=128"`
}

// IsZero reports whether q has no selection in any dimension.
func (q Query) IsZero() bool {
	return len(q.Rows) == 0 && len(q.Columns) == 0 && len(q.Plates) == 0 && len(q.Genes) == 0
}

// Active reports whether q excludes at least one value offered by opts.
func (q Query) Active(opts Options) bool {
	return excludes(q.Rows, opts.Rows) ||
		excludes(q.Columns, opts.Columns) ||
		excludes(q.Plates, opts.Plates) ||
		excludes(q.Genes, opts.Genes)
}

func excludes[T comparable](included, all []T) bool {
	if len(included) == 0 {
		return false
	}
	for _, v := range all {
		if !slices.Contains(included, v) {
			return true
		}
	}
	return false
}

// FilterOut returns the ascending indices of samples that fail any active
// dimension of q. Samples without a gene never fail the gene dimension,
// matching NewOptions, which offers no empty gene to select.
func FilterOut(samples []models.Sample, q Query) []int {
	out := make(map[int]struct{})
	add := func(indices []int) {
		for _, i := range indices {
			out[i] = struct{}{}
		}
	}

	if len(q.Rows) > 0 {
		add(stats.FindByValues(samples, func(s models.Sample) string { return s.Row }, q.Rows, true))
	}
	if len(q.Columns) > 0 {
		add(stats.FindByValues(samples, func(s models.Sample) int { return s.Column }, q.Columns, true))
	}
	if len(q.Plates) > 0 {
		add(stats.FindByValues(samples, func(s models.Sample) int { return s.Plate }, q.Plates, true))
	}
	if len(q.Genes) > 0 {
		for _, i := range stats.FindByValues(samples, func(s models.Sample) string { return s.GeneName }, q.Genes, true) {
			if samples[i].GeneName != "" {
				out[i] = struct{}{}
			}
		}
	}

	indices := make([]int, 0, len(out))
	for i := range out {
		indices = append(indices, i)
	}
	slices.Sort(indices)
	return indices
}

// GeneSearch returns the genes matching pattern, case-insensitively, in
// their input order. An empty pattern matches every gene.
func GeneSearch(genes []string, pattern string) []string {
	match := stats.MatchPattern(pattern)
	out := make([]string, 0)
	for _, g := range genes {
		if match(g) {
			out = append(out, g)
		}
	}
	return out
}
