// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package filter

import (
	"slices"

	"github.com/tomtom215/microscopium-browser/internal/stats"
)

// GeneSelection splits the genes of a screen into an available and a
// selected list. Both lists stay sorted.
type GeneSelection struct {
	all       []string
	available []string
	selected  []string
}

// NewGeneSelection starts with every gene available.
func NewGeneSelection(genes []string) *GeneSelection {
	all := slices.Clone(genes)
	slices.Sort(all)
	all = slices.Compact(all)
	return &GeneSelection{
		all:       all,
		available: slices.Clone(all),
		selected:  make([]string, 0),
	}
}

// Select moves gene from the available list to the selected list. It
// reports false when gene is not available.
func (g *GeneSelection) Select(gene string) bool {
	i, ok := slices.BinarySearch(g.available, gene)
	if !ok {
		return false
	}
	g.available = slices.Delete(g.available, i, i+1)
	g.selected = stats.SortedInsert(g.selected, gene)
	return true
}

// Deselect returns gene to the available list. It reports false when gene
// was not selected.
func (g *GeneSelection) Deselect(gene string) bool {
	i, ok := slices.BinarySearch(g.selected, gene)
	if !ok {
		return false
	}
	g.selected = slices.Delete(g.selected, i, i+1)
	g.available = stats.SortedInsert(g.available, gene)
	return true
}

// SetSelected replaces the selection with the known genes of genes.
func (g *GeneSelection) SetSelected(genes []string) {
	g.Reset()
	for _, gene := range genes {
		g.Select(gene)
	}
}

// Reset makes every gene available again.
func (g *GeneSelection) Reset() {
	g.available = slices.Clone(g.all)
	g.selected = g.selected[:0]
}

// Available returns a copy of the available genes.
func (g *GeneSelection) Available() []string { return slices.Clone(g.available) }

// Selected returns a copy of the selected genes.
func (g *GeneSelection) Selected() []string { return slices.Clone(g.selected) }
