// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package models

import "fmt"

// View selects the embedding a scatterplot is drawn from.
type View string

const (
	ViewTSNE View = "tsne"
	ViewPCA  View = "pca"
)

// ParseView validates a view name.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewTSNE, ViewPCA:
		return View(s), nil
	default:
		return "", fmt.Errorf("unknown view %q (want tsne or pca)", s)
	}
}

// Point is an (x, y) coordinate. It encodes as a two element JSON array.
type Point [2]float64

// X returns the first coordinate.
func (p Point) X() float64 { return p[0] }

// Y returns the second coordinate.
func (p Point) Y() float64 { return p[1] }

// Embedding holds the dimension-reduced coordinates of a sample.
type Embedding struct {
	TSNE Point `json:"tsne"`
	PCA  Point `json:"pca"`
}

// At returns the coordinate for v. Unknown views fall back to t-SNE.
func (e Embedding) At(v View) Point {
	if v == ViewPCA {
		return e.PCA
	}
	return e.TSNE
}

// Sample is a single well of a screen.
//
// IDs follow the screen convention "<name>-<plate>-<well>" but are treated
// as opaque everywhere.
type Sample struct {
	ID            string    `json:"id" validate:"required,identifier,max=128"`
	Screen        string    `json:"screen" validate:"required,identifier,max=128"`
	GeneName      string    `json:"gene_name,omitempty" validate:"max=128"`
	ControlPos    bool      `json:"control_pos,omitempty"`
	ControlNeg    bool      `json:"control_neg,omitempty"`
	Row           string    `json:"row" validate:"required,platerow"`
	Column        int       `json:"column" validate:"min=0,max=1000"`
	Plate         int       `json:"plate" validate:"min=0"`
	Neighbours    []string  `json:"neighbours,omitempty" validate:"dive,required"`
	FeatureVector []float64 `json:"feature_vector,omitempty"`
	Embedding     Embedding `json:"dimension_reduce"`
}
