// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestParseView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{"tsne", ViewTSNE, false},
		{"pca", ViewPCA, false},
		{"TSNE", "", true},
		{"", "", true},
		{"umap", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseView(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseView(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseView(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmbedding_At(t *testing.T) {
	t.Parallel()

	e := Embedding{TSNE: Point{0.5, -0.5}, PCA: Point{0.25, 0}}
	if got := e.At(ViewPCA); got.X() != 0.25 || got.Y() != 0 {
		t.Errorf("At(pca) = %v", got)
	}
	if got := e.At(ViewTSNE); got.X() != 0.5 || got.Y() != -0.5 {
		t.Errorf("At(tsne) = %v", got)
	}
	if got := e.At("other"); got != e.TSNE {
		t.Errorf("At(unknown) = %v, want t-SNE fallback", got)
	}
}

func TestSample_DecodesSeedDocument(t *testing.T) {
	t.Parallel()

	doc := `{
		"id": "MYORES-p1-A01",
		"screen": "MYORES",
		"gene_name": "Abcb1a",
		"row": "A",
		"column": 1,
		"plate": 1,
		"neighbours": ["MYORES-p1-A02", "MYORES-p2-C07"],
		"dimension_reduce": {"tsne": [1.5, -2], "pca": [0.1, 0.2]}
	}`

	var s Sample
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.Embedding.TSNE != (Point{1.5, -2}) {
		t.Errorf("tsne = %v", s.Embedding.TSNE)
	}
	if len(s.Neighbours) != 2 || s.Neighbours[1] != "MYORES-p2-C07" {
		t.Errorf("neighbours = %v", s.Neighbours)
	}
	if s.Row != "A" || s.Column != 1 || s.Plate != 1 {
		t.Errorf("position = %s/%d/%d", s.Row, s.Column, s.Plate)
	}
}
