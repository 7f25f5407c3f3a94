// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package models

// Screen is one experimental batch of samples.
type Screen struct {
	ID          string   `json:"id" validate:"required,identifier,max=128"`
	Name        string   `json:"name" validate:"required,max=256"`
	Description string   `json:"description,omitempty" validate:"max=4096"`
	NumSamples  int      `json:"num_samples" validate:"min=0"`
	Features    []string `json:"features,omitempty" validate:"dive,required"`
}
