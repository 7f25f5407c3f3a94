// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package api

// OpenSessionRequest opens a session on a screen.
type OpenSessionRequest struct {
	ScreenID string `json:"screen_id" validate:"required,identifier,max=128"`
}

// SelectRequest selects a sample.
type SelectRequest struct {
	SampleID string `json:"sample_id" validate:"required,identifier,max=128"`
}

// SwitchScreenRequest loads another screen into a session.
type SwitchScreenRequest struct {
	ScreenID string `json:"screen_id" validate:"required,identifier,max=128"`
}

// ViewRequest switches the embedding.
type ViewRequest struct {
	View string `json:"view" validate:"required,oneof=tsne pca"`
}

// PickRequest locates a pixel on the plot.
type PickRequest struct {
	X float64 `validate:"gte=-100000,lte=100000"`
	Y float64 `validate:"gte=-100000,lte=100000"`
}
