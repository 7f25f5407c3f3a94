// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

/*
Package models defines the records shared by the store, the session engine
and the HTTP API.

Domain records:

  - Screen: a named experimental batch and the feature names measured for it
  - Sample: one well of a screen with its plate position, gene, neighbour
    list, feature vector and 2D embeddings (t-SNE and PCA)
  - View: which embedding a scatterplot is showing

Seed import and API request bodies carry go-playground/validator tags and
are checked at the boundary; code past the boundary relies on them.

APIResponse is the envelope every JSON endpoint writes.
*/
package models
