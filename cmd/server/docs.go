// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// @title Microscopium Browser API
// @version 1.0
// @description Navigation service for high-content screening data. Clients open a
// @description browsing session on a screen, select samples on a t-SNE or PCA
// @description scatterplot, walk back and forward through their selections and
// @description filter the plate by row, column, plate and gene.
// @description
// @description All responses use the envelope {"status", "data", "metadata", "error"}.
// @description Session events are pushed over /ws?session=<id>.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/microscopium-browser/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and readiness probes
//
// @tag.name Screens
// @tag.description Imported screening batches
//
// @tag.name Sessions
// @tag.description Browsing session lifecycle
//
// @tag.name Navigation
// @tag.description Sample selection and history
//
// @tag.name Filter
// @tag.description Row, column, plate and gene filtering
//
// @tag.name Plot
// @tag.description Scatterplot scene, embedding and point picking
//
// @tag.name Realtime
// @tag.description Session events over websocket
package main
