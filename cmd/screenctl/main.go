// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Command screenctl imports and inspects screening data for the
// Microscopium browser.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/microscopium-browser/internal/cli"
	"github.com/tomtom215/microscopium-browser/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.New(cli.OpenDatabase).ExecuteContext(ctx); err != nil {
		stop()
		logging.Fatal().Err(err).Msg("screenctl failed")
	}
}
