// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogHandler_WritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)
	SetLogger(NewTestLogger(&buf))

	logger := NewSlogLogger().With("service", "http-server").WithGroup("restart")
	logger.Warn("service restarted", "attempt", 3, "backoff", time.Second)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"service":"http-server"`,
		`"restart.attempt":3`,
		"service restarted",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want string
	}{
		{slog.LevelDebug, "debug"},
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in).String(); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
