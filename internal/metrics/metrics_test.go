// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package metrics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.New("Binder Error: column not found"), "other"},
		{fmt.Errorf("query screens: %w", context.Canceled), "canceled"},
		{context.DeadlineExceeded, "timeout"},
		{fmt.Errorf("get screen: %w", sql.ErrNoRows), "no_rows"},
		{sql.ErrConnDone, "connection"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			counter := DBQueryErrors.WithLabelValues("SELECT", "samples_test", tt.want)
			before := testutil.ToFloat64(counter)

			RecordDBQuery("SELECT", "samples_test", 5*time.Millisecond, tt.err)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("DBQueryErrors{%s} = %v, want %v", tt.want, got, before+1)
			}
		})
	}

	RecordDBQuery("SELECT", "samples_test", 5*time.Millisecond, nil)
	if n := testutil.CollectAndCount(DBQueryDuration); n == 0 {
		t.Error("DBQueryDuration should have observations")
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/metrics-test", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/metrics-test", "200", 12*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordSessionOperation(t *testing.T) {
	ok := SessionOperations.WithLabelValues("metrics_test", "ok")
	failed := SessionOperations.WithLabelValues("metrics_test", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordSessionOperation("metrics_test", nil)
	RecordSessionOperation("metrics_test", errors.New("no such sample"))

	if testutil.ToFloat64(ok) != okBefore+1 || testutil.ToFloat64(failed) != failedBefore+1 {
		t.Error("RecordSessionOperation should count ok and error outcomes separately")
	}
}

func TestRecordNavigation(t *testing.T) {
	moved := HistoryNavigation.WithLabelValues("back", "moved")
	boundary := HistoryNavigation.WithLabelValues("back", "boundary")
	movedBefore, boundaryBefore := testutil.ToFloat64(moved), testutil.ToFloat64(boundary)

	RecordNavigation("back", true)
	RecordNavigation("back", false)
	RecordNavigation("back", false)

	if got := testutil.ToFloat64(moved); got != movedBefore+1 {
		t.Errorf("moved = %v, want %v", got, movedBefore+1)
	}
	if got := testutil.ToFloat64(boundary); got != boundaryBefore+2 {
		t.Errorf("boundary = %v, want %v", got, boundaryBefore+2)
	}
}
