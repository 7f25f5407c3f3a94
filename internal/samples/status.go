// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package samples

import "github.com/tomtom215/microscopium-browser/internal/byteflag"

// Point statuses. Values are distinct powers of two and are shared with
// API clients, which receive raw status flags.
const (
	Active      byteflag.Flag = 1
	Neighbour   byteflag.Flag = 2
	FilteredOut byteflag.Flag = 4
	Selected    byteflag.Flag = 8
)

// exclusive statuses are held by at most one set of points at a time:
// adding them moves them.
const exclusive = Active | Selected

// statusNames lists status bits in ascending order with their API names.
var statusNames = []struct {
	bit  byteflag.Flag
	name string
}{
	{Active, "active"},
	{Neighbour, "neighbour"},
	{FilteredOut, "filtered_out"},
	{Selected, "selected"},
}

// StatusLabels returns the names of the statuses set in flag.
func StatusLabels(flag byteflag.Flag) []string {
	var out []string
	for _, s := range statusNames {
		if byteflag.Check(flag, s.bit) {
			out = append(out, s.name)
		}
	}
	return out
}
