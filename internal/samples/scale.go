// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package samples

// AxisMargin is the fraction of the data extent added on each side of the
// plot domain so that edge points are not clipped.
const AxisMargin = 0.02

// Scale maps a data domain linearly onto a pixel range. A reversed range
// (for example [height, 0]) flips the axis.
type Scale struct {
	Domain [2]float64 `json:"domain"`
	Range  [2]float64 `json:"range"`
}

// NewScale returns a linear scale from domain onto rng.
func NewScale(d0, d1, r0, r1 float64) Scale {
	return Scale{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Apply maps a data value to pixel space. A degenerate domain maps every
// value to the middle of the range.
func (s Scale) Apply(v float64) float64 {
	span := s.Domain[1] - s.Domain[0]
	if span == 0 {
		return (s.Range[0] + s.Range[1]) / 2
	}
	return s.Range[0] + (v-s.Domain[0])/span*(s.Range[1]-s.Range[0])
}

// extentWithMargin returns [min-m, max+m] with m = (max-min)*AxisMargin.
func extentWithMargin(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	m := (hi - lo) * AxisMargin
	return lo - m, hi + m
}
