// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package stats holds small collection and geometry helpers used by the
// filter and the sample manager.
package stats

import (
	"cmp"
	"math"
	"regexp"
	"slices"
	"strings"
)

// Unique returns the sorted distinct values of key over items.
func Unique[E any, T cmp.Ordered](items []E, key func(E) T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0)
	for _, item := range items {
		v := key(item)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// FindByValues returns the positions of items whose key is one of values,
// in ascending order. With invert it returns the positions whose key is
// not one of values.
func FindByValues[E any, T comparable](items []E, key func(E) T, values []T, invert bool) []int {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	out := make([]int, 0)
	for i, item := range items {
		_, found := set[key(item)]
		if found != invert {
			out = append(out, i)
		}
	}
	return out
}

// SortedInsert inserts v into the sorted slice s, keeping it sorted.
func SortedInsert[T cmp.Ordered](s []T, v T) []T {
	i, _ := slices.BinarySearch(s, v)
	return slices.Insert(s, i, v)
}

// EuclideanDistance returns the distance between (x1, y1) and (x2, y2).
func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// MatchPattern returns a case-insensitive matcher for pattern. The pattern
// is a regular expression; when it does not compile it is matched as a
// literal substring instead.
func MatchPattern(pattern string) func(string) bool {
	re, err := regexp.Compile("(?i)" + pattern)
	if err == nil {
		return re.MatchString
	}
	lower := strings.ToLower(pattern)
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), lower)
	}
}
