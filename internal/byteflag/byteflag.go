// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package byteflag encodes independent boolean states of a value in the
// bits of a single integer.
//
// Bit values are chosen by the consumer and must be distinct powers of two.
// Overlapping or non-power-of-two bits are not validated; the results are
// whatever bitwise arithmetic produces.
package byteflag

// Flag is a bitmask of states.
type Flag uint32

// Add returns flag with every bit of bit set.
func Add(flag, bit Flag) Flag {
	return flag | bit
}

// Remove returns flag with every bit of bit cleared.
func Remove(flag, bit Flag) Flag {
	return flag &^ bit
}

// Check reports whether every bit of bit is set in flag.
// bit may be a compound mask such as A|B.
func Check(flag, bit Flag) bool {
	return flag&bit == bit
}
