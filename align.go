// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

// floorMod returns v mod m in [0, m). m must be positive.
func floorMod(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// floorDiv returns v / m rounded toward negative infinity. m must be positive.
func floorDiv(v, m int64) int64 {
	q := v / m
	if v%m < 0 {
		q--
	}
	return q
}

// AlignDown returns the largest multiple of scale that is <= v. Rounding is
// toward negative infinity, so AlignDown(-5, 10) == -10. scale must be
// positive. The result is undefined if it is not representable as an int64.
func AlignDown(v, scale int64) int64 {
	return v - floorMod(v, scale)
}

// AlignUp returns the smallest multiple of scale that is >= v, so
// AlignUp(-5, 10) == 0. scale must be positive. The result is undefined if it
// is not representable as an int64.
func AlignUp(v, scale int64) int64 {
	r := floorMod(v, scale)
	if r == 0 {
		return v
	}
	return v + (scale - r)
}

// Aligned returns true if v is a multiple of scale.
func Aligned(v, scale int64) bool {
	return v%scale == 0
}
