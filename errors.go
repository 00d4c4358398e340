// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

import "github.com/cockroachdb/errors"

// ErrInvalidRange is a marker for errors returned when a range's end precedes
// its start. Use errors.Is to test for it.
var ErrInvalidRange = errors.New("tiling: invalid range")

// ErrInvalidLadder is a marker for errors returned when a ladder of scales
// fails validation, or when an uninitialized Ladder is used.
var ErrInvalidLadder = errors.New("tiling: invalid ladder")

// ErrNotCovered is a marker for errors returned by CheckCoverage.
var ErrNotCovered = errors.New("tiling: tiles do not cover range")

func invalidRangef(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidRange)
}

func invalidLadderf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidLadder)
}

// ErrInvalidTile is a marker for errors returned when a tile's scale is not a
// member of the ladder it is used with, or its start is not aligned.
var ErrInvalidTile = errors.New("tiling: invalid tile")
