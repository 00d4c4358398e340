// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/redact"
)

// RawScale is the scale of tiles that denote unaggregated samples.
const RawScale = 1

// A Tile denotes the span [Start, Start+Scale). Tiles produced by a
// Decomposer always have a Scale that is a member of its Ladder and a Start
// that is a multiple of Scale.
type Tile struct {
	Scale int64
	Start int64
}

// End returns the exclusive end of the tile.
func (t Tile) End() int64 {
	return t.Start + t.Scale
}

// Span returns the span covered by the tile.
func (t Tile) Span() Span {
	return Span{Start: t.Start, End: t.End()}
}

// Raw returns true if the tile denotes raw-resolution data that has no
// precomputed aggregate.
func (t Tile) Raw() bool {
	return t.Scale == RawScale
}

// Aligned returns true if Start is a multiple of Scale.
func (t Tile) Aligned() bool {
	return t.Scale > 0 && Aligned(t.Start, t.Scale)
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	return redact.StringWithoutMarkers(t)
}

// SafeFormat implements redact.SafeFormatter.
func (t Tile) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%d@%d", redact.SafeInt(t.Scale), redact.SafeInt(t.Start))
}

// SortTiles sorts tiles by start and, for equal starts, by descending scale.
func SortTiles(tiles []Tile) {
	slices.SortFunc(tiles, func(a, b Tile) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(b.Scale, a.Scale)
	})
}
