// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

// Subtract removes sub from a collection of pairwise-disjoint spans and
// returns the result; spans is not modified.
//
// Each span that fully contains sub is replaced by its leftovers, [a, sub.Start)
// and [sub.End, b), omitting either if empty. Every other span is passed
// through unchanged. In particular a sub that only partially overlaps a span
// does NOT trim it: callers must only subtract spans that are fully nested
// within one element of spans, which is always the case for the tiles of a
// decomposition of that element.
func Subtract(spans []Span, sub Span) []Span {
	out := make([]Span, 0, len(spans)+1)
	for _, s := range spans {
		if !s.Contains(sub) {
			out = append(out, s)
			continue
		}
		if s.Start != sub.Start {
			out = append(out, Span{Start: s.Start, End: sub.Start})
		}
		if sub.End != s.End {
			out = append(out, Span{Start: sub.End, End: s.End})
		}
	}
	return out
}

// Remainder returns the parts of s not covered by tiles, by subtracting every
// tile in turn starting from [s]. An empty s has nothing to cover. If the
// tiles are a decomposition of s the result is empty; anything left over is a
// gap. Tiles are subject to the same nesting precondition as Subtract.
func Remainder(s Span, tiles []Tile) []Span {
	if s.Empty() {
		return nil
	}
	rem := []Span{s}
	for _, t := range tiles {
		rem = Subtract(rem, t.Span())
	}
	return rem
}
