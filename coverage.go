// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

import (
	"cmp"

	"github.com/RaduBerinde/axisds"
	"github.com/RaduBerinde/axisds/regiontree"
	"github.com/cockroachdb/errors"
)

// CheckCoverage verifies that tiles exactly tile s: every tile is a valid
// tile of the ladder, lies inside s, no two tiles overlap and no point of s is
// left uncovered. Unlike Remainder it makes no assumption about the tiles, so
// it detects overlaps and stray tiles too.
//
// The returned error is an assertion failure marked ErrNotCovered.
func CheckCoverage(s Span, ladder Ladder, tiles []Tile) error {
	for _, t := range tiles {
		if err := ladder.CheckTile(t); err != nil {
			return notCoveredf("tiling: %s: %v", s, err)
		}
		if !s.Contains(t.Span()) {
			return notCoveredf("tiling: %s: tile %s lies outside the range", s, t)
		}
	}
	if s.Empty() {
		return nil
	}

	// Track how many tiles cover each region. Regions covered by no tile have
	// the zero property and are not stored.
	rt := regiontree.Make(axisds.CompareFn[int64](cmp.Compare[int64]), func(a, b int) bool {
		return a == b
	})
	for _, t := range tiles {
		rt.Update(t.Start, t.End(), func(n int) int { return n + 1 })
	}
	cursor := s.Start
	for r, n := range rt.All() {
		if r.Start != cursor {
			return notCoveredf("tiling: %s: gap %s", s, Span{Start: cursor, End: r.Start})
		}
		if n > 1 {
			return notCoveredf("tiling: %s: %d tiles overlap %s", s, n, Span{Start: r.Start, End: r.End})
		}
		cursor = r.End
	}
	if cursor != s.End {
		return notCoveredf("tiling: %s: gap %s", s, Span{Start: cursor, End: s.End})
	}
	return nil
}

func notCoveredf(format string, args ...interface{}) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrNotCovered)
}
