// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

// Count returns the number of tiles Find would return for [t0, t1), without
// producing them.
//
// Let k be the coarsest scale with an aligned tile inside the range. The
// middle contributes (AlignDown(t1, s_k) - AlignUp(t0, s_k)) / s_k tiles.
// Every finer scale s_j then contributes the difference between the
// endpoints rounded to s_j and to s_(j-1), which on the left is determined by
// t0's j-th mixed-radix digit (see Ladder.Digits) and on the right is t1's
// j-th digit.
func (d *Decomposer) Count(t0, t1 int64) (uint64, error) {
	s, err := MakeSpan(t0, t1)
	if err != nil {
		return 0, err
	}
	return count(d.ladder, s), nil
}

func count(l Ladder, s Span) uint64 {
	if s.Empty() {
		return 0
	}
	for k, scale := range l.scales {
		if s.Len() < uint64(scale) {
			continue
		}
		start := AlignUp(s.Start, scale)
		if start > s.End-scale {
			continue
		}
		end := AlignDown(s.End, scale)
		n := uint64(end-start) / uint64(scale)
		left, right := start, end
		for _, finer := range l.scales[k+1:] {
			lo := AlignUp(s.Start, finer)
			n += uint64(left-lo) / uint64(finer)
			left = lo
			hi := AlignDown(s.End, finer)
			n += uint64(hi-right) / uint64(finer)
			right = hi
		}
		return n
	}
	// Unreachable: the ladder ends in 1 and s is not empty.
	return 0
}

// MaxTiles returns an upper bound on the number of tiles Find returns for
// [t0, t1):
//
//	(t1 - t0) / At(0) + 2 * sum((Ratio(i) - 1) for 0 < i < Len())
//
// Each finer scale contributes at most Ratio(i)-1 tiles on either side of
// the tiled middle.
func (d *Decomposer) MaxTiles(t0, t1 int64) (uint64, error) {
	s, err := MakeSpan(t0, t1)
	if err != nil {
		return 0, err
	}
	n := s.Len() / uint64(d.ladder.scales[0])
	for i := 1; i < len(d.ladder.scales); i++ {
		n += 2 * uint64(d.ladder.Ratio(i)-1)
	}
	return n, nil
}
