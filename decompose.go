// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

import (
	"iter"

	"github.com/cockroachdb/tiling/internal/invariants"
)

// A Decomposer tiles ranges using a fixed Ladder. A Decomposer is immutable
// and safe for concurrent use.
type Decomposer struct {
	ladder Ladder
	opts   Options
}

// NewDecomposer returns a Decomposer for the given ladder. It returns an error
// marked ErrInvalidLadder if the ladder was not built with MakeLadder or
// GeometricLadder.
func NewDecomposer(ladder Ladder, opts *Options) (*Decomposer, error) {
	if err := ladder.valid(); err != nil {
		return nil, err
	}
	opts = opts.Clone().EnsureDefaults()
	return &Decomposer{ladder: ladder, opts: *opts}, nil
}

// Decompose tiles [t0, t1) with the given ladder. See Decomposer.Find.
func Decompose(ladder Ladder, t0, t1 int64) (Plan, error) {
	d, err := NewDecomposer(ladder, nil)
	if err != nil {
		return Plan{}, err
	}
	return d.Find(t0, t1)
}

// Ladder returns the ladder the Decomposer tiles with.
func (d *Decomposer) Ladder() Ladder {
	return d.ladder
}

// Find returns a plan whose tiles are pairwise disjoint and whose union is
// exactly [t0, t1). Each part of the range is tiled at the coarsest scale for
// which an aligned tile fits. If t0 == t1 the plan has no tiles. If t1 < t0,
// Find returns an error marked ErrInvalidRange.
//
// The tiles are returned in the order they are produced; use Plan.Sort to
// order them by start.
func (d *Decomposer) Find(t0, t1 int64) (Plan, error) {
	s, err := MakeSpan(t0, t1)
	if err != nil {
		return Plan{}, err
	}
	p := Plan{Span: s}
	if !s.Empty() {
		p.Tiles = make([]Tile, 0, min(count(d.ladder, s), maxPrealloc))
		decompose(d.ladder, s, func(t Tile) bool {
			p.Tiles = append(p.Tiles, t)
			return true
		})
	}
	if d.opts.VerifyCoverage || invariants.Sometimes(10) {
		if err := CheckCoverage(s, d.ladder, p.Tiles); err != nil {
			d.opts.Logger.Fatalf("%v", err)
		}
	}
	return p, nil
}

// maxPrealloc caps the capacity reserved up front for a plan's tiles, since a
// range much wider than the largest scale can produce an arbitrary number of
// tiles.
const maxPrealloc = 1 << 12

// All returns an iterator over the same tiles Find would return, in the same
// order, without materializing them.
func (d *Decomposer) All(t0, t1 int64) (iter.Seq[Tile], error) {
	s, err := MakeSpan(t0, t1)
	if err != nil {
		return nil, err
	}
	return func(yield func(Tile) bool) {
		decompose(d.ladder, s, yield)
	}, nil
}

// decompose emits the tiles of s until emit returns false.
func decompose(l Ladder, s Span, emit func(Tile) bool) {
	// Leftovers to the left of a tiled middle only ever produce further left
	// leftovers, and likewise on the right, so the stack never holds more
	// than two spans.
	var buf [2]Span
	stack := append(buf[:0], s)
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.Empty() {
			continue
		}
		for _, scale := range l.scales {
			if r.Len() < uint64(scale) {
				continue
			}
			// r.Len() >= scale, so neither rounding can overflow and
			// r.End-scale >= r.Start.
			start := AlignUp(r.Start, scale)
			if start > r.End-scale {
				// No aligned tile of this scale fits inside r.
				continue
			}
			end := AlignDown(r.End, scale)
			n := uint64(end-start) / uint64(scale)
			for i := uint64(0); i < n; i++ {
				if !emit(Tile{Scale: scale, Start: start + int64(i*uint64(scale))}) {
					return
				}
			}
			if r.Start != start {
				stack = append(stack, Span{Start: r.Start, End: start})
			}
			if end != r.End {
				stack = append(stack, Span{Start: end, End: r.End})
			}
			break
		}
	}
}
