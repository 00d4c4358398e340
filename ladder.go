// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

import (
	"cmp"
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// A Ladder is an immutable, strictly descending sequence of positive scales
// in which every scale is divisible by the next smaller one and the smallest
// scale is 1. Because it ends in 1, every non-empty range can be tiled.
//
// A Ladder is constructed once with MakeLadder or GeometricLadder and may be
// shared by any number of goroutines. The zero value is not a valid Ladder.
type Ladder struct {
	// scales is never mutated after construction.
	scales []int64
}

// MakeLadder validates scales and returns the Ladder they describe. The scales
// must be given largest first, e.g. MakeLadder(10000, 1000, 100, 10, 1). The
// returned error is marked ErrInvalidLadder.
func MakeLadder(scales ...int64) (Ladder, error) {
	if len(scales) == 0 {
		return Ladder{}, invalidLadderf("tiling: ladder has no scales")
	}
	for i, s := range scales {
		if s <= 0 {
			return Ladder{}, invalidLadderf("tiling: ladder scale %d at position %d is not positive", s, i)
		}
		if i == 0 {
			continue
		}
		prev := scales[i-1]
		if s >= prev {
			return Ladder{}, invalidLadderf("tiling: ladder scales are not strictly descending: %d follows %d", s, prev)
		}
		if prev%s != 0 {
			return Ladder{}, invalidLadderf("tiling: ladder scale %d does not divide %d", s, prev)
		}
	}
	if last := scales[len(scales)-1]; last != RawScale {
		return Ladder{}, invalidLadderf("tiling: ladder must end with scale 1, not %d", last)
	}
	return Ladder{scales: slices.Clone(scales)}, nil
}

// MustMakeLadder is like MakeLadder but panics on error. It is intended for
// ladders built from constants.
func MustMakeLadder(scales ...int64) Ladder {
	l, err := MakeLadder(scales...)
	if err != nil {
		panic(err)
	}
	return l
}

// GeometricLadder returns the ladder ratio^(levels-1), ..., ratio, 1. For
// example GeometricLadder(10, 5) is [10000 1000 100 10 1].
func GeometricLadder(ratio int64, levels int) (Ladder, error) {
	if ratio < 2 {
		return Ladder{}, invalidLadderf("tiling: ladder ratio %d must be at least 2", ratio)
	}
	if levels < 1 {
		return Ladder{}, invalidLadderf("tiling: ladder must have at least one level, not %d", levels)
	}
	scales := make([]int64, levels)
	s := int64(1)
	for i := levels - 1; i >= 0; i-- {
		scales[i] = s
		if i > 0 {
			if s > math.MaxInt64/ratio {
				return Ladder{}, invalidLadderf("tiling: ladder %d^%d overflows int64", ratio, levels-1)
			}
			s *= ratio
		}
	}
	return MakeLadder(scales...)
}

func (l Ladder) valid() error {
	if len(l.scales) == 0 {
		return invalidLadderf("tiling: uninitialized ladder")
	}
	return nil
}

// Len returns the number of scales in the ladder.
func (l Ladder) Len() int {
	return len(l.scales)
}

// At returns the i-th scale; At(0) is the largest and At(Len()-1) is 1.
func (l Ladder) At(i int) int64 {
	return l.scales[i]
}

// Scales returns a copy of the ladder's scales, largest first.
func (l Ladder) Scales() []int64 {
	return slices.Clone(l.scales)
}

// Largest returns the coarsest scale, or 0 for the zero Ladder.
func (l Ladder) Largest() int64 {
	if len(l.scales) == 0 {
		return 0
	}
	return l.scales[0]
}

// Ratio returns At(i-1) / At(i). It panics unless 0 < i < Len().
func (l Ladder) Ratio(i int) int64 {
	return l.scales[i-1] / l.scales[i]
}

// Index returns the position of scale in the ladder.
func (l Ladder) Index(scale int64) (int, bool) {
	// The scales are descending, so compare in reverse.
	return slices.BinarySearchFunc(l.scales, scale, func(e, target int64) int {
		return cmp.Compare(target, e)
	})
}

// Contains returns true if scale is a member of the ladder.
func (l Ladder) Contains(scale int64) bool {
	_, ok := l.Index(scale)
	return ok
}

// Finer returns the next smaller scale, if any.
func (l Ladder) Finer(scale int64) (int64, bool) {
	i, ok := l.Index(scale)
	if !ok || i+1 >= len(l.scales) {
		return 0, false
	}
	return l.scales[i+1], true
}

// Coarser returns the next larger scale, if any.
func (l Ladder) Coarser(scale int64) (int64, bool) {
	i, ok := l.Index(scale)
	if !ok || i == 0 {
		return 0, false
	}
	return l.scales[i-1], true
}

// Digits returns the mixed-radix representation of v under the ladder:
// v == sum(Digits(v)[i] * At(i)). Digits(v)[0] is floor(v / At(0)) and may be
// negative; every other digit lies in [0, Ratio(i)).
func (l Ladder) Digits(v int64) []int64 {
	digits := make([]int64, len(l.scales))
	for i, s := range l.scales {
		q := floorDiv(v, s)
		if i > 0 {
			q = floorMod(q, l.Ratio(i))
		}
		digits[i] = q
	}
	return digits
}

// Covering returns, for every scale in the ladder, the tile containing the
// point t, largest scale first. These are the aggregates that a raw sample at
// t contributes to.
func (l Ladder) Covering(t int64) []Tile {
	tiles := make([]Tile, len(l.scales))
	for i, s := range l.scales {
		tiles[i] = Tile{Scale: s, Start: AlignDown(t, s)}
	}
	return tiles
}

// CheckTile returns an error marked ErrInvalidTile unless t's scale is a
// ladder member and its start is aligned to that scale.
func (l Ladder) CheckTile(t Tile) error {
	if err := l.valid(); err != nil {
		return err
	}
	if !l.Contains(t.Scale) {
		return errors.Mark(errors.Newf("tiling: tile %s has a scale not in ladder %s", t, l), ErrInvalidTile)
	}
	if !t.Aligned() {
		return errors.Mark(errors.Newf("tiling: tile %s is not aligned to its scale", t), ErrInvalidTile)
	}
	return nil
}

// Children splits t into the tiles of the next finer scale that make it up.
// This is how an aggregate that has not been precomputed is rebuilt from finer
// ones. A raw tile has no children.
func (l Ladder) Children(t Tile) ([]Tile, error) {
	if err := l.CheckTile(t); err != nil {
		return nil, err
	}
	finer, ok := l.Finer(t.Scale)
	if !ok {
		return nil, nil
	}
	n := t.Scale / finer
	children := make([]Tile, n)
	for i := range children {
		children[i] = Tile{Scale: finer, Start: t.Start + int64(i)*finer}
	}
	return children, nil
}

// Parent returns the tile of the next coarser scale that contains t. It
// returns false if t has the largest scale or is not a valid tile of the
// ladder.
func (l Ladder) Parent(t Tile) (Tile, bool) {
	if l.CheckTile(t) != nil {
		return Tile{}, false
	}
	coarser, ok := l.Coarser(t.Scale)
	if !ok {
		return Tile{}, false
	}
	return Tile{Scale: coarser, Start: AlignDown(t.Start, coarser)}, true
}

// String implements fmt.Stringer.
func (l Ladder) String() string {
	return redact.StringWithoutMarkers(l)
}

// SafeFormat implements redact.SafeFormatter.
func (l Ladder) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('[')
	for i, s := range l.scales {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Print(redact.SafeInt(s))
	}
	w.SafeRune(']')
}
