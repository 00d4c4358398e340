// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/tiling/internal/testutils"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func decimalLadder(levels int) Ladder {
	return testutils.CheckErr(GeometricLadder(10, levels))
}

func newTestDecomposer(t testing.TB, l Ladder) *Decomposer {
	return testutils.CheckErr(NewDecomposer(l, &Options{
		Logger:         testutils.Logger{T: t},
		VerifyCoverage: true,
	}))
}

func TestDecomposeScenarios(t *testing.T) {
	l := MustMakeLadder(10000, 1000, 100, 10, 1)

	p, err := Decompose(l, 5, 5)
	require.NoError(t, err)
	require.Empty(t, p.Tiles)
	require.Equal(t, Span{Start: 5, End: 5}, p.Span)

	p, err = Decompose(l, 0, 25)
	require.NoError(t, err)
	require.ElementsMatch(t, []Tile{
		{10, 0}, {10, 10},
		{1, 20}, {1, 21}, {1, 22}, {1, 23}, {1, 24},
	}, p.Tiles)
	require.Empty(t, Remainder(p.Span, p.Tiles))

	p, err = Decompose(l, 3, 23)
	require.NoError(t, err)
	require.ElementsMatch(t, []Tile{
		{10, 10},
		{1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {1, 9},
		{1, 20}, {1, 21}, {1, 22},
	}, p.Tiles)
	require.Empty(t, Remainder(p.Span, p.Tiles))

	p, err = Decompose(l, 0, 20000)
	require.NoError(t, err)
	require.Equal(t, []Tile{{10000, 0}, {10000, 10000}}, p.Tiles)
}

func TestDecomposeErrors(t *testing.T) {
	l := MustMakeLadder(10, 1)
	_, err := Decompose(l, 5, 4)
	require.True(t, errors.Is(err, ErrInvalidRange))
	require.False(t, errors.Is(err, ErrInvalidLadder))

	_, err = Decompose(Ladder{}, 0, 10)
	require.True(t, errors.Is(err, ErrInvalidLadder))

	_, err = NewDecomposer(Ladder{}, nil)
	require.True(t, errors.Is(err, ErrInvalidLadder))

	d := newTestDecomposer(t, l)
	_, err = d.All(1, 0)
	require.True(t, errors.Is(err, ErrInvalidRange))
	_, err = d.Count(1, 0)
	require.True(t, errors.Is(err, ErrInvalidRange))
	_, err = d.MaxTiles(1, 0)
	require.True(t, errors.Is(err, ErrInvalidRange))
}

// checkPlan verifies every property a decomposition must have.
func checkPlan(t *testing.T, d *Decomposer, p Plan) {
	t.Helper()
	l := d.Ladder()
	for _, tile := range p.Tiles {
		require.True(t, l.Contains(tile.Scale), "tile %s", tile)
		require.True(t, tile.Aligned(), "tile %s", tile)
	}
	require.NoError(t, CheckCoverage(p.Span, l, p.Tiles))
	require.Empty(t, Remainder(p.Span, p.Tiles), "%s", p)

	n := testutils.CheckErr(d.Count(p.Span.Start, p.Span.End))
	require.Equal(t, uint64(len(p.Tiles)), n, "%s", p)
	bound := testutils.CheckErr(d.MaxTiles(p.Span.Start, p.Span.End))
	require.LessOrEqual(t, n, bound, "%s", p)
}

// TestDecomposeExhaustive checks every range with endpoints in [0, 1000).
func TestDecomposeExhaustive(t *testing.T) {
	d := newTestDecomposer(t, decimalLadder(6))
	limit := int64(1000)
	if testing.Short() {
		limit = 200
	}
	for t0 := int64(0); t0 < limit; t0++ {
		for t1 := t0; t1 < limit; t1++ {
			p, err := d.Find(t0, t1)
			if err != nil {
				t.Fatal(err)
			}
			if rem := Remainder(p.Span, p.Tiles); len(rem) != 0 {
				t.Fatalf("%s: remainder %s", p, rem)
			}
			if n, _ := d.Count(t0, t1); n != uint64(len(p.Tiles)) {
				t.Fatalf("%s: count %d != %d", p, n, len(p.Tiles))
			}
		}
	}
}

func TestDecomposeNegative(t *testing.T) {
	d := newTestDecomposer(t, decimalLadder(4))
	for t0 := int64(-150); t0 < 50; t0++ {
		for t1 := t0; t1 < 150; t1 += 7 {
			checkPlan(t, d, testutils.CheckErr(d.Find(t0, t1)))
		}
	}

	// Mirroring a range around zero mirrors its tiles.
	p := testutils.CheckErr(d.Find(-23, -3))
	q := testutils.CheckErr(d.Find(3, 23))
	var mirrored []Tile
	for _, tile := range q.Tiles {
		mirrored = append(mirrored, Tile{Scale: tile.Scale, Start: -tile.End()})
	}
	require.ElementsMatch(t, mirrored, p.Tiles)
}

func TestDecomposeRandomized(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed))

	ladders := []Ladder{
		decimalLadder(6),
		MustMakeLadder(3600, 60, 1),
		MustMakeLadder(64, 32, 8, 4, 1),
		MustMakeLadder(1),
	}
	for _, l := range ladders {
		d := newTestDecomposer(t, l)
		for i := 0; i < 200; i++ {
			t0 := rng.Int64N(1_000_000_000) - 500_000_000
			width := rng.Int64N(l.Largest()*20 + 500)
			checkPlan(t, d, testutils.CheckErr(d.Find(t0, t0+width)))
		}
	}
}

func TestDecomposeExtremes(t *testing.T) {
	// 10^18 is the largest power of ten representable as an int64.
	d := newTestDecomposer(t, decimalLadder(19))
	for _, s := range []Span{
		{math.MinInt64, math.MaxInt64},
		{math.MinInt64, math.MinInt64 + 12345},
		{math.MaxInt64 - 12345, math.MaxInt64},
		{math.MinInt64, 0},
		{-1, math.MaxInt64},
	} {
		t.Run(s.String(), func(t *testing.T) {
			p := testutils.CheckErr(d.Find(s.Start, s.End))
			require.NoError(t, CheckCoverage(s, d.Ladder(), p.Tiles))
			require.Empty(t, Remainder(s, p.Tiles))
			n := testutils.CheckErr(d.Count(s.Start, s.End))
			require.Equal(t, uint64(len(p.Tiles)), n)
		})
	}
}

func TestAll(t *testing.T) {
	d := newTestDecomposer(t, decimalLadder(5))
	p := testutils.CheckErr(d.Find(1234, 5678))
	seq := testutils.CheckErr(d.All(1234, 5678))
	require.Equal(t, p.Tiles, slices.Collect(seq))

	// Stopping early stops the decomposition.
	var first []Tile
	for tile := range seq {
		first = append(first, tile)
		if len(first) == 3 {
			break
		}
	}
	require.Equal(t, p.Tiles[:3], first)

	empty := testutils.CheckErr(d.All(7, 7))
	require.Empty(t, slices.Collect(empty))
}

// TestDecomposerConcurrent shares one Decomposer between goroutines.
func TestDecomposerConcurrent(t *testing.T) {
	d := newTestDecomposer(t, decimalLadder(5))
	var g errgroup.Group
	for i := range 8 {
		g.Go(func() error {
			for t0 := int64(i * 100); t0 < int64(i*100+50); t0++ {
				p, err := d.Find(t0, t0+12345)
				if err != nil {
					return err
				}
				if rem := Remainder(p.Span, p.Tiles); len(rem) != 0 {
					return errors.Newf("%s: remainder %s", p, rem)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func BenchmarkFind(b *testing.B) {
	d := testutils.CheckErr(NewDecomposer(decimalLadder(10), nil))
	for _, width := range []int64{100, 10_000, 1_000_000_000} {
		b.Run(fmt.Sprintf("width=%d", width), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				t0 := int64(i) * 7919
				if _, err := d.Find(t0, t0+width); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCount(b *testing.B) {
	d := testutils.CheckErr(NewDecomposer(decimalLadder(10), nil))
	for i := 0; i < b.N; i++ {
		t0 := int64(i) * 7919
		if _, err := d.Count(t0, t0+1_000_000_000); err != nil {
			b.Fatal(err)
		}
	}
}
