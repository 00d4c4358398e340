// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckCoverage(t *testing.T) {
	l := MustMakeLadder(100, 10, 1)
	s := Span{-20, 15}
	good := []Tile{{10, -20}, {10, -10}, {10, 0}, {1, 10}, {1, 11}, {1, 12}, {1, 13}, {1, 14}}
	require.NoError(t, CheckCoverage(s, l, good))
	require.NoError(t, CheckCoverage(Span{5, 5}, l, nil))

	for _, c := range []struct {
		name  string
		span  Span
		tiles []Tile
	}{
		{"gap-start", s, good[1:]},
		{"gap-end", s, good[:len(good)-1]},
		{"gap-middle", s, append(append([]Tile(nil), good[:2]...), good[3:]...)},
		{"overlap", s, append([]Tile{{1, -15}}, good...)},
		{"duplicate", s, append([]Tile{good[0]}, good...)},
		{"outside", s, append([]Tile{{1, 15}}, good...)},
		{"scale", s, append([]Tile{{5, 100}}, good...)},
		{"misaligned", Span{0, 10}, []Tile{{10, 0}, {10, 5}}},
		{"empty-span", Span{5, 5}, []Tile{{1, 5}}},
		{"nothing", Span{0, 1}, nil},
	} {
		t.Run(c.name, func(t *testing.T) {
			err := CheckCoverage(c.span, l, c.tiles)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrNotCovered))
			require.True(t, errors.HasAssertionFailure(err))
		})
	}
}
