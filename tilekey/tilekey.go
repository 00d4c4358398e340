// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tilekey encodes tiles as fixed-width byte keys whose bytewise order
// matches (scale, start) order. A store that keeps one aggregate per tile can
// use the key to name the bucket, and fetch a Run of adjacent buckets with a
// single scan between the keys returned by Bounds.
//
// Encoding:
//
//	+----------------------+---------------------------------+
//	| scale (8 bytes, BE)  | start ^ 1<<63 (8 bytes, BE)     |
//	+----------------------+---------------------------------+
//
// Flipping the sign bit of the start makes negative starts sort before
// positive ones.
package tilekey

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/tiling"
)

// KeyLen is the length of an encoded tile.
const KeyLen = 16

const signBit = 1 << 63

// ErrMalformed is a marker for errors returned when decoding a key that was
// not produced by Encode.
var ErrMalformed = errors.New("tilekey: malformed key")

// Encode appends the key of t to dst and returns the extended slice.
func Encode(dst []byte, t tiling.Tile) []byte {
	dst = binary.BigEndian.AppendUint64(dst, uint64(t.Scale))
	return binary.BigEndian.AppendUint64(dst, uint64(t.Start)^signBit)
}

// Decode returns the tile encoded in key.
func Decode(key []byte) (tiling.Tile, error) {
	if len(key) != KeyLen {
		return tiling.Tile{}, errors.Mark(
			errors.Newf("tilekey: key length %d, expected %d", len(key), KeyLen), ErrMalformed)
	}
	t := tiling.Tile{
		Scale: int64(binary.BigEndian.Uint64(key)),
		Start: int64(binary.BigEndian.Uint64(key[8:]) ^ signBit),
	}
	if t.Scale <= 0 {
		return tiling.Tile{}, errors.Mark(
			errors.Newf("tilekey: non-positive scale %d", t.Scale), ErrMalformed)
	}
	return t, nil
}

// Prefix appends the prefix shared by the keys of all tiles of the given
// scale.
func Prefix(dst []byte, scale int64) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(scale))
}

// Bounds returns the keys [start, end) between which the keys of exactly the
// tiles of r lie, among all aligned tiles of r's scale.
func Bounds(r tiling.Run) (start, end []byte) {
	start = Encode(make([]byte, 0, KeyLen), tiling.Tile{Scale: r.Scale, Start: r.Span.Start})
	end = Encode(make([]byte, 0, KeyLen), tiling.Tile{Scale: r.Scale, Start: r.Span.End})
	return start, end
}
