// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tiling decomposes an integer range into aligned tiles drawn from a
// ladder of granularities.
//
// A multi-resolution time-series store keeps precomputed aggregates at
// several scales (for example 10000, 1000, 100 and 10 time units) alongside
// the raw samples (scale 1). To answer a query over [t0, t1) it needs the set
// of aggregate buckets whose union is exactly the query range, preferring the
// coarsest buckets available:
//
//	ladder := tiling.MustMakeLadder(10000, 1000, 100, 10, 1)
//	plan, err := tiling.Decompose(ladder, 3, 23)
//	// plan.Tiles: 10@10, 1@20, 1@21, 1@22, 1@3, ..., 1@9
//
// A Tile (scale, start) denotes [start, start+scale) and is always aligned:
// start is a multiple of scale. Tiles of scale 1 denote raw data that the
// store must assemble from unaggregated samples.
//
// # Algorithm
//
// The Decomposer keeps an explicit stack of pending spans. For each popped
// span it walks the ladder from the largest scale down and picks the first
// scale for which at least one aligned tile fits entirely inside the span. It
// emits every aligned tile of that scale between the span's rounded-up start
// and rounded-down end, and pushes the leftovers on either side back onto the
// stack, where they are resolved independently at finer scales. Because every
// ladder ends in 1, every non-empty span is eventually tiled.
//
// The tile count is not globally minimal, but it is bounded by the
// mixed-radix representation of the endpoints under the ladder's ratios; see
// Count and MaxTiles.
//
// Rounding uses floor semantics (toward negative infinity), so negative
// ranges tile the same way as positive ones.
//
// # Verifying coverage
//
// Subtract and Remainder implement the simple oracle used to prove that a set
// of tiles covers a span: starting from [span], subtract every tile; an empty
// remainder proves coverage. Subtract only handles a subtrahend that is fully
// nested inside one of the spans. CheckCoverage is a stricter checker that
// also reports overlaps, stray tiles and misaligned tiles.
package tiling
