// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
)

// A Plan is the result of decomposing a span: a set of tiles that are
// pairwise disjoint and whose union is exactly Span.
type Plan struct {
	Span  Span
	Tiles []Tile
}

// Sort orders the plan's tiles by start.
func (p *Plan) Sort() {
	SortTiles(p.Tiles)
}

// Runs returns the plan's tiles grouped into maximal runs of adjacent tiles of
// the same scale, ordered by start. A store can fetch each run with a single
// scan over the run's buckets.
func (p Plan) Runs() []Run {
	tiles := slices.Clone(p.Tiles)
	SortTiles(tiles)
	var runs []Run
	for _, t := range tiles {
		if n := len(runs); n > 0 && runs[n-1].Scale == t.Scale && runs[n-1].Span.End == t.Start {
			runs[n-1].Span.End = t.End()
			continue
		}
		runs = append(runs, Run{Scale: t.Scale, Span: t.Span()})
	}
	return runs
}

// Raw returns the spans that are tiled at scale 1, merged and ordered by
// start. These have no precomputed aggregate and must be assembled from raw
// samples.
func (p Plan) Raw() []Span {
	var spans []Span
	for _, r := range p.Runs() {
		if r.Scale == RawScale {
			spans = append(spans, r.Span)
		}
	}
	return spans
}

// Rollups returns the tiles with a scale larger than 1, in plan order.
func (p Plan) Rollups() []Tile {
	var tiles []Tile
	for _, t := range p.Tiles {
		if !t.Raw() {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Materializable returns the rollup tiles that end at or before watermark,
// the latest timestamp for which raw data is complete. Only these may be
// persisted; an aggregate over a partially ingested interval would be stale.
func (p Plan) Materializable(watermark int64) []Tile {
	var tiles []Tile
	for _, t := range p.Tiles {
		if !t.Raw() && t.End() <= watermark {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Stats returns the number of tiles of each scale, largest scale first.
func (p Plan) Stats() PlanStats {
	var stats PlanStats
	for _, t := range p.Tiles {
		i, ok := slices.BinarySearchFunc(stats, t.Scale, func(e ScaleCount, scale int64) int {
			return cmp.Compare(scale, e.Scale)
		})
		if !ok {
			stats = slices.Insert(stats, i, ScaleCount{Scale: t.Scale})
		}
		stats[i].Count++
	}
	return stats
}

// String implements fmt.Stringer.
func (p Plan) String() string {
	return redact.StringWithoutMarkers(p)
}

// SafeFormat implements redact.SafeFormatter.
func (p Plan) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(p.Span)
	w.SafeString(":")
	if len(p.Tiles) == 0 {
		w.SafeString(" <empty>")
		return
	}
	for _, t := range p.Tiles {
		w.SafeRune(' ')
		w.Print(t)
	}
}

// A Run is a sequence of adjacent tiles of the same scale.
type Run struct {
	Scale int64
	Span  Span
}

// Count returns the number of tiles in the run.
func (r Run) Count() uint64 {
	return r.Span.Len() / uint64(r.Scale)
}

// Tiles returns the tiles that make up the run.
func (r Run) Tiles() []Tile {
	tiles := make([]Tile, r.Count())
	for i := range tiles {
		tiles[i] = Tile{Scale: r.Scale, Start: r.Span.Start + int64(i)*r.Scale}
	}
	return tiles
}

// String implements fmt.Stringer.
func (r Run) String() string {
	return redact.StringWithoutMarkers(r)
}

// SafeFormat implements redact.SafeFormatter.
func (r Run) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%d@%s", redact.SafeInt(r.Scale), r.Span)
}

// ScaleCount is the number of tiles of one scale in a plan.
type ScaleCount struct {
	Scale int64
	Count int
}

// PlanStats summarizes a plan by scale, largest scale first.
type PlanStats []ScaleCount

// Total returns the total number of tiles.
func (s PlanStats) Total() int {
	n := 0
	for _, c := range s {
		n += c.Count
	}
	return n
}

// String implements fmt.Stringer.
func (s PlanStats) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s PlanStats) SafeFormat(w redact.SafePrinter, _ rune) {
	for i, c := range s {
		if i > 0 {
			w.SafeString(", ")
		}
		w.Printf("%d: %s", redact.SafeInt(c.Scale), crhumanize.Count(uint64(c.Count), crhumanize.Compact))
	}
	w.Printf(" (total %s)", crhumanize.Count(uint64(s.Total()), crhumanize.Compact))
}
