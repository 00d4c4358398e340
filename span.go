// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

import "github.com/cockroachdb/redact"

// Span is the half-open interval [Start, End) over int64. A valid Span has
// Start <= End; Start == End is the empty span.
type Span struct {
	Start, End int64
}

// MakeSpan returns the span [start, end), or an error marked ErrInvalidRange
// if end < start.
func MakeSpan(start, end int64) (Span, error) {
	if end < start {
		return Span{}, invalidRangef("tiling: range end %d precedes start %d", end, start)
	}
	return Span{Start: start, End: end}, nil
}

// Valid returns true if Start <= End.
func (s Span) Valid() bool {
	return s.Start <= s.End
}

// Empty returns true if the span contains no points.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of points in the span. The result is exact for any
// valid span, including [math.MinInt64, math.MaxInt64).
func (s Span) Len() uint64 {
	return uint64(s.End - s.Start)
}

// Contains returns true if o lies entirely within s.
func (s Span) Contains(o Span) bool {
	return o.Start >= s.Start && o.End <= s.End
}

// ContainsPoint returns true if Start <= t < End.
func (s Span) ContainsPoint(t int64) bool {
	return s.Start <= t && t < s.End
}

// String implements fmt.Stringer.
func (s Span) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s Span) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%d, %d)", redact.SafeInt(s.Start), redact.SafeInt(s.End))
}
