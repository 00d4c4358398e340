// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tiling

import "github.com/cockroachdb/tiling/internal/base"

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger = base.DefaultLogger

// NoopLogger discards informational messages and panics on fatal ones.
type NoopLogger = base.NoopLogger

// Options holds the optional parameters for a Decomposer.
type Options struct {
	// Logger receives reports of violated internal invariants, which are
	// always bugs. It is only consulted when coverage verification runs.
	//
	// The default is DefaultLogger.
	Logger Logger

	// VerifyCoverage, if true, checks every decomposition with
	// CheckCoverage. Otherwise a small sample of decompositions is checked in
	// builds with the "invariants" or "race" tags, and none in other builds.
	VerifyCoverage bool
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	return o
}

// Clone creates a shallow-copy of the supplied options.
func (o *Options) Clone() *Options {
	n := &Options{}
	if o != nil {
		*n = *o
	}
	return n
}
