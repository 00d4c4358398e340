// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package testutils holds helpers shared by the tests of the tiling packages.
package testutils

import (
	"testing"

	"github.com/cockroachdb/tiling/internal/base"
)

// Logger is a base.Logger that writes to a testing.TB and fails the test on
// Fatalf, so that invariant violations detected during a test surface as test
// failures instead of exiting the process.
type Logger struct {
	T testing.TB
}

var _ base.Logger = Logger{}

// Infof implements the base.Logger interface.
func (l Logger) Infof(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

// Fatalf implements the base.Logger interface.
func (l Logger) Fatalf(format string, args ...interface{}) {
	l.T.Helper()
	l.T.Fatalf(format, args...)
}
