// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines facilities shared by the tiling packages that are not
// part of the public API, currently the Logger used to report violated
// invariants.
package base
