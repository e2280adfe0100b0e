// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants contains assertions that only run in builds with the
// "invariants" or "race" build tags.
package invariants

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
)

// Sometimes returns true percent% of the time if we were built with the
// "invariants" of "race" build tags
func Sometimes(percent int) bool {
	return Enabled && rand.Uint32N(100) < uint32(percent)
}

// Assertf panics with an assertion failure if cond is false and invariants
// are enabled.
func Assertf(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
