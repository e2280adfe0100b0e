// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlquiz

import "github.com/cockroachdb/avlquiz/internal/base"

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger = base.DefaultLogger

// NoopLogger discards informational and error messages.
type NoopLogger = base.NoopLogger
