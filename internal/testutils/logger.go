// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package testutils

import (
	"fmt"
	"sync"
	"testing"
)

// Logger is a logger that writes to a testing.TB and remembers every message
// so tests can assert on what was logged.
type Logger struct {
	T testing.TB

	mu    sync.Mutex
	lines []string
}

// NewLogger returns a Logger writing to t.
func NewLogger(t testing.TB) *Logger {
	return &Logger{T: t}
}

func (l *Logger) record(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

// Infof implements base.Logger.
func (l *Logger) Infof(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	l.record(s)
	l.T.Log(s)
}

// Errorf implements base.Logger.
func (l *Logger) Errorf(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	l.record("ERROR: " + s)
	l.T.Log("ERROR: " + s)
}

// Fatalf implements base.Logger.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.T.Helper()
	l.T.Fatalf(format, args...)
}

// Lines returns a copy of the messages logged so far.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}
