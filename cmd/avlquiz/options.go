// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"os"

	"github.com/cockroachdb/avlquiz"
	"github.com/cockroachdb/errors"
)

// loadOptions returns the default options overridden by the INI file at path,
// if any.
func loadOptions(path string) (*avlquiz.Options, error) {
	opts := &avlquiz.Options{}
	opts.EnsureDefaults()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := opts.Parse(string(data)); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return opts, nil
}
