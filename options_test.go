// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlquiz

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	opts.EnsureDefaults()
	require.Equal(t, DefaultGeneratorOptions(), opts.Generator)
	require.Equal(t, defaultMaxGenerationAttempts, opts.MaxGenerationAttempts)
	require.NotNil(t, opts.Logger)
	require.NotNil(t, opts.EventListener.RoundStarted)
	require.NotNil(t, opts.EventListener.GenerationRetried)
	require.NotNil(t, opts.EventListener.AnswerGraded)
	require.NoError(t, opts.Validate())
}

func TestOptionsString(t *testing.T) {
	opts := &Options{Seed: 42}
	opts.EnsureDefaults()
	const expected = `[Version]
  avlquiz_version=1

[Generator]
  deep_stop_depth=3
  deep_stop_prob=0.90
  shallow_stop_depth=1
  shallow_stop_prob=0.60
  root_child_prob=0.90
  child_prob=0.70
  imbalance_prob=0.30
  min_value=1
  max_value=99

[Session]
  max_generation_attempts=1000
  seed=42
`
	require.Equal(t, expected, opts.String())
}

func TestOptionsParse(t *testing.T) {
	opts := &Options{Seed: 9, MaxGenerationAttempts: 17}
	opts.EnsureDefaults()
	opts.Generator.ImbalanceProb = 0.55
	opts.Generator.MaxValue = 500

	var parsed Options
	require.NoError(t, parsed.Parse(opts.String()))
	if diff := pretty.Diff(opts.Generator, parsed.Generator); diff != nil {
		t.Fatalf("generator options differ:\n%s", strings.Join(diff, "\n"))
	}
	require.Equal(t, opts.Seed, parsed.Seed)
	require.Equal(t, opts.MaxGenerationAttempts, parsed.MaxGenerationAttempts)
	require.Equal(t, opts.String(), parsed.String())

	// Keys that are absent leave fields untouched; comments are skipped.
	parsed = Options{Seed: 5}
	require.NoError(t, parsed.Parse("; comment\n[Generator]\n  child_prob=0.25\n"))
	require.Equal(t, uint64(5), parsed.Seed)
	require.Equal(t, 0.25, parsed.Generator.ChildProb)
}

func TestOptionsParseErrors(t *testing.T) {
	testCases := []struct {
		in  string
		err string
	}{
		{"[Generator]\n  bogus=1\n", "avlquiz: unknown option: Generator.bogus"},
		{"[Version]\n  pebble_version=1\n", "avlquiz: unknown option: Version.pebble_version"},
		{"[Version]\n  avlquiz_version=2\n", "avlquiz: unsupported options version 2"},
		{"[Bogus]\n  a=1\n", "avlquiz: unknown section: Bogus"},
		{"[Session]\n  seed\n", `avlquiz: invalid key=value syntax: "seed"`},
		{"[Session]\n  seed=-1\n", "avlquiz: parsing Session.seed"},
		{"[Generator]\n  child_prob=high\n", "avlquiz: parsing Generator.child_prob"},
	}
	for _, tc := range testCases {
		var opts Options
		err := opts.Parse(tc.in)
		require.Error(t, err, tc.in)
		require.Contains(t, err.Error(), tc.err)
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := &Options{}
	opts.EnsureDefaults()
	opts.Generator.ChildProb = 1.5
	opts.Generator.MinValue = 10
	opts.Generator.MaxValue = 1
	err := opts.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "treegen: child_prob must be in [0, 1], got 1.5")

	opts.Generator = DefaultGeneratorOptions()
	opts.Generator.MinValue = 10
	opts.Generator.MaxValue = 1
	require.ErrorContains(t, opts.Validate(), "treegen: empty value range [10, 1]")

	opts.Generator = DefaultGeneratorOptions()
	opts.MaxGenerationAttempts = 0
	require.ErrorContains(t, opts.Validate(), "max_generation_attempts (0) must be >= 1")

	// A partially filled generator keeps its zero fields, which describe a
	// generator of single-node trees all labelled 0.
	opts = &Options{Generator: GeneratorOptions{ImbalanceProb: 1}}
	opts.EnsureDefaults()
	require.Equal(t, 1.0, opts.Generator.ImbalanceProb)
	err = opts.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "root_child_prob (0) must be > 0")
	require.Contains(t, err.Error(), "value range [0, 0] must hold more than one label")
	_, err = NewSession(&Options{Generator: GeneratorOptions{ImbalanceProb: 1}})
	require.Error(t, err)
}

func TestOptionsClone(t *testing.T) {
	var started int
	opts := &Options{EventListener: &EventListener{RoundStarted: func(RoundInfo) { started++ }}}
	c := opts.Clone()
	c.EnsureDefaults()
	require.Nil(t, opts.EventListener.AnswerGraded)
	c.EventListener.RoundStarted(RoundInfo{})
	require.Equal(t, 1, started)

	var nilOpts *Options
	require.NotNil(t, nilOpts.Clone())
}
