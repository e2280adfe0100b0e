// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treegen

import "github.com/cockroachdb/errors"

// Config holds the tunable probabilities of the generator. The zero value is
// not useful; start from DefaultConfig.
type Config struct {
	// DeepStopDepth and DeepStopProb: a node requested at a depth greater
	// than DeepStopDepth is not generated with probability DeepStopProb.
	DeepStopDepth int
	DeepStopProb  float64
	// ShallowStopDepth and ShallowStopProb: a node requested at a depth
	// greater than ShallowStopDepth (that survived the deep check) is not
	// generated with probability ShallowStopProb.
	ShallowStopDepth int
	ShallowStopProb  float64
	// RootChildProb is the probability that each child of the root is
	// requested. ChildProb applies to every deeper node.
	RootChildProb float64
	ChildProb     float64
	// ImbalanceProb is the probability that a non-root node has one side
	// collapsed and the other forced two levels deep.
	ImbalanceProb float64
	// MinValue and MaxValue bound the uniformly drawn node labels.
	MinValue int
	MaxValue int
}

// DefaultConfig returns the stock generator configuration.
func DefaultConfig() Config {
	return Config{
		DeepStopDepth:    3,
		DeepStopProb:     0.9,
		ShallowStopDepth: 1,
		ShallowStopProb:  0.6,
		RootChildProb:    0.9,
		ChildProb:        0.7,
		ImbalanceProb:    0.3,
		MinValue:         1,
		MaxValue:         99,
	}
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	probs := []struct {
		name string
		p    float64
	}{
		{"deep_stop_prob", c.DeepStopProb},
		{"shallow_stop_prob", c.ShallowStopProb},
		{"root_child_prob", c.RootChildProb},
		{"child_prob", c.ChildProb},
		{"imbalance_prob", c.ImbalanceProb},
	}
	for _, p := range probs {
		if p.p < 0 || p.p > 1 {
			return errors.Errorf("treegen: %s must be in [0, 1], got %v", errors.Safe(p.name), p.p)
		}
	}
	if c.MinValue > c.MaxValue {
		return errors.Errorf("treegen: empty value range [%d, %d]", c.MinValue, c.MaxValue)
	}
	return nil
}
