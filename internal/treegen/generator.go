// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treegen generates small random binary trees for the quiz. Trees are
// probabilistically shallow, and a fraction of subtrees is deliberately
// unbalanced so that invalid AVL trees show up regularly.
package treegen

import (
	"math/rand/v2"

	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/avlquiz/internal/randvar"
)

// Generator produces random trees. It is not safe for concurrent use.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	values *randvar.Uniform
}

// New returns a generator drawing from rng. A nil rng is replaced by a
// randomly seeded source.
func New(cfg Config, rng *rand.Rand) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = randvar.NewRand()
	}
	return &Generator{
		cfg:    cfg,
		rng:    rng,
		values: randvar.NewUniform(rng, cfg.MinValue, cfg.MaxValue),
	}, nil
}

// Generate returns a new random tree. The result may be nil; callers retry
// until they get a non-empty tree. Every generated node has a zero balance
// factor.
func (g *Generator) Generate() *bintree.Node {
	return g.generate(0)
}

func (g *Generator) generate(depth int) *bintree.Node {
	if depth > g.cfg.DeepStopDepth && g.flip(g.cfg.DeepStopProb) {
		return nil
	}
	if depth > g.cfg.ShallowStopDepth && g.flip(g.cfg.ShallowStopProb) {
		return nil
	}
	n := g.newNode()
	// Injection replaces both sides, so it is decided before any child is
	// generated.
	if depth > 0 && g.flip(g.cfg.ImbalanceProb) {
		g.injectImbalance(n, depth)
		return n
	}
	childProb := g.cfg.ChildProb
	if depth == 0 {
		childProb = g.cfg.RootChildProb
	}
	if g.flip(childProb) {
		n.Left = g.generate(depth + 1)
	}
	if g.flip(childProb) {
		n.Right = g.generate(depth + 1)
	}
	return n
}

// injectImbalance leaves one side of n empty and gives the other side a fresh
// child with generated subtrees, at least one of them non-empty.
// The heavy side ends up at least two levels deep while the light side is
// empty, so n has a balance factor of magnitude 2 or more.
func (g *Generator) injectImbalance(n *bintree.Node, depth int) {
	child := g.newNode()
	child.Left = g.generate(depth + 2)
	child.Right = g.generate(depth + 2)
	if child.IsLeaf() {
		if g.flip(0.5) {
			child.Left = g.newNode()
		} else {
			child.Right = g.newNode()
		}
	}
	if g.flip(0.5) {
		n.Left, n.Right = child, nil
	} else {
		n.Left, n.Right = nil, child
	}
}

func (g *Generator) newNode() *bintree.Node {
	return &bintree.Node{Value: g.values.Int()}
}

func (g *Generator) flip(p float64) bool {
	return randvar.Bernoulli(g.rng, p)
}
