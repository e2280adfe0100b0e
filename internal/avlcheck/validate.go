// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package avlcheck validates the AVL balance invariant of a binary tree and
// classifies the rotation needed to repair a violation.
package avlcheck

import (
	"fmt"

	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/avlquiz/internal/invariants"
)

// Result is the outcome of validating a tree.
type Result struct {
	// Valid is true if every node has a balance factor in [-1, 1].
	Valid bool
	// Height is the height of the validated subtree (-1 for an empty tree).
	// When Valid is false it is the height of the violating subtree.
	Height int
	// Reason describes the violation. Empty when Valid.
	Reason string
	// Violating is the first node, in post-order, whose balance factor is out
	// of range. It points into the validated tree.
	Violating *bintree.Node
	// Visited lists, in post-order, every node whose balance factor was
	// computed and recorded by this validation.
	Visited []*bintree.Node
}

// Validate checks the AVL invariant for the tree rooted at root.
//
// As a side effect, Validate records the balance factor of every node it
// evaluates in Node.BalanceFactor and lists those nodes in Result.Visited.
// The walk is post-order and stops evaluating as soon as a subtree reports a
// violation: both children of a node are always walked, but once either one
// is invalid the node itself is neither evaluated nor listed, and neither are
// any of its ancestors. Those nodes keep whatever balance factor they had
// before, so callers must not assume that every node carries a fresh balance
// factor when Valid is false.
func Validate(root *bintree.Node) Result {
	var visited []*bintree.Node
	r := validate(root, &visited)
	r.Visited = visited
	if r.Valid {
		invariants.Assertf(r.Height == bintree.Height(root),
			"validated height %d != computed height %d", r.Height, bintree.Height(root))
	}
	return r
}

func validate(n *bintree.Node, visited *[]*bintree.Node) Result {
	if n == nil {
		return Result{Valid: true, Height: -1}
	}
	left := validate(n.Left, visited)
	right := validate(n.Right, visited)
	if !left.Valid {
		return left
	}
	if !right.Valid {
		return right
	}

	n.BalanceFactor = left.Height - right.Height
	*visited = append(*visited, n)
	h := 1 + max(left.Height, right.Height)
	if n.BalanceFactor > 1 || n.BalanceFactor < -1 {
		return Result{
			Height:    h,
			Violating: n,
			Reason: fmt.Sprintf("node %d has balance factor %d (left height %d, right height %d)",
				n.Value, n.BalanceFactor, left.Height, right.Height),
		}
	}
	return Result{Valid: true, Height: h}
}
