// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bintree defines the binary tree node used by the quiz, along with
// helpers that compute structural properties independently of validation and
// a compact textual notation used by tests and the CLI.
package bintree

// Node is a vertex of a binary tree. A node exclusively owns its children;
// trees never share subtrees and never contain cycles.
type Node struct {
	// Value is the display label of the node. It is not a key: duplicates are
	// permitted and the tree is not ordered.
	Value int
	Left  *Node
	Right *Node
	// BalanceFactor is Height(Left) - Height(Right) as recorded by the last
	// validation that visited this node. It is 0 for freshly generated nodes.
	BalanceFactor int
	// X and Y are layout coordinates. They are populated by the renderer and
	// never read by the tree algorithms.
	X, Y int
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// HasChild returns true if the node has at least one child.
func (n *Node) HasChild() bool {
	return !n.IsLeaf()
}

// Height returns the height of the subtree rooted at n. The height of an
// empty subtree is -1, so a single leaf has height 0.
func Height(n *Node) int {
	if n == nil {
		return -1
	}
	return 1 + max(Height(n.Left), Height(n.Right))
}

// Count returns the number of nodes in the subtree rooted at n.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + Count(n.Left) + Count(n.Right)
}

// PostOrder calls fn for every node of the subtree rooted at n, children
// before parents, left before right.
func PostOrder(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	PostOrder(n.Left, fn)
	PostOrder(n.Right, fn)
	fn(n)
}

// InOrder calls fn for every node of the subtree rooted at n along with the
// node's depth relative to n.
func InOrder(n *Node, fn func(n *Node, depth int)) {
	inOrder(n, 0, fn)
}

func inOrder(n *Node, depth int, fn func(*Node, int)) {
	if n == nil {
		return
	}
	inOrder(n.Left, depth+1, fn)
	fn(n, depth)
	inOrder(n.Right, depth+1, fn)
}

// ResetBalanceFactors sets the recorded balance factor of every node in the
// subtree to 0.
func ResetBalanceFactors(n *Node) {
	PostOrder(n, func(n *Node) { n.BalanceFactor = 0 })
}
