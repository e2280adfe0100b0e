// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package render draws binary trees as ASCII diagrams.
//
// Every node is given a column slot equal to its in-order index and a level
// equal to its depth, so a node is always to the right of its entire left
// subtree and to the left of its entire right subtree. All slots have the
// same width, wide enough for the longest label.
package render

import (
	"strconv"

	"github.com/cockroachdb/avlquiz/internal/bintree"
)

// Layout assigns the layout slots of every node: X is the node's in-order
// index and Y its depth. It returns the number of nodes.
func Layout(root *bintree.Node) int {
	x := 0
	bintree.InOrder(root, func(n *bintree.Node, depth int) {
		n.X, n.Y = x, depth
		x++
	})
	return x
}

// Options configures Draw.
type Options struct {
	// Highlight is drawn as [value].
	Highlight *bintree.Node
	// BalanceFactors adds a line below every level with each node's recorded
	// balance factor.
	BalanceFactors bool
	// Indent prefixes every line.
	Indent string
}

// Draw lays out the tree and draws it with the given node highlighted. A nil
// highlight draws no node specially.
func Draw(root, highlight *bintree.Node) string {
	return Options{Highlight: highlight}.Draw(root)
}

// Draw lays out the tree and draws it. An empty tree is drawn as "(empty)".
func (o Options) Draw(root *bintree.Node) string {
	if root == nil {
		return o.Indent + "(empty)"
	}
	count := Layout(root)

	// Slot width leaves room for the brackets of a highlighted label and a
	// blank on either side of the widest value.
	slot := 0
	bintree.PostOrder(root, func(n *bintree.Node) {
		slot = max(slot, len(strconv.Itoa(n.Value)))
	})
	slot += 2

	rowsPerLevel := 2
	if o.BalanceFactors {
		rowsPerLevel = 3
	}
	center := func(n *bintree.Node) int { return n.X*slot + slot/2 }
	// put writes s centered on the node's column.
	b := MakeBoard(count * slot)
	put := func(row int, n *bintree.Node, s string) {
		b.Write(row, center(n)-len(s)/2, s)
	}

	bintree.PostOrder(root, func(n *bintree.Node) {
		row := n.Y * rowsPerLevel
		label := strconv.Itoa(n.Value)
		if n == o.Highlight {
			label = "[" + label + "]"
		}
		put(row, n, label)
		if o.BalanceFactors {
			row++
			put(row, n, strconv.Itoa(n.BalanceFactor))
		}
		if n.Left != nil {
			b.Write(row+1, (center(n.Left)+center(n))/2, "/")
		}
		if n.Right != nil {
			b.Write(row+1, (center(n)+center(n.Right))/2, `\`)
		}
	})
	return b.Render(o.Indent)
}
