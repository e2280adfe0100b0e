// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlcheck

import (
	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/redact"
)

// Rotation identifies the rebalancing case of an AVL violation.
type Rotation int8

const (
	// None means the node is not in violation.
	None Rotation = iota
	// LL is a left-heavy node whose left child is not right-heavy. It is fixed
	// by a single right rotation.
	LL
	// LR is a left-heavy node whose left child is right-heavy. It is fixed by
	// a left rotation of the child followed by a right rotation.
	LR
	// RR is a right-heavy node whose right child is not left-heavy. It is
	// fixed by a single left rotation.
	RR
	// RL is a right-heavy node whose right child is left-heavy. It is fixed by
	// a right rotation of the child followed by a left rotation.
	RL
	// Simple is reported when the taller child is missing, which cannot
	// happen for a node with a freshly computed balance factor.
	Simple
)

var rotationStrings = [...]string{
	None:   "none",
	LL:     "LL",
	LR:     "LR",
	RR:     "RR",
	RL:     "RL",
	Simple: "simple",
}

// String implements fmt.Stringer.
func (r Rotation) String() string {
	return redact.StringWithoutMarkers(r)
}

// SafeFormat implements redact.SafeFormatter.
func (r Rotation) SafeFormat(w redact.SafePrinter, _ rune) {
	if r < 0 || int(r) >= len(rotationStrings) {
		w.Print(redact.SafeString("unknown"))
		return
	}
	w.Print(redact.SafeString(rotationStrings[r]))
}

// IsSingle returns true for the cases repaired by one rotation.
func (r Rotation) IsSingle() bool {
	return r == LL || r == RR
}

// IsDouble returns true for the cases repaired by two rotations.
func (r Rotation) IsDouble() bool {
	return r == LR || r == RL
}

// Describe returns a short description of the repair.
func (r Rotation) Describe() string {
	switch r {
	case LL:
		return "single right rotation"
	case RR:
		return "single left rotation"
	case LR:
		return "double rotation: left on the child, then right"
	case RL:
		return "double rotation: right on the child, then left"
	case Simple:
		return "undetermined rotation (taller child missing)"
	default:
		return "no rotation"
	}
}

// Classify returns the rebalancing case for n based on the recorded balance
// factors of n and of its taller child. Both must be fresh, which holds for
// the violating node reported by Validate since children are evaluated
// before their parents.
//
// A child balance factor of 0 resolves to the single rotation case.
func Classify(n *bintree.Node) Rotation {
	if n == nil || (n.BalanceFactor >= -1 && n.BalanceFactor <= 1) {
		return None
	}
	child := n.Right
	if n.BalanceFactor > 0 {
		child = n.Left
	}
	if child == nil {
		return Simple
	}
	if n.BalanceFactor > 1 {
		if child.BalanceFactor >= 0 {
			return LL
		}
		return LR
	}
	if child.BalanceFactor <= 0 {
		return RR
	}
	return RL
}
