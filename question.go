// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlquiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/cockroachdb/avlquiz/internal/avlcheck"
	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/avlquiz/internal/randvar"
	"github.com/cockroachdb/redact"
)

// QuestionType enumerates the kinds of questions the quiz asks.
type QuestionType int8

const (
	// IsAVL asks whether the tree satisfies the AVL balance invariant.
	IsAVL QuestionType = iota
	// GetBF asks for the balance factor of a highlighted node.
	GetBF
	// GetRotation asks whether the violating node needs a single or a double
	// rotation.
	GetRotation

	numQuestionTypes
)

var questionTypeStrings = [numQuestionTypes]string{
	IsAVL:       "is-avl",
	GetBF:       "balance-factor",
	GetRotation: "rotation",
}

// String implements fmt.Stringer.
func (t QuestionType) String() string {
	return redact.StringWithoutMarkers(t)
}

// SafeFormat implements redact.SafeFormatter.
func (t QuestionType) SafeFormat(w redact.SafePrinter, _ rune) {
	if t < 0 || t >= numQuestionTypes {
		w.Print(redact.SafeString("unknown"))
		return
	}
	w.Print(redact.SafeString(questionTypeStrings[t]))
}

// WantsBoolean returns true if the question is answered with one of two
// choices, and false if it is answered with an integer.
func (t QuestionType) WantsBoolean() bool {
	return t != GetBF
}

// Question is the question of one quiz round along with its expected answer.
type Question struct {
	Type QuestionType
	// Target is the node the question is about: the node whose balance factor
	// is asked for GetBF, or the violating node for GetRotation. It is nil for
	// IsAVL.
	Target *bintree.Node
	// Rotation is the rebalancing case of the violating node (GetRotation
	// only).
	Rotation avlcheck.Rotation
	// CorrectBool is the expected answer to IsAVL (true means valid) and to
	// GetRotation (true means a single rotation).
	CorrectBool bool
	// CorrectBalanceFactor is the expected answer to GetBF.
	CorrectBalanceFactor int
}

// Prompt returns the text of the question.
func (q *Question) Prompt() string {
	switch q.Type {
	case IsAVL:
		return "Is this tree a valid AVL tree?"
	case GetBF:
		return fmt.Sprintf("What is the balance factor of node %d?", q.Target.Value)
	case GetRotation:
		return fmt.Sprintf("Node %d violates the AVL property. Does it need a single or a double rotation?",
			q.Target.Value)
	default:
		return ""
	}
}

// BooleanLabels returns the labels of the true and false choices of a boolean
// question, or empty strings for GetBF.
func (q *Question) BooleanLabels() (yes, no string) {
	switch q.Type {
	case IsAVL:
		return "Yes", "No"
	case GetRotation:
		return "Single", "Double"
	default:
		return "", ""
	}
}

// Highlight returns the node a renderer should distinguish, if any.
func (q *Question) Highlight() *bintree.Node {
	return q.Target
}

// selectQuestion picks the question for a validated tree. The pool always
// contains IsAVL, contains GetBF twice when more than one node was evaluated,
// and contains GetRotation when the tree is invalid; one entry is drawn
// uniformly.
func selectQuestion(rng *rand.Rand, root *bintree.Node, v avlcheck.Result) Question {
	pool := questionPool(v)
	q := Question{Type: randvar.Pick(rng, pool)}
	switch q.Type {
	case IsAVL:
		q.CorrectBool = v.Valid
	case GetBF:
		q.Target = randvar.Pick(rng, balanceFactorTargets(root, v.Visited))
		q.CorrectBalanceFactor = q.Target.BalanceFactor
	case GetRotation:
		q.Target = v.Violating
		q.Rotation = avlcheck.Classify(v.Violating)
		q.CorrectBool = q.Rotation.IsSingle()
	}
	return q
}

func questionPool(v avlcheck.Result) []QuestionType {
	pool := []QuestionType{IsAVL}
	if len(v.Visited) > 1 {
		pool = append(pool, GetBF, GetBF)
	}
	if !v.Valid {
		pool = append(pool, GetRotation)
	}
	return pool
}

// balanceFactorTargets returns the evaluated nodes that make interesting
// balance factor questions: nodes with at least one child, and the root.
func balanceFactorTargets(root *bintree.Node, visited []*bintree.Node) []*bintree.Node {
	var targets []*bintree.Node
	for _, n := range visited {
		if n.HasChild() || n == root {
			targets = append(targets, n)
		}
	}
	return targets
}
