// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlquiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/avlquiz/internal/avlcheck"
	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
)

var (
	// ErrAlreadyAnswered is returned when a round that was already graded is
	// graded again. The second attempt has no effect.
	ErrAlreadyAnswered = errors.New("avlquiz: round already answered")
	// ErrMalformedInput marks user input that could not be parsed. The round is
	// not consumed and the user can be asked again.
	ErrMalformedInput = errors.New("avlquiz: malformed input")
	// ErrNoRound is returned when grading before the first round started.
	ErrNoRound = errors.New("avlquiz: no round in progress")
)

type roundState int8

const (
	awaitingAnswer roundState = iota
	answered
)

// Outcome is the result of grading an answer.
type Outcome struct {
	Correct     bool
	Explanation string
}

// Round is one quiz round: a generated tree, its validation, the question
// asked about it and whether it has been answered. A round accepts a single
// answer; it moves from awaiting an answer to answered and never back.
type Round struct {
	num        int
	tree       *bintree.Node
	validation avlcheck.Result
	question   Question
	state      roundState
	outcome    Outcome
	started    crtime.Mono
}

func newRound(num int, tree *bintree.Node, q Question, v avlcheck.Result) *Round {
	return &Round{
		num:        num,
		tree:       tree,
		validation: v,
		question:   q,
		started:    crtime.NowMono(),
	}
}

// Num returns the 1-based number of the round within its session.
func (r *Round) Num() int { return r.num }

// Tree returns the round's tree, annotated with balance factors.
func (r *Round) Tree() *bintree.Node { return r.tree }

// Validation returns the validation result of the round's tree.
func (r *Round) Validation() avlcheck.Result { return r.validation }

// Question returns the round's question.
func (r *Round) Question() *Question { return &r.question }

// Answered returns true once the round has been graded.
func (r *Round) Answered() bool { return r.state == answered }

// Outcome returns the outcome of the graded answer, and false if the round
// has not been answered yet.
func (r *Round) Outcome() (Outcome, bool) {
	return r.outcome, r.state == answered
}

// GradeBoolean grades the answer to an IsAVL or GetRotation question. For
// GetRotation, true means a single rotation.
func (r *Round) GradeBoolean(answer bool) (Outcome, error) {
	if !r.question.Type.WantsBoolean() {
		return Outcome{}, errors.AssertionFailedf("avlquiz: boolean answer to a %s question", r.question.Type)
	}
	if r.state == answered {
		return Outcome{}, ErrAlreadyAnswered
	}
	return r.finish(answer == r.question.CorrectBool), nil
}

// GradeBalanceFactor grades the answer to a GetBF question.
func (r *Round) GradeBalanceFactor(answer int) (Outcome, error) {
	if r.question.Type != GetBF {
		return Outcome{}, errors.AssertionFailedf("avlquiz: integer answer to a %s question", r.question.Type)
	}
	if r.state == answered {
		return Outcome{}, ErrAlreadyAnswered
	}
	return r.finish(answer == r.question.CorrectBalanceFactor), nil
}

func (r *Round) finish(correct bool) Outcome {
	r.state = answered
	r.outcome = Outcome{Correct: correct, Explanation: r.explain(correct)}
	return r.outcome
}

func (r *Round) explain(correct bool) string {
	var buf strings.Builder
	if correct {
		buf.WriteString("Correct! ")
	} else {
		buf.WriteString("Incorrect. ")
	}
	q := &r.question
	switch q.Type {
	case IsAVL:
		if q.CorrectBool {
			buf.WriteString("The tree is a valid AVL tree: every node has a balance factor between -1 and 1.")
		} else {
			fmt.Fprintf(&buf, "The tree is not a valid AVL tree: %s.", r.validation.Reason)
		}
	case GetBF:
		n := q.Target
		fmt.Fprintf(&buf, "The balance factor of node %d is %d (left height %d minus right height %d).",
			n.Value, q.CorrectBalanceFactor, bintree.Height(n.Left), bintree.Height(n.Right))
	case GetRotation:
		n := q.Target
		side, child := "right", n.Right
		if n.BalanceFactor > 0 {
			side, child = "left", n.Left
		}
		fmt.Fprintf(&buf, "Node %d has balance factor %d", n.Value, n.BalanceFactor)
		if child != nil {
			fmt.Fprintf(&buf, " and its %s child %d has balance factor %d", side, child.Value, child.BalanceFactor)
		}
		fmt.Fprintf(&buf, ": this is the %s case, which needs a %s.", q.Rotation, q.Rotation.Describe())
	}
	return buf.String()
}

// ParseBalanceFactor parses a raw balance factor answer. Errors are marked
// with ErrMalformedInput.
func ParseBalanceFactor(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Mark(errors.Newf("avlquiz: %q is not an integer", s), ErrMalformedInput)
	}
	return v, nil
}
