// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package avlquiz implements a quiz about AVL tree balance. A Session
// generates random binary trees, some deliberately unbalanced, validates
// them, and asks one question per round: whether the tree is a valid AVL
// tree, what the balance factor of a node is, or whether an imbalance needs a
// single or a double rotation.
package avlquiz

import (
	"math/rand/v2"

	"github.com/cockroachdb/avlquiz/internal/avlcheck"
	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/avlquiz/internal/invariants"
	"github.com/cockroachdb/avlquiz/internal/randvar"
	"github.com/cockroachdb/avlquiz/internal/treegen"
	"github.com/cockroachdb/errors"
)

// treeSource produces the candidate tree of a round. A nil tree is retried.
type treeSource interface {
	Generate() *bintree.Node
}

// Session is a sequence of quiz rounds with a running score. Starting a round
// discards the previous one entirely.
//
// A Session is not safe for concurrent use.
type Session struct {
	opts    *Options
	rng     *rand.Rand
	source  treeSource
	round   *Round
	rounds  int
	score   int
	metrics Metrics
}

// NewSession creates a session configured by opts. A nil opts uses the
// defaults. The options are cloned; later changes to opts have no effect.
func NewSession(opts *Options) (*Session, error) {
	opts = opts.Clone()
	opts.EnsureDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	rng := randvar.NewRandFromSeed(opts.Seed)
	gen, err := treegen.New(opts.Generator, rng)
	if err != nil {
		return nil, err
	}
	return &Session{opts: opts, rng: rng, source: gen}, nil
}

// NewRound starts a new round, replacing the current one. The generator is
// called until it produces a non-empty tree; the tree is validated, which
// records balance factors on its nodes, and a question is selected.
func (s *Session) NewRound() (*Round, error) {
	num := s.rounds + 1
	var tree *bintree.Node
	attempts := 0
	for tree == nil {
		if attempts >= s.opts.MaxGenerationAttempts {
			err := errors.Errorf("avlquiz: generator produced %d empty trees in a row", errors.Safe(attempts))
			s.opts.Logger.Errorf("round %d: %v", num, err)
			return nil, err
		}
		attempts++
		if tree = s.source.Generate(); tree == nil {
			s.metrics.GenerationRetries++
			s.opts.EventListener.GenerationRetried(GenerationRetryInfo{Round: num, Attempt: attempts})
		}
	}

	v := avlcheck.Validate(tree)
	if invariants.Sometimes(10) {
		// Validation derives balance factors from the shape alone, so a copy
		// with cleared balance factors must reach the same verdict.
		dup := bintree.Clone(tree)
		bintree.ResetBalanceFactors(dup)
		c := avlcheck.Validate(dup)
		invariants.Assertf(c.Valid == v.Valid && len(c.Visited) == len(v.Visited),
			"revalidation of %s disagrees", bintree.String(tree))
	}
	q := selectQuestion(s.rng, tree, v)
	s.rounds = num
	s.round = newRound(num, tree, q, v)

	s.metrics.Rounds++
	s.metrics.Questions[q.Type].Asked++
	if !v.Valid {
		s.metrics.InvalidTrees++
		s.metrics.Rotations[avlcheck.Classify(v.Violating)]++
	}
	s.opts.EventListener.RoundStarted(RoundInfo{
		Round:    num,
		Question: q.Type,
		Tree:     bintree.String(tree),
		Nodes:    bintree.Count(tree),
		Valid:    v.Valid,
		Attempts: attempts,
	})
	return s.round, nil
}

// Round returns the current round, or nil before the first round.
func (s *Session) Round() *Round {
	return s.round
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// Metrics returns a snapshot of the session's metrics.
func (s *Session) Metrics() Metrics {
	return s.metrics
}

// GradeBoolean grades a boolean answer to the current round. See
// Round.GradeBoolean.
func (s *Session) GradeBoolean(answer bool) (Outcome, error) {
	return s.grade(func(r *Round) (Outcome, error) { return r.GradeBoolean(answer) })
}

// GradeBalanceFactor grades an integer answer to the current round. See
// Round.GradeBalanceFactor.
func (s *Session) GradeBalanceFactor(answer int) (Outcome, error) {
	return s.grade(func(r *Round) (Outcome, error) { return r.GradeBalanceFactor(answer) })
}

// SubmitBalanceFactor parses raw and grades it as the answer to the current
// GetBF round. Input that is not an integer returns an error marked with
// ErrMalformedInput and leaves the round awaiting an answer.
func (s *Session) SubmitBalanceFactor(raw string) (Outcome, error) {
	v, err := ParseBalanceFactor(raw)
	if err != nil {
		return Outcome{}, err
	}
	return s.GradeBalanceFactor(v)
}

func (s *Session) grade(fn func(*Round) (Outcome, error)) (Outcome, error) {
	r := s.round
	if r == nil {
		return Outcome{}, ErrNoRound
	}
	out, err := fn(r)
	if err != nil {
		return Outcome{}, err
	}
	latency := r.started.Elapsed()
	qm := &s.metrics.Questions[r.question.Type]
	if out.Correct {
		s.score++
		qm.Correct++
	} else {
		qm.Incorrect++
	}
	if s.opts.AnswerLatency != nil {
		s.opts.AnswerLatency.Observe(latency.Seconds())
	}
	s.opts.EventListener.AnswerGraded(GradeInfo{
		Round:    r.num,
		Question: r.question.Type,
		Correct:  out.Correct,
		Score:    s.score,
		Latency:  latency,
	})
	return out, nil
}
