// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlquiz

import (
	"testing"
	"time"

	"github.com/cockroachdb/avlquiz/internal/avlcheck"
	"github.com/stretchr/testify/require"
)

func TestMetricsString(t *testing.T) {
	m := Metrics{Rounds: 5, InvalidTrees: 2, GenerationRetries: 1}
	m.Questions[IsAVL] = QuestionMetrics{Asked: 2, Correct: 1, Incorrect: 1}
	m.Questions[GetBF] = QuestionMetrics{Asked: 2, Correct: 2}
	m.Questions[GetRotation] = QuestionMetrics{Asked: 1, Incorrect: 1}
	m.Rotations[avlcheck.LR] = 2
	require.Equal(t, int64(5), m.Answered())

	s := m.String()
	require.Contains(t, s, "rounds: 5  invalid trees: 2  generation retries: 1\n")
	for _, want := range []string{"QUESTION", "is-avl", "balance-factor", "rotation", "ROTATION", "LR", "simple"} {
		require.Contains(t, s, want)
	}
	require.NotContains(t, s, "none")
}

func TestEventInfoString(t *testing.T) {
	require.Equal(t,
		"[round 4] started: rotation question, 6 nodes, valid=false, attempts=1: [50,[30,[20,10,_],40],60]",
		RoundInfo{Round: 4, Question: GetRotation, Tree: "[50,[30,[20,10,_],40],60]", Nodes: 6, Attempts: 1}.String())
	require.Equal(t,
		"[round 2] generator returned an empty tree (attempt 3); retrying",
		GenerationRetryInfo{Round: 2, Attempt: 3}.String())
	require.Equal(t,
		"[round 2] incorrect answer to balance-factor question after 1.5s; score 0",
		GradeInfo{Round: 2, Question: GetBF, Latency: 1500 * time.Millisecond}.String())
}
