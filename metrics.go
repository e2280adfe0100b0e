// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlquiz

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/avlquiz/internal/avlcheck"
	"github.com/olekukonko/tablewriter"
)

// QuestionMetrics holds the counters of one question type.
type QuestionMetrics struct {
	// Asked is the number of rounds that asked this type of question.
	Asked int64
	// Correct and Incorrect count graded answers.
	Correct   int64
	Incorrect int64
}

// Metrics holds metrics for a session.
type Metrics struct {
	// Rounds is the number of rounds started.
	Rounds int64
	// GenerationRetries is the number of times the generator returned an empty
	// tree and had to be called again.
	GenerationRetries int64
	// InvalidTrees is the number of rounds whose tree violated the AVL
	// invariant.
	InvalidTrees int64
	// Questions is indexed by QuestionType.
	Questions [numQuestionTypes]QuestionMetrics
	// Rotations counts the rebalancing case of every invalid tree, indexed by
	// avlcheck.Rotation.
	Rotations [avlcheck.Simple + 1]int64
}

// Answered returns the total number of graded answers.
func (m Metrics) Answered() int64 {
	var n int64
	for i := range m.Questions {
		n += m.Questions[i].Correct + m.Questions[i].Incorrect
	}
	return n
}

// String pretty-prints the metrics as tables.
func (m *Metrics) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "rounds: %d  invalid trees: %d  generation retries: %d\n",
		m.Rounds, m.InvalidTrees, m.GenerationRetries)

	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader([]string{"question", "asked", "correct", "incorrect"})
	for t := QuestionType(0); t < numQuestionTypes; t++ {
		q := &m.Questions[t]
		tw.Append([]string{
			t.String(),
			fmt.Sprint(q.Asked),
			fmt.Sprint(q.Correct),
			fmt.Sprint(q.Incorrect),
		})
	}
	tw.Render()

	tw = tablewriter.NewWriter(&buf)
	tw.SetHeader([]string{"rotation", "count"})
	for r := avlcheck.LL; r <= avlcheck.Simple; r++ {
		tw.Append([]string{r.String(), fmt.Sprint(m.Rotations[r])})
	}
	tw.Render()
	return buf.String()
}
