// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlquiz

import (
	"time"

	"github.com/cockroachdb/redact"
)

// RoundInfo contains the info for a round started event.
type RoundInfo struct {
	// Round is the 1-based round number within the session.
	Round int
	// Question is the type of question asked.
	Question QuestionType
	// Tree is the round's tree in bracket notation.
	Tree string
	// Nodes is the number of nodes in the tree.
	Nodes int
	// Valid is true if the tree is a valid AVL tree.
	Valid bool
	// Attempts is the number of generator calls needed to obtain the tree.
	Attempts int
}

func (i RoundInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i RoundInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[round %d] started: %s question, %d nodes, valid=%t, attempts=%d: %s",
		redact.Safe(i.Round), i.Question, redact.Safe(i.Nodes), redact.Safe(i.Valid),
		redact.Safe(i.Attempts), redact.Safe(i.Tree))
}

// GenerationRetryInfo contains the info for a generation retry event, fired
// every time the generator returns an empty tree.
type GenerationRetryInfo struct {
	Round   int
	Attempt int
}

func (i GenerationRetryInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i GenerationRetryInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[round %d] generator returned an empty tree (attempt %d); retrying",
		redact.Safe(i.Round), redact.Safe(i.Attempt))
}

// GradeInfo contains the info for an answer graded event.
type GradeInfo struct {
	Round    int
	Question QuestionType
	Correct  bool
	// Score is the session score after grading.
	Score int
	// Latency is the time between the start of the round and the answer.
	Latency time.Duration
}

func (i GradeInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i GradeInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	verdict := redact.SafeString("incorrect")
	if i.Correct {
		verdict = "correct"
	}
	w.Printf("[round %d] %s answer to %s question after %.1fs; score %d",
		redact.Safe(i.Round), verdict, i.Question, redact.Safe(i.Latency.Seconds()), redact.Safe(i.Score))
}

// EventListener contains a set of functions that will be invoked when various
// significant session events occur. Note that the functions should not run
// for an excessive amount of time as they are invoked synchronously by the
// session.
type EventListener struct {
	// RoundStarted is invoked after a new round's tree was generated and
	// validated and its question selected.
	RoundStarted func(RoundInfo)

	// GenerationRetried is invoked each time the generator returns an empty
	// tree and the session tries again.
	GenerationRetried func(GenerationRetryInfo)

	// AnswerGraded is invoked after an answer was graded.
	AnswerGraded func(GradeInfo)
}

// EnsureDefaults ensures that all the callbacks are non-nil.
func (l *EventListener) EnsureDefaults() {
	if l.RoundStarted == nil {
		l.RoundStarted = func(RoundInfo) {}
	}
	if l.GenerationRetried == nil {
		l.GenerationRetried = func(GenerationRetryInfo) {}
	}
	if l.AnswerGraded == nil {
		l.AnswerGraded = func(GradeInfo) {}
	}
}

// MakeLoggingEventListener creates an EventListener that logs all events to
// the specified logger.
func MakeLoggingEventListener(logger Logger) EventListener {
	if logger == nil {
		logger = DefaultLogger{}
	}
	return EventListener{
		RoundStarted: func(info RoundInfo) {
			logger.Infof("%s", info)
		},
		GenerationRetried: func(info GenerationRetryInfo) {
			logger.Infof("%s", info)
		},
		AnswerGraded: func(info GradeInfo) {
			logger.Infof("%s", info)
		},
	}
}

// TeeEventListener wraps two EventListeners, forwarding all events to both.
func TeeEventListener(a, b EventListener) EventListener {
	a.EnsureDefaults()
	b.EnsureDefaults()
	return EventListener{
		RoundStarted: func(info RoundInfo) {
			a.RoundStarted(info)
			b.RoundStarted(info)
		},
		GenerationRetried: func(info GenerationRetryInfo) {
			a.GenerationRetried(info)
			b.GenerationRetried(info)
		},
		AnswerGraded: func(info GradeInfo) {
			a.AnswerGraded(info)
			b.AnswerGraded(info)
		},
	}
}
