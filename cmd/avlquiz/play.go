// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/avlquiz"
	"github.com/cockroachdb/avlquiz/internal/render"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var playConfig struct {
	seed        uint64
	rounds      int
	showBF      bool
	optionsFile string
	verbose     bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play the quiz in the terminal",
	Long: `
Play quiz rounds until the requested number of rounds was played, the input
ends, or "q" is entered. Yes/No and Single/Double questions accept the full
label or its first letter. The final score and per-question metrics are
printed at the end.
`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(playConfig.optionsFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = playConfig.seed
	}
	if playConfig.verbose {
		l := avlquiz.MakeLoggingEventListener(opts.Logger)
		opts.EventListener = &l
	}
	s, err := avlquiz.NewSession(opts)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	q := newQuiz(s, cmd.InOrStdin(), stdout, playConfig.showBF)
	if err := q.run(playConfig.rounds); err != nil {
		return err
	}
	m := s.Metrics()
	fmt.Fprintf(stdout, "\nFinal score: %d/%d\n\n%s", s.Score(), m.Answered(), m.String())
	return nil
}

// quiz is the terminal front end of a session.
type quiz struct {
	session *avlquiz.Session
	in      *bufio.Scanner
	out     io.Writer
	showBF  bool
}

func newQuiz(s *avlquiz.Session, in io.Reader, out io.Writer, showBF bool) *quiz {
	return &quiz{session: s, in: bufio.NewScanner(in), out: out, showBF: showBF}
}

// run plays up to n rounds; n <= 0 means no limit. It returns early without
// error when the input ends or the user quits.
func (q *quiz) run(n int) error {
	for i := 0; n <= 0 || i < n; i++ {
		r, err := q.session.NewRound()
		if err != nil {
			return err
		}
		fmt.Fprintf(q.out, "\nRound %d (score %d)\n\n%s\n\n", r.Num(), q.session.Score(),
			render.Options{Highlight: r.Question().Highlight(), Indent: "  "}.Draw(r.Tree()))
		if more, err := q.ask(r); err != nil || !more {
			return err
		}
	}
	return nil
}

// ask prompts until the round is answered. Unparseable answers are reported
// and asked again. It returns false if the input ended or the user quit.
func (q *quiz) ask(r *avlquiz.Round) (bool, error) {
	question := r.Question()
	yes, no := question.BooleanLabels()
	for {
		if question.Type.WantsBoolean() {
			fmt.Fprintf(q.out, "%s [%s/%s] ", question.Prompt(), yes, no)
		} else {
			fmt.Fprintf(q.out, "%s ", question.Prompt())
		}
		if !q.in.Scan() {
			fmt.Fprintln(q.out)
			return false, q.in.Err()
		}
		line := strings.TrimSpace(q.in.Text())
		if line == "q" || line == "quit" {
			return false, nil
		}

		var out avlquiz.Outcome
		var err error
		if question.Type.WantsBoolean() {
			var answer bool
			if answer, err = parseChoice(line, yes, no); err == nil {
				out, err = q.session.GradeBoolean(answer)
			}
		} else {
			out, err = q.session.SubmitBalanceFactor(line)
		}
		if errors.Is(err, avlquiz.ErrMalformedInput) {
			fmt.Fprintf(q.out, "%v\n", err)
			continue
		}
		if err != nil {
			return false, err
		}

		fmt.Fprintf(q.out, "%s\n", out.Explanation)
		if q.showBF {
			fmt.Fprintf(q.out, "\n%s\n", render.Options{
				Highlight:      question.Highlight(),
				BalanceFactors: true,
				Indent:         "  ",
			}.Draw(r.Tree()))
		}
		return true, nil
	}
}

// parseChoice maps the user's input to true for the yes label and false for
// the no label. Either label or its first letter is accepted, ignoring case.
func parseChoice(input, yes, no string) (bool, error) {
	matches := func(label string) bool {
		return strings.EqualFold(input, label) || strings.EqualFold(input, label[:1])
	}
	switch {
	case matches(yes):
		return true, nil
	case matches(no):
		return false, nil
	}
	return false, errors.Mark(errors.Newf("please answer %s or %s", yes, no), avlquiz.ErrMalformedInput)
}
