// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlquiz

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/avlquiz/internal/treegen"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// GeneratorOptions holds the tunable probabilities of the tree generator.
type GeneratorOptions = treegen.Config

// DefaultGeneratorOptions returns the stock generator probabilities.
func DefaultGeneratorOptions() GeneratorOptions {
	return treegen.DefaultConfig()
}

const defaultMaxGenerationAttempts = 1000

// Options holds the optional parameters for configuring a quiz session. The
// zero value is valid: EnsureDefaults fills in every unset field.
type Options struct {
	// Generator configures the random tree generator. A zero value is replaced
	// by DefaultGeneratorOptions. A non-zero value is used as is, so callers
	// overriding a single field should start from DefaultGeneratorOptions.
	Generator GeneratorOptions

	// Seed seeds the session's random source. Zero means a random seed.
	Seed uint64

	// MaxGenerationAttempts bounds the number of times a round calls the
	// generator while it keeps returning empty trees.
	MaxGenerationAttempts int

	// Logger used to write log messages, such as a round giving up on the
	// generator.
	//
	// The default logger uses the Go standard library log package.
	Logger Logger

	// EventListener provides hooks to listening to significant session events.
	// By default, a no-op EventListener is used.
	EventListener *EventListener

	// AnswerLatency, if set, records the time between the start of a round and
	// the grading of its answer, in seconds.
	AnswerLatency prometheus.Histogram
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified.
func (o *Options) EnsureDefaults() {
	if o.Generator == (GeneratorOptions{}) {
		o.Generator = DefaultGeneratorOptions()
	}
	if o.MaxGenerationAttempts <= 0 {
		o.MaxGenerationAttempts = defaultMaxGenerationAttempts
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	if o.EventListener == nil {
		o.EventListener = &EventListener{}
	}
	o.EventListener.EnsureDefaults()
}

// Clone creates a shallow-copy of the supplied options.
func (o *Options) Clone() *Options {
	n := &Options{}
	if o != nil {
		*n = *o
	}
	if o != nil && o.EventListener != nil {
		l := *o.EventListener
		n.EventListener = &l
	}
	return n
}

// Validate verifies that the options are mutually consistent.
func (o *Options) Validate() error {
	var buf strings.Builder
	g := &o.Generator
	if err := g.Validate(); err != nil {
		fmt.Fprintf(&buf, "%s\n", err)
	}
	if g.RootChildProb == 0 {
		fmt.Fprintf(&buf, "root_child_prob (0) must be > 0: every tree would be a single node\n")
	}
	if g.MinValue == g.MaxValue {
		fmt.Fprintf(&buf, "value range [%d, %d] must hold more than one label\n", g.MinValue, g.MaxValue)
	}
	if o.MaxGenerationAttempts < 1 {
		fmt.Fprintf(&buf, "max_generation_attempts (%d) must be >= 1\n", o.MaxGenerationAttempts)
	}
	if buf.Len() == 0 {
		return nil
	}
	return errors.New(buf.String())
}

func (o *Options) String() string {
	var buf bytes.Buffer

	g := &o.Generator
	fmt.Fprintf(&buf, "[Version]\n")
	fmt.Fprintf(&buf, "  avlquiz_version=1\n")
	fmt.Fprintf(&buf, "\n")
	fmt.Fprintf(&buf, "[Generator]\n")
	fmt.Fprintf(&buf, "  deep_stop_depth=%d\n", g.DeepStopDepth)
	fmt.Fprintf(&buf, "  deep_stop_prob=%.2f\n", g.DeepStopProb)
	fmt.Fprintf(&buf, "  shallow_stop_depth=%d\n", g.ShallowStopDepth)
	fmt.Fprintf(&buf, "  shallow_stop_prob=%.2f\n", g.ShallowStopProb)
	fmt.Fprintf(&buf, "  root_child_prob=%.2f\n", g.RootChildProb)
	fmt.Fprintf(&buf, "  child_prob=%.2f\n", g.ChildProb)
	fmt.Fprintf(&buf, "  imbalance_prob=%.2f\n", g.ImbalanceProb)
	fmt.Fprintf(&buf, "  min_value=%d\n", g.MinValue)
	fmt.Fprintf(&buf, "  max_value=%d\n", g.MaxValue)
	fmt.Fprintf(&buf, "\n")
	fmt.Fprintf(&buf, "[Session]\n")
	fmt.Fprintf(&buf, "  max_generation_attempts=%d\n", o.MaxGenerationAttempts)
	fmt.Fprintf(&buf, "  seed=%d\n", o.Seed)
	return buf.String()
}

type parseOptionsFuncs struct {
	visitNewSection func(section string) error
	visitKeyValue   func(section, key, value string) error
}

// parseOptions takes options serialized by Options.String() and parses them
// into keys and values. It calls fns.visitNewSection for the beginning of each
// new section and fns.visitKeyValue for each key-value pair. Blank lines and
// lines starting with ';' or '#' are skipped.
func parseOptions(s string, fns parseOptionsFuncs) error {
	var section string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == ';' || line[0] == '#' {
			continue
		}
		n := len(line)
		if line[0] == '[' && line[n-1] == ']' {
			section = line[1 : n-1]
			if fns.visitNewSection != nil {
				if err := fns.visitNewSection(section); err != nil {
					return err
				}
			}
			continue
		}

		pos := strings.Index(line, "=")
		if pos < 0 {
			const maxLen = 50
			if len(line) > maxLen {
				line = line[:maxLen-3] + "..."
			}
			return errors.Errorf("avlquiz: invalid key=value syntax: %q", errors.Safe(line))
		}

		key := strings.TrimSpace(line[:pos])
		value := strings.TrimSpace(line[pos+1:])
		if fns.visitKeyValue != nil {
			if err := fns.visitKeyValue(section, key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Parse parses the options from the specified string. Keys that are not
// present leave the corresponding field unchanged.
func (o *Options) Parse(s string) error {
	visitKeyValue := func(section, key, value string) error {
		var err error
		g := &o.Generator
		switch {
		case section == "Version":
			switch key {
			case "avlquiz_version":
				var v int
				v, err = strconv.Atoi(value)
				if err == nil && v != 1 {
					return errors.Errorf("avlquiz: unsupported options version %d", errors.Safe(v))
				}
			default:
				return errors.Errorf("avlquiz: unknown option: %s.%s",
					errors.Safe(section), errors.Safe(key))
			}

		case section == "Generator":
			switch key {
			case "deep_stop_depth":
				g.DeepStopDepth, err = strconv.Atoi(value)
			case "deep_stop_prob":
				g.DeepStopProb, err = strconv.ParseFloat(value, 64)
			case "shallow_stop_depth":
				g.ShallowStopDepth, err = strconv.Atoi(value)
			case "shallow_stop_prob":
				g.ShallowStopProb, err = strconv.ParseFloat(value, 64)
			case "root_child_prob":
				g.RootChildProb, err = strconv.ParseFloat(value, 64)
			case "child_prob":
				g.ChildProb, err = strconv.ParseFloat(value, 64)
			case "imbalance_prob":
				g.ImbalanceProb, err = strconv.ParseFloat(value, 64)
			case "min_value":
				g.MinValue, err = strconv.Atoi(value)
			case "max_value":
				g.MaxValue, err = strconv.Atoi(value)
			default:
				return errors.Errorf("avlquiz: unknown option: %s.%s",
					errors.Safe(section), errors.Safe(key))
			}

		case section == "Session":
			switch key {
			case "max_generation_attempts":
				o.MaxGenerationAttempts, err = strconv.Atoi(value)
			case "seed":
				o.Seed, err = strconv.ParseUint(value, 10, 64)
			default:
				return errors.Errorf("avlquiz: unknown option: %s.%s",
					errors.Safe(section), errors.Safe(key))
			}

		default:
			return errors.Errorf("avlquiz: unknown section: %s", errors.Safe(section))
		}
		if err != nil {
			return errors.Wrapf(err, "avlquiz: parsing %s.%s", errors.Safe(section), errors.Safe(key))
		}
		return nil
	}
	return parseOptions(s, parseOptionsFuncs{visitKeyValue: visitKeyValue})
}
