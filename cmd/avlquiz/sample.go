// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/avlquiz"
	"github.com/cockroachdb/avlquiz/internal/avlcheck"
	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/avlquiz/internal/treegen"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxSampleHeight bounds the heights recorded in the height histogram.
const maxSampleHeight = 64

var sampleConfig struct {
	trees       int
	workers     int
	seed        uint64
	optionsFile string
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "summarize the trees produced by the generator",
	Long: `
Generate trees with the quiz generator and summarize them: the share of trees
that violate the AVL invariant, the distribution of tree heights, the number
of distinct tree shapes and the rebalancing cases of the violations.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(sampleConfig.optionsFile)
		if err != nil {
			return err
		}
		cfg := opts.Generator
		if err := cfg.Validate(); err != nil {
			return err
		}
		s, err := sample(cmd.Context(), cfg, sampleConfig.trees, sampleConfig.workers, sampleConfig.seed)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), s.String())
		return nil
	},
}

// sampleStats summarizes a set of generated trees.
type sampleStats struct {
	trees   int64
	empty   int64
	invalid int64
	heights *hdrhistogram.Histogram
	// heightCounts is indexed by tree height.
	heightCounts []int64
	rotations    [avlcheck.Simple + 1]int64
	// shapes counts trees per shape hash.
	shapes swiss.Map[uint64, int64]
}

func makeSampleStats() *sampleStats {
	s := &sampleStats{heights: hdrhistogram.New(0, maxSampleHeight, 3)}
	s.shapes.Init(64)
	return s
}

func (s *sampleStats) add(root *bintree.Node) error {
	s.trees++
	if root == nil {
		s.empty++
		return nil
	}
	h := bintree.Height(root)
	if err := s.heights.RecordValue(int64(h)); err != nil {
		return errors.Wrapf(err, "recording height %d", errors.Safe(h))
	}
	for len(s.heightCounts) <= h {
		s.heightCounts = append(s.heightCounts, 0)
	}
	s.heightCounts[h]++

	if v := avlcheck.Validate(root); !v.Valid {
		s.invalid++
		s.rotations[avlcheck.Classify(v.Violating)]++
	}

	var buf strings.Builder
	writeShape(&buf, root)
	key := xxhash.Sum64String(buf.String())
	n, _ := s.shapes.Get(key)
	s.shapes.Put(key, n+1)
	return nil
}

// merge folds o into s.
func (s *sampleStats) merge(o *sampleStats) {
	s.trees += o.trees
	s.empty += o.empty
	s.invalid += o.invalid
	s.heights.Merge(o.heights)
	for h, n := range o.heightCounts {
		for len(s.heightCounts) <= h {
			s.heightCounts = append(s.heightCounts, 0)
		}
		s.heightCounts[h] += n
	}
	for i := range s.rotations {
		s.rotations[i] += o.rotations[i]
	}
	o.shapes.All(func(key uint64, n int64) bool {
		m, _ := s.shapes.Get(key)
		s.shapes.Put(key, m+n)
		return true
	})
}

func (s *sampleStats) String() string {
	var buf strings.Builder
	pct := func(n int64) float64 {
		if s.trees == 0 {
			return 0
		}
		return 100 * float64(n) / float64(s.trees)
	}
	fmt.Fprintf(&buf, "trees: %d  invalid: %d (%.1f%%)  empty: %d  distinct shapes: %d\n",
		s.trees, s.invalid, pct(s.invalid), s.empty, s.shapes.Len())
	if s.heights.TotalCount() == 0 {
		return buf.String()
	}
	fmt.Fprintf(&buf, "height: mean %.2f  p50 %d  p90 %d  p99 %d  max %d\n\n",
		s.heights.Mean(), s.heights.ValueAtPercentile(50), s.heights.ValueAtPercentile(90),
		s.heights.ValueAtPercentile(99), s.heights.Max())

	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader([]string{"height", "trees", "%"})
	values := make([]float64, len(s.heightCounts))
	for h, n := range s.heightCounts {
		values[h] = float64(n)
		tw.Append([]string{fmt.Sprint(h), fmt.Sprint(n), fmt.Sprintf("%.1f", pct(n))})
	}
	tw.Render()

	tw = tablewriter.NewWriter(&buf)
	tw.SetHeader([]string{"rotation", "count"})
	for r := avlcheck.LL; r <= avlcheck.Simple; r++ {
		tw.Append([]string{r.String(), fmt.Sprint(s.rotations[r])})
	}
	tw.Render()

	fmt.Fprintf(&buf, "\ntrees by height\n%s\n", asciigraph.Plot(values, asciigraph.Height(10)))
	return buf.String()
}

// writeShape writes the structure of the tree, ignoring values.
func writeShape(buf *strings.Builder, n *bintree.Node) {
	if n == nil {
		buf.WriteByte('_')
		return
	}
	buf.WriteByte('[')
	writeShape(buf, n.Left)
	buf.WriteByte(',')
	writeShape(buf, n.Right)
	buf.WriteByte(']')
}

// sample generates n trees on the given number of workers. Every worker owns
// a generator seeded from seed, so a non-zero seed reproduces the same
// summary for the same number of workers.
func sample(
	ctx context.Context, cfg avlquiz.GeneratorOptions, n, workers int, seed uint64,
) (*sampleStats, error) {
	if workers < 1 {
		return nil, errors.Errorf("workers must be >= 1, got %d", errors.Safe(workers))
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	results := make([]*sampleStats, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		count := n / workers
		if w < n%workers {
			count++
		}
		g.Go(func() error {
			gen, err := treegen.New(cfg, rand.New(rand.NewPCG(uint64(w), seed)))
			if err != nil {
				return err
			}
			stats := makeSampleStats()
			for i := 0; i < count; i++ {
				if i%1024 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				if err := stats.add(gen.Generate()); err != nil {
					return err
				}
			}
			results[w] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	total := makeSampleStats()
	for _, r := range results {
		total.merge(r)
	}
	return total, nil
}
