// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlcheck

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/avlquiz/internal/randvar"
	"github.com/cockroachdb/avlquiz/internal/treegen"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestValidateDatadriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/validate", func(t *testing.T, td *datadriven.TestData) string {
		root, err := bintree.Parse(td.Input)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		switch td.Cmd {
		case "validate":
			r := Validate(root)
			var buf strings.Builder
			fmt.Fprintf(&buf, "valid: %t\n", r.Valid)
			fmt.Fprintf(&buf, "height: %d\n", r.Height)
			if !r.Valid {
				fmt.Fprintf(&buf, "reason: %s\n", r.Reason)
				fmt.Fprintf(&buf, "violating: %d\n", r.Violating.Value)
				fmt.Fprintf(&buf, "rotation: %s\n", Classify(r.Violating))
			}
			fmt.Fprintf(&buf, "visited: %s\n", formatVisited(r.Visited))
			fmt.Fprintf(&buf, "annotated: %s\n", bintree.Annotated(root))
			return buf.String()

		case "classify":
			// Classifies the root using the balance factors given in the input.
			r := Classify(root)
			return fmt.Sprintf("%s: %s", r, r.Describe())

		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
			return ""
		}
	})
}

func formatVisited(nodes []*bintree.Node) string {
	if len(nodes) == 0 {
		return "(none)"
	}
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprintf("%d:%d", n.Value, n.BalanceFactor)
	}
	return strings.Join(parts, " ")
}

func TestValidateScenarioA(t *testing.T) {
	r := Validate(bintree.MustParse("[5,[3,null,null,0],[8,null,null,0]]"))
	require.True(t, r.Valid)
	require.Equal(t, 1, r.Height)
	require.Empty(t, r.Reason)
	require.Nil(t, r.Violating)
	require.Len(t, r.Visited, 3)
}

func TestClassifyScenarios(t *testing.T) {
	// Left height 2, right height 0, left child balance factor >= 0.
	root := bintree.MustParse("[50,[30,[20,10,_],40],60]")
	r := Validate(root)
	require.False(t, r.Valid)
	require.Equal(t, 50, r.Violating.Value)
	require.Equal(t, 2, r.Violating.BalanceFactor)
	require.Equal(t, LL, Classify(r.Violating))

	// Root balance factor -2 with right child balance factor 1.
	n := &bintree.Node{Value: 1, BalanceFactor: -2, Right: &bintree.Node{Value: 2, BalanceFactor: 1}}
	require.Equal(t, RL, Classify(n))
	n.Right.BalanceFactor = 0
	require.Equal(t, RR, Classify(n))
	n.Right.BalanceFactor = -1
	require.Equal(t, RR, Classify(n))

	require.Equal(t, None, Classify(nil))
	require.Equal(t, None, Classify(&bintree.Node{BalanceFactor: 1}))
	require.Equal(t, Simple, Classify(&bintree.Node{BalanceFactor: 3}))
}

func TestRotationString(t *testing.T) {
	require.Equal(t, "LR", LR.String())
	require.Equal(t, "none", None.String())
	require.Equal(t, "unknown", Rotation(42).String())
	require.True(t, LL.IsSingle())
	require.True(t, RR.IsSingle())
	require.False(t, Simple.IsSingle())
	require.True(t, RL.IsDouble())
	require.False(t, None.IsDouble())
}

// TestValidateGenerated checks the validator against independently computed
// heights over many generated trees.
func TestValidateGenerated(t *testing.T) {
	g, err := treegen.New(treegen.DefaultConfig(), randvar.NewRandFromSeed(2026))
	require.NoError(t, err)

	var valid, invalid int
	for i := 0; i < 5000; i++ {
		root := g.Generate()
		r := Validate(root)
		if r.Valid {
			valid++
			require.Equal(t, bintree.Height(root), r.Height)
			require.Equal(t, bintree.Count(root), len(r.Visited))
			bintree.PostOrder(root, func(n *bintree.Node) {
				require.Equal(t, bintree.Height(n.Left)-bintree.Height(n.Right), n.BalanceFactor)
				require.Equal(t, None, Classify(n))
			})
			continue
		}
		invalid++
		v := r.Violating
		require.NotNil(t, v)
		require.Equal(t, bintree.Height(v), r.Height)
		require.Contains(t, r.Visited, v)
		for _, n := range r.Visited {
			require.Equal(t, bintree.Height(n.Left)-bintree.Height(n.Right), n.BalanceFactor)
		}
		rot := Classify(v)
		require.NotEqual(t, None, rot)
		require.NotEqual(t, Simple, rot)
		// A single rotation is never chosen when the taller child leans the
		// other way.
		child := v.Left
		if v.BalanceFactor < 0 {
			child = v.Right
		}
		if rot.IsSingle() {
			require.False(t, v.BalanceFactor > 1 && child.BalanceFactor < 0)
			require.False(t, v.BalanceFactor < -1 && child.BalanceFactor > 0)
		}
	}
	require.Greater(t, valid, 0)
	require.Greater(t, invalid, 0)
}
