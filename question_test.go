// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avlquiz

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/avlquiz/internal/avlcheck"
	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/avlquiz/internal/randvar"
	"github.com/stretchr/testify/require"
)

func TestQuestionPool(t *testing.T) {
	testCases := []struct {
		tree string
		want []QuestionType
	}{
		{"7", []QuestionType{IsAVL}},
		{"[5,3,8]", []QuestionType{IsAVL, GetBF, GetBF}},
		{"[50,[30,[20,10,_],40],60]", []QuestionType{IsAVL, GetBF, GetBF, GetRotation}},
		{"[1,_,[2,_,3]]", []QuestionType{IsAVL, GetBF, GetBF, GetRotation}},
	}
	for _, tc := range testCases {
		t.Run(tc.tree, func(t *testing.T) {
			v := avlcheck.Validate(bintree.MustParse(tc.tree))
			require.Equal(t, tc.want, questionPool(v))
		})
	}
}

func TestBalanceFactorTargets(t *testing.T) {
	testCases := []struct {
		tree string
		want []int
	}{
		// A lone root is the only eligible node.
		{"7", []int{7}},
		// Leaves are never eligible unless they are the root.
		{"[5,3,8]", []int{5}},
		{"[50,[30,[20,10,_],40],60]", []int{20, 30, 50}},
		// Node 9 is never evaluated because its left subtree is invalid.
		{"[9,[5,[3,1,_],_],_]", []int{3, 5}},
	}
	for _, tc := range testCases {
		t.Run(tc.tree, func(t *testing.T) {
			root := bintree.MustParse(tc.tree)
			v := avlcheck.Validate(root)
			var got []int
			for _, n := range balanceFactorTargets(root, v.Visited) {
				got = append(got, n.Value)
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSelectQuestion(t *testing.T) {
	const tree = "[50,[30,[20,10,_],40],60]"
	seen := make(map[QuestionType]int)
	for seed := uint64(1); seed <= 500; seed++ {
		root := bintree.MustParse(tree)
		v := avlcheck.Validate(root)
		q := selectQuestion(randvar.NewRandFromSeed(seed), root, v)
		seen[q.Type]++
		switch q.Type {
		case IsAVL:
			require.Nil(t, q.Target)
			require.False(t, q.CorrectBool)
		case GetBF:
			require.NotNil(t, q.Target)
			require.True(t, q.Target.HasChild() || q.Target == root,
				"leaf %d selected for a balance factor question", q.Target.Value)
			require.Equal(t, q.Target.BalanceFactor, q.CorrectBalanceFactor)
			require.Equal(t, bintree.Height(q.Target.Left)-bintree.Height(q.Target.Right),
				q.CorrectBalanceFactor)
		case GetRotation:
			require.Equal(t, 50, q.Target.Value)
			require.Equal(t, avlcheck.LL, q.Rotation)
			require.True(t, q.CorrectBool)
		default:
			t.Fatalf("unexpected question type %d", q.Type)
		}
	}
	require.Len(t, seen, 3)
	// GetBF has two entries in a pool of four.
	require.Greater(t, seen[GetBF], seen[IsAVL])
	require.Greater(t, seen[GetBF], seen[GetRotation])
}

func TestQuestionPrompt(t *testing.T) {
	root := bintree.MustParse("[50,[30,[20,10,_],40],60]")
	avlcheck.Validate(root)

	q := Question{Type: IsAVL}
	require.Equal(t, "Is this tree a valid AVL tree?", q.Prompt())
	yes, no := q.BooleanLabels()
	require.Equal(t, [2]string{"Yes", "No"}, [2]string{yes, no})
	require.Nil(t, q.Highlight())

	q = Question{Type: GetBF, Target: root.Left}
	require.Equal(t, "What is the balance factor of node 30?", q.Prompt())
	yes, no = q.BooleanLabels()
	require.Empty(t, yes+no)
	require.Same(t, root.Left, q.Highlight())

	q = Question{Type: GetRotation, Target: root}
	require.Contains(t, q.Prompt(), "Node 50 violates the AVL property")
	yes, no = q.BooleanLabels()
	require.Equal(t, [2]string{"Single", "Double"}, [2]string{yes, no})
}

func TestQuestionTypeString(t *testing.T) {
	var got []string
	for typ := QuestionType(0); typ <= numQuestionTypes; typ++ {
		got = append(got, fmt.Sprintf("%s/%t", typ, typ.WantsBoolean()))
	}
	require.Equal(t, []string{
		"is-avl/true", "balance-factor/false", "rotation/true", "unknown/true",
	}, got)
}
