// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import (
	"testing"

	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func findValue(root *bintree.Node, v int) *bintree.Node {
	var found *bintree.Node
	bintree.InOrder(root, func(n *bintree.Node, _ int) {
		if found == nil && n.Value == v {
			found = n
		}
	})
	return found
}

func TestDrawDatadriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/draw", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "draw":
			root, err := bintree.Parse(td.Input)
			if err != nil {
				return err.Error()
			}
			var opts Options
			if td.HasArg("highlight") {
				var v int
				td.ScanArgs(t, "highlight", &v)
				opts.Highlight = findValue(root, v)
				require.NotNil(t, opts.Highlight)
			}
			opts.BalanceFactors = td.HasArg("bf")
			return opts.Draw(root)
		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
			return ""
		}
	})
}

func TestLayout(t *testing.T) {
	root := bintree.MustParse("[50,[30,[20,10,_],40],60]")
	require.Equal(t, 6, Layout(root))
	type slot struct{ v, x, y int }
	var slots []slot
	bintree.PostOrder(root, func(n *bintree.Node) {
		slots = append(slots, slot{n.Value, n.X, n.Y})
	})
	require.Equal(t, []slot{
		{10, 0, 3}, {20, 1, 2}, {40, 3, 2}, {30, 2, 1}, {60, 5, 1}, {50, 4, 0},
	}, slots)

	require.Equal(t, 0, Layout(nil))
}

func TestDrawIndent(t *testing.T) {
	root := bintree.MustParse("[2,1,_]")
	require.Equal(t, "  (empty)", Options{Indent: "  "}.Draw(nil))
	require.Equal(t, "      2\n    /\n  [1]", Options{Indent: "  ", Highlight: root.Left}.Draw(root))
	require.Equal(t, "    2\n  /\n 1", Draw(root, nil))
}

func TestBoard(t *testing.T) {
	b := MakeBoard(0)
	b.Write(0, 2, "ab")
	b.Write(2, 0, "xyz")
	b.Write(1, -1, "#!")
	b.Write(0, 3, "c")
	require.Equal(t, 3, b.Lines())
	require.Equal(t, "  ac\n!\nxyz", b.String())
	require.Equal(t, ">  ac\n>!\n>xyz", b.Render(">"))
}
