// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/avlquiz/internal/avlcheck"
	"github.com/cockroachdb/avlquiz/internal/bintree"
	"github.com/cockroachdb/avlquiz/internal/render"
	"github.com/cockroachdb/crlib/crstrings"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <tree>",
	Short: "validate a tree written in bracket notation",
	Long: `
Validate the AVL invariant of a tree written as [value,left,right], where a
missing child is written as _ or null and a leaf may be written as its bare
value. For example:

  avlquiz check '[50,[30,[20,10,_],40],60]'

The tree is drawn with every evaluated node's balance factor and the first
violating node highlighted, followed by the rebalancing case.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := bintree.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		check(cmd.OutOrStdout(), root)
		return nil
	},
}

func check(w io.Writer, root *bintree.Node) {
	v := avlcheck.Validate(root)
	drawing := render.Options{Highlight: v.Violating, BalanceFactors: true}.Draw(root)
	fmt.Fprintf(w, "%s\n\n", crstrings.Indent("  ", drawing))
	fmt.Fprintf(w, "nodes:     %d\n", bintree.Count(root))
	fmt.Fprintf(w, "height:    %d\n", bintree.Height(root))
	fmt.Fprintf(w, "annotated: %s\n", bintree.Annotated(root))
	if v.Valid {
		fmt.Fprintf(w, "valid AVL tree\n")
		return
	}
	rot := avlcheck.Classify(v.Violating)
	fmt.Fprintf(w, "not an AVL tree: %s\n", v.Reason)
	fmt.Fprintf(w, "rebalance: %s case, %s\n", rot, rot.Describe())
}
