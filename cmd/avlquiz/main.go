// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "avlquiz [command] (flags)",
	Short: "AVL tree balance quiz",
	Long: `
A quiz about AVL tree balance. Every round shows a randomly generated binary
tree and asks whether it is a valid AVL tree, what the balance factor of a
highlighted node is, or whether a violation needs a single or a double
rotation.
`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		playCmd,
		checkCmd,
		sampleCmd,
	)

	playCmd.Flags().Uint64Var(
		&playConfig.seed, "seed", 0, "random seed (0 picks one at random)")
	playCmd.Flags().IntVarP(
		&playConfig.rounds, "rounds", "n", 0, "number of rounds to play (0 plays until EOF or \"q\")")
	playCmd.Flags().BoolVar(
		&playConfig.showBF, "show-bf", false, "show every node's balance factor after answering")
	playCmd.Flags().StringVar(
		&playConfig.optionsFile, "options", "", "read session options from the given INI file")
	playCmd.Flags().BoolVarP(
		&playConfig.verbose, "verbose", "v", false, "enable verbose event logging")

	sampleCmd.Flags().IntVarP(
		&sampleConfig.trees, "trees", "n", 10000, "number of trees to generate")
	sampleCmd.Flags().IntVarP(
		&sampleConfig.workers, "workers", "c", 4, "number of concurrent workers")
	sampleCmd.Flags().Uint64Var(
		&sampleConfig.seed, "seed", 0, "random seed (0 picks one at random)")
	sampleCmd.Flags().StringVar(
		&sampleConfig.optionsFile, "options", "", "read generator options from the given INI file")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
