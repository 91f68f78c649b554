// SPDX-License-Identifier: MIT

// Package cli implements the linkgraph command tree: a demonstration harness
// for the incidence graph plus small tools over the disjoint and incidence
// packages.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the linkgraph command with every subcommand attached.
// Each call returns an independent tree, so tests can run commands in isolation.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "linkgraph",
		Short:         "Union-find and incidence-list graph tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newDemoCommand(),
		newAdjacencyCommand(),
		newComponentsCommand(),
		newImplicationsCommand(),
	)

	return root
}

// Execute runs the root command against os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
