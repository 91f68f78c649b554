// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkgraph/disjoint"
)

func newComponentsCommand() *cobra.Command {
	var (
		size   int
		merges []string
	)
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Merge element pairs with union-find and print the resulting sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount("size", size); err != nil {
				return err
			}
			pairs, err := parsePairs(merges)
			if err != nil {
				return err
			}
			for _, p := range pairs {
				if p.U < 0 || p.U >= size || p.V < 0 || p.V >= size {
					return fmt.Errorf("cli: merge %d:%d outside [0, %d)", p.U, p.V, size)
				}
			}

			d := disjoint.New(size)
			for _, p := range pairs {
				d.Merge(p.U, p.V)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d sets\n", d.Count())
			for _, set := range d.Sets() {
				fmt.Fprintln(out, joinInts(set))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "number of elements")
	cmd.Flags().StringArrayVar(&merges, "merge", nil, "pair u:v to merge (repeatable)")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}
