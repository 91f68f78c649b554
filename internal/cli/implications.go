// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkgraph/incidence"
)

func newImplicationsCommand() *cobra.Command {
	var (
		literals int
		clauses  []string
	)
	cmd := &cobra.Command{
		Use:   "implications",
		Short: "Encode 2-SAT clauses a:b as implication edges and print them",
		Long: `Encode 2-SAT clauses as implication edges and print them.

Literal 2x is variable x and 2x+1 is its negation. Each --clause a:b stands
for (a OR b) and yields the edges (a^1 -> b) and (b^1 -> a).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount("literals", literals); err != nil {
				return err
			}
			pairs, err := parsePairs(clauses)
			if err != nil {
				return err
			}

			g := incidence.New(literals, 2*len(pairs))
			for _, p := range pairs {
				if err := g.AddClause(p.U, p.V); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for u := 0; u < g.NumVertices(); u++ {
				it := g.Adjacency(u)
				for it.Next() {
					fmt.Fprintf(out, "%d -> %d\n", u, it.Incidence().Vertex)
				}
				if err := it.Err(); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&literals, "literals", 0, "number of literal vertices (twice the variable count)")
	cmd.Flags().StringArrayVar(&clauses, "clause", nil, "clause a:b meaning (a OR b) (repeatable)")
	_ = cmd.MarkFlagRequired("literals")

	return cmd
}
