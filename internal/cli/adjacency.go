// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkgraph/incidence"
)

// adjacencyFlags configures the adjacency subcommand.
type adjacencyFlags struct {
	vertices   int
	directed   []string
	undirected []string
	vertex     int
}

func newAdjacencyCommand() *cobra.Command {
	var f adjacencyFlags
	cmd := &cobra.Command{
		Use:   "adjacency",
		Short: "Build a graph from edge flags and list one vertex's outgoing edges",
		Long: `Build a graph from edge flags and list one vertex's outgoing edges.

All --directed edges are inserted first, then all --undirected edges, each
group in flag order. Edges are printed newest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount("vertices", f.vertices); err != nil {
				return err
			}
			directed, err := parsePairs(f.directed)
			if err != nil {
				return err
			}
			undirected, err := parsePairs(f.undirected)
			if err != nil {
				return err
			}

			g := incidence.New(f.vertices, len(directed)+2*len(undirected))
			for _, e := range directed {
				if _, err := g.AddDirectedEdge(e.U, e.V); err != nil {
					return err
				}
			}
			for _, e := range undirected {
				if _, err := g.AddUndirectedEdge(e.U, e.V); err != nil {
					return err
				}
			}

			it := g.Adjacency(f.vertex)
			for it.Next() {
				inc := it.Incidence()
				fmt.Fprintf(cmd.OutOrStdout(), "edge %d -> %d\n", inc.Edge, inc.Vertex)
			}

			return it.Err()
		},
	}
	cmd.Flags().IntVar(&f.vertices, "vertices", 0, "number of vertices")
	cmd.Flags().StringArrayVar(&f.directed, "directed", nil, "directed edge u:v (repeatable)")
	cmd.Flags().StringArrayVar(&f.undirected, "undirected", nil, "undirected edge u:v (repeatable)")
	cmd.Flags().IntVar(&f.vertex, "vertex", 0, "vertex whose adjacency is listed")
	_ = cmd.MarkFlagRequired("vertices")

	return cmd
}
