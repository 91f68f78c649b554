// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkgraph/incidence"
)

// ErrDemoMismatch indicates the demonstration graph did not enumerate as expected.
var ErrDemoMismatch = errors.New("cli: demo adjacency mismatch")

// demoEdges alternate directed (even index) and undirected (odd index) insertions.
var demoEdges = []pair{{0, 1}, {0, 2}, {1, 3}, {4, 8}, {5, 6}, {5, 7}}

// demoWant is the expected adjacency of vertex 0: edge 1 → 2, then edge 0 → 1.
var demoWant = []incidence.Incidence{{Edge: 1, Vertex: 2}, {Edge: 0, Vertex: 1}}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the reference 10-vertex graph and verify the adjacency of vertex 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	g := incidence.New(10, 15)
	for i, e := range demoEdges {
		var err error
		if i%2 == 0 {
			_, err = g.AddDirectedEdge(e.U, e.V)
		} else {
			_, err = g.AddUndirectedEdge(e.U, e.V)
		}
		if err != nil {
			return err
		}
	}

	adj, err := g.AdjacencyList(0)
	if err != nil {
		return err
	}
	if !slices.Equal(adj, demoWant) {
		return fmt.Errorf("%w: got %v, want %v", ErrDemoMismatch, adj, demoWant)
	}
	for _, inc := range adj {
		v, err := g.EdgeTarget(inc.Edge)
		if err != nil {
			return err
		}
		if v != inc.Vertex {
			return fmt.Errorf("%w: edge %d targets %d, enumerated %d", ErrDemoMismatch, inc.Edge, v, inc.Vertex)
		}
		fmt.Fprintf(w, "edge %d -> %d\n", inc.Edge, inc.Vertex)
	}
	fmt.Fprintln(w, "passing!")

	return nil
}
