// Package linkgraph collects two leaf-level combinatorial structures for
// in-memory graph work over dense integer IDs.
//
// What is inside?
//
//	disjoint/  — union-find with full path compression; Merge(u, v) always
//	             hangs u's root under v's root (no rank, no size).
//	incidence/ — incidence-list graph: per-vertex linked lists of outgoing
//	             edges threaded through flat slices, directed and undirected
//	             insertion, newest-first adjacency cursors, and a 2-SAT
//	             clause → implication-edge encoder.
//
// Neither package depends on the other. A clustering pass, a connectivity
// check or a 2-SAT solver composes them as it needs.
//
// Quick ASCII example:
//
//	0 → 1        g := incidence.New(3, 3)
//	0 ↔ 2        g.AddDirectedEdge(0, 1)   // edge 0
//	             g.AddUndirectedEdge(0, 2) // edges 1 (0→2) and 2 (2→0)
//
//	g.AdjacencyList(0) == [{1 2} {0 1}]
//
// The linkgraph command (cmd/linkgraph) runs the same checks from a shell.
//
//	go install github.com/katalvlaran/linkgraph/cmd/linkgraph@latest
package linkgraph
