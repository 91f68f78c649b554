// SPDX-License-Identifier: MIT

// Command linkgraph exercises the disjoint and incidence packages from the
// command line. Run "linkgraph demo" for the reference adjacency check.
package main

import "github.com/katalvlaran/linkgraph/internal/cli"

func main() {
	cli.Execute()
}
