// SPDX-License-Identifier: MIT

package disjoint

// Find returns the root of the set containing element.
//
// Steps:
//  1. Walk parent links from element until parent[root] == root.
//  2. Walk the same path a second time, repointing every visited element
//     directly at root (full path compression).
//
// After Find(e) returns r, parent[e] == r until a later Merge reshapes the tree
// above r. The walk is iterative, so arbitrarily long chains built by Merge
// cannot grow the goroutine stack.
//
// Panics with index out of range if element is not in [0, Len()).
// Complexity: amortized O(log n).
func (d *DisjointSets) Find(element int) int {
	// 1. Locate the root.
	root := element
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// 2. Compress: every element on the path now points at root.
	for element != root {
		next := d.parent[element]
		d.parent[element] = root
		element = next
	}

	return root
}

// Merge unions the sets containing u and v.
//
// The root of u's set is attached under the root of v's set unconditionally;
// when both roots coincide this is a self-assignment. Merge returns true iff
// u and v were in different sets before the call.
//
// Panics with index out of range if u or v is not in [0, Len()).
// Complexity: amortized O(log n).
func (d *DisjointSets) Merge(u, v int) bool {
	rootU, rootV := d.Find(u), d.Find(v)
	d.parent[rootU] = rootV
	if rootU == rootV {
		return false
	}
	d.sets--

	return true
}

// Connected reports whether u and v belong to the same set.
// Like Find, it compresses the paths it walks.
func (d *DisjointSets) Connected(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// Sets returns every set as a slice of its elements.
//
// Elements are ascending within a set, and sets are ordered by their smallest
// element, so the result is deterministic for a given merge history.
// Complexity: O(n) amortized.
func (d *DisjointSets) Sets() [][]int {
	out := make([][]int, 0, d.sets)
	slot := make(map[int]int, d.sets) // root → index in out
	for e := range d.parent {
		root := d.Find(e)
		idx, ok := slot[root]
		if !ok {
			// First sighting of this root is at its set's smallest element.
			idx = len(out)
			slot[root] = idx
			out = append(out, nil)
		}
		out[idx] = append(out[idx], e)
	}

	return out
}
