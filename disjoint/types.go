// SPDX-License-Identifier: MIT

package disjoint

// DisjointSets partitions the elements 0..Len()-1 into disjoint sets.
//
// parent[i] is the best-known ancestor of element i; a root r satisfies
// parent[r] == r. sets counts the roots.
type DisjointSets struct {
	parent []int
	sets   int
}

// New creates size singleton sets, parent[i] = i for every i in [0, size).
// It panics if size is negative.
// Complexity: O(size).
func New(size int) *DisjointSets {
	d := &DisjointSets{
		parent: make([]int, size),
		sets:   size,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the size of the element universe fixed at construction.
func (d *DisjointSets) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint sets remaining.
func (d *DisjointSets) Count() int {
	return d.sets
}
