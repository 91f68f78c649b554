// SPDX-License-Identifier: MIT

package disjoint

// ParentOf exposes the raw parent link of element to disjoint_test so that
// path compression can be observed without widening the production API.
func (d *DisjointSets) ParentOf(element int) int {
	return d.parent[element]
}
