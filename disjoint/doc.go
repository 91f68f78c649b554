// SPDX-License-Identifier: MIT

// Package disjoint provides a fixed-universe union-find (disjoint-set) structure
// over dense integer element IDs 0..size-1.
//
// What
//
//   - New(size) creates size singleton sets, one per element.
//   - Find(e) returns the representative (root) of e's set and compresses the
//     traversed path: every element visited on the way up is repointed directly
//     at the root before Find returns.
//   - Merge(u, v) unions the two sets and reports whether a real union happened.
//
// Tie-break policy
//
//	Merge always attaches the root of the FIRST argument under the root of the
//	SECOND argument. No rank or size is tracked, so tree shape is determined by
//	call order alone; path compression keeps the amortized cost near-logarithmic.
//
// Preconditions
//
//	Element IDs must lie in [0, Len()). Out-of-range IDs are a programming error
//	and fault with Go's index-out-of-range panic; they are never clamped or wrapped.
//
// Concurrency
//
//	DisjointSets is not safe for concurrent use. Find mutates parent links, so
//	even concurrent readers need external mutual exclusion.
//
// Complexity
//
//	New: O(n). Find/Merge: amortized O(log n) with compression only.
//	Sets: O(n·α + n log n) for the deterministic ordering.
package disjoint
