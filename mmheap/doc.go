// Package mmheap implements a min-max heap: a single priority queue with
// cheap access to BOTH its smallest and largest element.
//
// A min-max heap is a complete binary tree stored in one contiguous
// slice (index 0 unused, root at position 1) whose levels alternate:
//
//	level 0 (root)  — min level: each node ≤ all of its descendants
//	level 1         — max level: each node ≥ all of its descendants
//	level 2         — min level, and so on.
//
// The level of a position is derived from the bit length of its index,
// never tracked per node. The minimum therefore always sits at the root,
// while the maximum sits at position 2 or 3 (or at the root for a heap
// of size one).
//
// A constraint solver uses this to pick, at every step, either the
// most-urgent or the least-urgent pending entry from the same queue
// without maintaining two mirrored heaps.
//
// Complexity:
//
//   - Min, Max:             O(1)
//   - Add, PopMin, PopMax:  O(log n)
//   - RemovePos:            O(log n)
//   - AddArray:             O(k log n) inserting, O(n + k) rebuilding
//   - InitWithSortedArray:  O(n), no comparator calls
//
// Elements are opaque: ordering comes entirely from an injected
// three-argument Comparator (two elements plus an optional side-channel
// value supplied at construction). Extraction from an empty heap returns
// the zero value and false rather than failing; see Verify for the
// test-harness invariant walker.
package mmheap
