// Package mmheap: heap operations. This file implements the classical
// min-max heap algorithms (Atkinson, Sack, Santoro & Strothotte):
// two-phase bubble-up on insert, parent/grandchild trickle-down on
// extraction, plus bulk loading and the O(n) sorted-array constructor.
//
// Determinism:
//   - All decisions are pure comparator calls; no randomness, no global
//     state. Equal elements keep no particular relative order.
//
// Failure semantics:
//   - Extraction/peek on an empty heap returns (zero value, false).
//   - RemovePos on an out-of-range position returns (zero value, false).
package mmheap

import "math/bits"

// Len returns the number of elements currently stored.
// Complexity: O(1).
func (h *Heap[T]) Len() int { return len(h.a) - 1 }

// At returns the element at 1-based heap position pos without removing
// it. Positions are exposed so that consumers tracking elements by slot
// (e.g., for RemovePos) and test harnesses can inspect the layout.
// Complexity: O(1).
func (h *Heap[T]) At(pos int) (T, bool) {
	if pos < 1 || pos >= len(h.a) {
		var zero T

		return zero, false
	}

	return h.a[pos], true
}

// Clear discards all elements but keeps the allocated storage.
// Complexity: O(1).
func (h *Heap[T]) Clear() { h.a = h.a[:1] }

// onMinLevel reports whether 1-based index i sits on a min level.
// The depth of index i is bits.Len(i)-1; min levels are the even depths.
// Deriving parity from the bit pattern avoids tracking depth per node.
func onMinLevel(i int) bool {
	return (bits.Len(uint(i))-1)%2 == 0
}

// less is the comparator with the side-channel info applied.
func (h *Heap[T]) less(i, j int) bool { return h.cmp(h.a[i], h.a[j], h.info) < 0 }

func (h *Heap[T]) swap(i, j int) { h.a[i], h.a[j] = h.a[j], h.a[i] }

// Add inserts one element.
//
// Steps:
//  1. Append at the next free slot (the only position keeping the tree
//     complete).
//  2. Bubble up: one cross-level comparison against the parent decides
//     which of the two alternating orders the element belongs to, then
//     the element climbs grandparent-to-grandparent along that order.
//
// Complexity: O(log n).
func (h *Heap[T]) Add(el T) {
	h.a = append(h.a, el)
	h.bubbleUp(len(h.a) - 1)
}

// bubbleUp restores the invariant upward from position i after i
// received a new element.
func (h *Heap[T]) bubbleUp(i int) {
	if i <= 1 {
		return
	}
	parent := i / 2
	if onMinLevel(i) {
		if h.less(parent, i) {
			// Too large for a min level: move to the max-level parent
			// slot and continue on the max bubble path.
			h.swap(i, parent)
			h.bubbleUpMax(parent)
		} else {
			h.bubbleUpMin(i)
		}
	} else {
		if h.less(i, parent) {
			h.swap(i, parent)
			h.bubbleUpMin(parent)
		} else {
			h.bubbleUpMax(i)
		}
	}
}

// bubbleUpMin climbs min levels: swap with the grandparent while the
// element is smaller than it.
func (h *Heap[T]) bubbleUpMin(i int) {
	for i/4 >= 1 && h.less(i, i/4) {
		h.swap(i, i/4)
		i /= 4
	}
}

// bubbleUpMax climbs max levels: swap with the grandparent while the
// element is larger than it.
func (h *Heap[T]) bubbleUpMax(i int) {
	for i/4 >= 1 && h.less(i/4, i) {
		h.swap(i, i/4)
		i /= 4
	}
}

// Min returns (without removing) the smallest element: always the root.
// Complexity: O(1).
func (h *Heap[T]) Min() (T, bool) {
	if h.Len() == 0 {
		var zero T

		return zero, false
	}

	return h.a[1], true
}

// Max returns (without removing) the largest element.
//
// For size 1 that is the root; for size 2 the lone second-level node;
// otherwise the larger of positions 2 and 3.
// Complexity: O(1).
func (h *Heap[T]) Max() (T, bool) {
	if h.Len() == 0 {
		var zero T

		return zero, false
	}

	return h.a[h.maxPos()], true
}

// maxPos returns the position holding the maximum. Callers must ensure
// the heap is non-empty.
func (h *Heap[T]) maxPos() int {
	switch h.Len() {
	case 1:
		return 1
	case 2:
		return 2
	default:
		if h.less(2, 3) {
			return 3
		}

		return 2
	}
}

// PopMin removes and returns the smallest element.
//
// Steps:
//  1. Save the root.
//  2. Move the last element into the root slot and shrink.
//  3. Trickle down from the root to restore the min-level invariant.
//
// Complexity: O(log n).
func (h *Heap[T]) PopMin() (T, bool) {
	if h.Len() == 0 {
		var zero T

		return zero, false
	}
	min := h.a[1]
	h.fillGap(1)

	return min, true
}

// PopMax removes and returns the largest element (see Max for where it
// lives). Complexity: O(log n).
func (h *Heap[T]) PopMax() (T, bool) {
	if h.Len() == 0 {
		var zero T

		return zero, false
	}
	pos := h.maxPos()
	max := h.a[pos]
	h.fillGap(pos)

	return max, true
}

// RemovePos removes and returns the element at 1-based heap position
// pos. Unlike PopMin/PopMax the removed element may sit anywhere, so the
// replacement first bubbles up (it may be smaller/larger than an
// ancestor) and then trickles down from wherever that left the slot.
// Complexity: O(log n).
func (h *Heap[T]) RemovePos(pos int) (T, bool) {
	if pos < 1 || pos >= len(h.a) {
		var zero T

		return zero, false
	}
	removed := h.a[pos]
	h.fillGap(pos)

	return removed, true
}

// fillGap removes the element at pos by moving the last element into
// its slot and re-establishing the invariant around pos.
func (h *Heap[T]) fillGap(pos int) {
	last := len(h.a) - 1
	h.a[pos] = h.a[last]
	var zero T
	h.a[last] = zero // drop the reference for GC
	h.a = h.a[:last]
	if pos >= len(h.a) {
		return // removed the tail itself; nothing to repair
	}
	// The replacement may violate in either direction, never both:
	// bubbleUp repairs an ancestor violation (and is a no-op otherwise),
	// trickleDown repairs a descendant violation left at pos.
	h.bubbleUp(pos)
	h.trickleDown(pos)
}

// trickleDown restores the invariant downward from position i.
func (h *Heap[T]) trickleDown(i int) {
	if onMinLevel(i) {
		h.trickleDownMin(i)
	} else {
		h.trickleDownMax(i)
	}
}

// trickleDownMin pushes the element at min-level position i down until
// it is ≤ all of its descendants.
//
// At each step it examines up to two children and four grandchildren:
//   - If the smallest of those is a grandchild and smaller than a[i],
//     they swap; the swap may now violate the max invariant between the
//     grandchild slot and its (max-level) parent, which is repaired by
//     one more conditional swap before descending further.
//   - If the smallest is a child, a single swap finishes (the child is
//     then provably a leaf or equal-valued, so no further repair).
func (h *Heap[T]) trickleDownMin(i int) {
	n := len(h.a) - 1
	for {
		m := h.smallestDescendant(i, n)
		if m == 0 || !h.less(m, i) {
			return
		}
		if m >= 4*i { // grandchild
			h.swap(i, m)
			if h.less(m/2, m) {
				h.swap(m, m/2)
			}
			i = m

			continue
		}
		// Direct child: one swap restores both levels.
		h.swap(i, m)

		return
	}
}

// trickleDownMax is the mirror of trickleDownMin for max levels.
func (h *Heap[T]) trickleDownMax(i int) {
	n := len(h.a) - 1
	for {
		m := h.largestDescendant(i, n)
		if m == 0 || !h.less(i, m) {
			return
		}
		if m >= 4*i { // grandchild
			h.swap(i, m)
			if h.less(m, m/2) {
				h.swap(m, m/2)
			}
			i = m

			continue
		}
		h.swap(i, m)

		return
	}
}

// smallestDescendant returns the position of the smallest among the
// children and grandchildren of i, or 0 when i is a leaf.
func (h *Heap[T]) smallestDescendant(i, n int) int {
	if 2*i > n {
		return 0
	}
	m := 2 * i
	if 2*i+1 <= n && h.less(2*i+1, m) {
		m = 2*i + 1
	}
	for gc := 4 * i; gc <= 4*i+3 && gc <= n; gc++ {
		if h.less(gc, m) {
			m = gc
		}
	}

	return m
}

// largestDescendant returns the position of the largest among the
// children and grandchildren of i, or 0 when i is a leaf.
func (h *Heap[T]) largestDescendant(i, n int) int {
	if 2*i > n {
		return 0
	}
	m := 2 * i
	if 2*i+1 <= n && h.less(m, 2*i+1) {
		m = 2*i + 1
	}
	for gc := 4 * i; gc <= 4*i+3 && gc <= n; gc++ {
		if h.less(m, gc) {
			m = gc
		}
	}

	return m
}

// AddArray inserts a batch of elements using the given Method.
//
// Under MethodAuto the rebuild strategy is chosen when the batch is at
// least as large as the existing heap, or when the batch is already
// sorted in either direction (a pre-sorted batch is the worst case for
// repeated insertion: every element travels the full bubble path).
// The selector is exposed because the two strategies differ
// asymptotically and a consumer usually knows which regime it is in.
//
// Complexity: O(n + k) rebuilding, O(k log(n + k)) inserting.
func (h *Heap[T]) AddArray(els []T, force Method) {
	if len(els) == 0 {
		return
	}
	method := force
	if method == MethodAuto {
		if len(els) >= h.Len() || isSorted(els, h.cmp, h.info) {
			method = MethodRebuild
		} else {
			method = MethodInsert
		}
	}

	if method == MethodInsert {
		for _, el := range els {
			h.Add(el)
		}

		return
	}

	// Rebuild: append everything, then trickle down from the middle of
	// the array outward to the root (positions below n/2 are leaves and
	// already trivially valid).
	h.a = append(h.a, els...)
	for i := (len(h.a) - 1) / 2; i >= 1; i-- {
		h.trickleDown(i)
	}
}

// isSorted reports whether els is monotone non-decreasing or monotone
// non-increasing under cmp.
func isSorted[T any](els []T, cmp Comparator[T], info any) bool {
	asc, desc := true, true
	for i := 1; i < len(els) && (asc || desc); i++ {
		c := cmp(els[i-1], els[i], info)
		if c > 0 {
			asc = false
		}
		if c < 0 {
			desc = false
		}
	}

	return asc || desc
}

// InitWithSortedArray replaces the heap contents with the elements of
// sorted[from:to] in O(n), without a single comparator call.
//
// ascending declares the order of the input (true = non-decreasing).
// from/to bound the half-open source range; pass from=0, to=-1 for the
// whole slice. An invalid range panics with ErrBadRange (programmer
// error, same policy as option validation).
//
// Construction fills level by level: min levels take the small end of
// the input front-to-back, max levels take the large end back-to-front.
// Every min-level node then precedes its min-level descendants in fill
// order (hence is ≤ them), every max-level node precedes its max-level
// descendants in reverse fill order (hence is ≥ them), and every
// min-level value is ≤ every max-level value, which together are
// exactly the two level invariants.
func (h *Heap[T]) InitWithSortedArray(sorted []T, ascending bool, from, to int) {
	if to < 0 {
		to = len(sorted)
	}
	if from < 0 || from > to || to > len(sorted) {
		panic(ErrBadRange.Error())
	}
	n := to - from
	h.a = make([]T, 1, n+1)
	h.a = h.a[:n+1]

	// lo walks from the small end toward the middle, hi from the large
	// end; ascending only decides which physical end is which.
	lo, loStep := from, 1
	hi, hiStep := to-1, -1
	if !ascending {
		lo, loStep = to-1, -1
		hi, hiStep = from, 1
	}

	// Positions of level d are [2^d, min(2^(d+1)-1, n)].
	for first := 1; first <= n; first *= 2 {
		last := first*2 - 1
		if last > n {
			last = n
		}
		if onMinLevel(first) {
			for pos := first; pos <= last; pos++ {
				h.a[pos] = sorted[lo]
				lo += loStep
			}
		} else {
			for pos := first; pos <= last; pos++ {
				h.a[pos] = sorted[hi]
				hi += hiStep
			}
		}
	}
}

// Verify walks every node and checks its level invariant against its
// parent and grandparent (which transitively covers all ancestors).
// It returns ErrInvariant on the first violation, nil otherwise.
//
// Verify is a test-harness facility, not a production call path.
// Complexity: O(n).
func (h *Heap[T]) Verify() error {
	for i := 2; i < len(h.a); i++ {
		parent := i / 2
		// The parent sits on the opposite level: a min-level node must
		// be ≤ its max-level parent and vice versa.
		if onMinLevel(i) {
			if h.less(parent, i) {
				return ErrInvariant
			}
		} else if h.less(i, parent) {
			return ErrInvariant
		}
		if gp := i / 4; gp >= 1 {
			// The grandparent shares the node's level.
			if onMinLevel(i) {
				if h.less(i, gp) {
					return ErrInvariant
				}
			} else if h.less(gp, i) {
				return ErrInvariant
			}
		}
	}

	return nil
}
