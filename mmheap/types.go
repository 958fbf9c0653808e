// Package mmheap: core types and functional configuration for the
// min-max heap. This file defines:
//   - Comparator (the injected ordering),
//   - Method (bulk-load strategy selector for AddArray),
//   - Option / options (functional options with internal state),
//   - sentinel errors and the New constructor.
package mmheap

import "errors"

// Sentinel errors for heap construction and verification.
var (
	// ErrNilComparator indicates that New was called without a comparator.
	ErrNilComparator = errors.New("mmheap: comparator is nil")

	// ErrBadRange indicates an invalid [from, to) range passed to
	// InitWithSortedArray.
	ErrBadRange = errors.New("mmheap: invalid sorted-array range")

	// ErrInvariant indicates that Verify found a node violating its
	// level invariant against an ancestor.
	ErrInvariant = errors.New("mmheap: level invariant violated")
)

// Comparator defines the total order of heap elements.
//
// It must return a negative value when a sorts before b, zero when they
// are equivalent, and a positive value otherwise. The info argument is
// the side-channel value supplied via WithInfo (nil when unset); it lets
// one comparator function serve several heaps ordered by different
// external state (e.g., per-solver priority tables) without closures.
type Comparator[T any] func(a, b T, info any) int

// Method selects the bulk-load strategy used by AddArray.
//
// The two strategies have substantially different behavior depending on
// input: rebuilding is O(n + k) and wins when the batch dominates the
// existing heap or arrives pre-sorted; one-by-one insertion is
// O(k log n) and wins for small batches into a large heap.
type Method int

const (
	// MethodAuto lets AddArray choose: rebuild when the batch is at
	// least as large as the current heap or is already sorted in either
	// direction, insert one by one otherwise.
	MethodAuto Method = iota

	// MethodRebuild forces append-then-rebuild (Floyd style: trickle
	// down from the middle of the array outward to the root).
	MethodRebuild

	// MethodInsert forces element-by-element insertion.
	MethodInsert
)

// options holds construction-time configuration. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	info any // side-channel value handed to every comparator call
}

// Option is a functional option for configuring a Heap.
type Option func(*options)

// WithInfo attaches a side-channel value that is passed, unchanged, as
// the third argument of every Comparator invocation on this heap.
func WithInfo(info any) Option {
	return func(o *options) { o.info = info }
}

// Heap is a min-max heap of elements of type T.
//
// The zero Heap is not usable; construct with New. A Heap is not safe
// for concurrent use: callers are single solver ticks (see the package
// comment), so no internal locking is performed.
type Heap[T any] struct {
	cmp  Comparator[T]
	info any
	// a is the element store; a[0] is a permanently unused slot so that
	// parent/child arithmetic stays the classical i/2, 2i, 2i+1.
	a []T
}

// New constructs an empty min-max heap ordered by cmp.
//
// A nil comparator is a programmer error and panics; failing here is
// far cheaper to diagnose than deep inside the first Add.
// Complexity: O(1).
func New[T any](cmp Comparator[T], opts ...Option) *Heap[T] {
	if cmp == nil {
		panic(ErrNilComparator.Error())
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[T]{
		cmp:  cmp,
		info: o.info,
		a:    make([]T, 1), // slot 0 reserved
	}
}

// Ordered is a convenience Comparator for the ordered built-in types.
// It ignores the side-channel info.
func Ordered[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64 | string](a, b T, _ any) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
