// Package vectorset: core types and functional configuration.
// This file defines:
//   - ID, Values and the internal arena-backed vector record,
//   - Option / options with documented defaults,
//   - the InnerProductObserver interface (see observer.go for the
//     concrete ProductTable implementation),
//   - the New constructor.
package vectorset

import (
	"errors"

	"github.com/tidwall/btree"
)

// ErrBadZeroRounding indicates a negative threshold passed to
// WithZeroRounding. Option constructors panic on nonsensical values
// (programmer error).
var ErrBadZeroRounding = errors.New("vectorset: zero-rounding threshold must be non-negative")

// ID identifies a vector within its Set. IDs are generated
// monotonically and never reused while the Set lives.
type ID uint64

// Values is the external, dense-map representation of a sparse vector.
// Zero-valued entries are ignored on input and never produced on output.
type Values map[string]float64

// DefaultZeroRounding disables the zero-snap guard; a small positive
// ratio (e.g. 1e-10) enables it. See WithZeroRounding.
const DefaultZeroRounding = 0.0

// options holds Set construction configuration. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	zeroRounding float64
}

// Option is a functional option for configuring a Set.
type Option func(*options)

// WithZeroRounding sets the zero-snap threshold used by AddValue: when
// a resulting magnitude is nonzero but its ratio to the applied delta
// falls below eps, the result is snapped to exact zero. Zero disables
// the check; a negative eps panics.
func WithZeroRounding(eps float64) Option {
	if eps < 0 {
		panic(ErrBadZeroRounding.Error())
	}

	return func(o *options) { o.zeroRounding = eps }
}

// InnerProductObserver is notified of every Set mutation so it can
// maintain derived dual-space aggregates (inner products and the like)
// incrementally, without rescanning vectors.
//
// Observers are invoked in registration order, after the mutation has
// been applied to the Set. The batched VectorsAdded and the bulk
// VectorChanged calls replace per-component ValueAdded streams where
// a whole-vector formulation is both cheaper and more numerically
// stable than resumming term by term.
type InnerProductObserver interface {
	// ValueAdded reports that delta was added to component name of
	// vector id (delta is the amount actually applied, after any
	// zero-snap; SetValue reports the difference from the old value).
	ValueAdded(s *Set, id ID, name string, delta float64)

	// VectorMultiplied reports that every entry of vector id was scaled
	// by scalar (scalar 0 means the vector was emptied).
	VectorMultiplied(s *Set, id ID, scalar float64)

	// VectorsAdded reports the batched operation
	// target += scalar × source, issued once instead of one ValueAdded
	// per nonzero source component.
	VectorsAdded(s *Set, target, source ID, scalar float64)

	// VectorChanged reports a bulk transition of vector id — creation,
	// full replacement or removal — for which the observer should
	// recompute any aggregate involving id from the Set's current state.
	VectorChanged(s *Set, id ID)
}

// entry is one nonzero component inside a vector's dense arena.
type entry struct {
	name  string
	value float64
}

// vector is the internal record: a dense entry arena plus the
// name→position back-reference enabling O(1) swap-and-shrink removal.
type vector struct {
	entries []entry
	pos     map[string]int
}

// componentChange is a journal entry kind.
type componentChange bool

const (
	componentAdded   componentChange = true
	componentRemoved componentChange = false
)

// Set is the sparse vector collection. Not safe for concurrent use.
type Set struct {
	zeroRounding float64
	nextID       ID

	// vectors: vector ID → record.
	vectors map[ID]*vector

	// index: component name → IDs of the vectors holding it nonzero.
	// Ordered so Components and one-pass sweeps iterate sorted.
	index btree.Map[string, map[ID]struct{}]

	// changes: component-change journal since the last flush, with
	// add/remove cancellation.
	changes map[string]componentChange

	// nonZero counts vectors currently holding at least one entry.
	nonZero int

	observers []InnerProductObserver
}

// New constructs an empty Set.
// Complexity: O(1).
func New(opts ...Option) *Set {
	var o options
	o.zeroRounding = DefaultZeroRounding
	for _, opt := range opts {
		opt(&o)
	}

	return &Set{
		zeroRounding: o.zeroRounding,
		vectors:      make(map[ID]*vector),
		changes:      make(map[string]componentChange),
	}
}
