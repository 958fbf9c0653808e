// Package edgetable: core types and functional configuration.
// This file defines:
//   - ID and the dual-mode generation strategy (IDMode),
//   - Edge (internal record) and Ref (lookup result),
//   - Option / EdgeOption functional options,
//   - documented defaults and the New constructor.
package edgetable

import "errors"

// ErrBadIDMode indicates an unknown IDMode passed to WithIDMode.
// Option constructors panic on nonsensical values (programmer error).
var ErrBadIDMode = errors.New("edgetable: unknown ID mode")

// ID identifies one edge within a Table.
//
// Under IDModeLabels an ID is the two labels joined by Separator in
// canonical order, so the same pair re-added after a purge yields the
// same ID. Under IDModeCounter IDs are "e" + decimal, cheaper to hash
// but fresh after every purge.
type ID string

// Separator joins the two labels of an IDModeLabels identity.
// Labels containing the separator are the caller's responsibility.
const Separator = ";"

// IDMode selects the identity-generation strategy for new edges,
// trading human-debuggable, purge-stable IDs for hashing speed.
type IDMode int

const (
	// IDModeLabels synthesizes IDs deterministically from the label pair
	// (canonical order, Separator-joined). The default.
	IDModeLabels IDMode = iota

	// IDModeCounter issues monotonic "e1", "e2", ... identities.
	IDModeCounter
)

// Dir values report how a query's label order relates to an edge's
// canonical order.
const (
	// DirCanonical: the queried order matches the order of creation.
	DirCanonical = 1

	// DirReversed: the queried labels are swapped relative to creation.
	DirReversed = -1
)

// edge is the internal registry record. Payloads are stored relative to
// the canonical direction: prop annotates P1→P2, revProp annotates
// P2→P1.
type edge struct {
	id       ID
	p1, p2   string // canonical order: the order of first creation
	prop     any
	revProp  any
	refCount int
}

// Ref is the result of a symmetric lookup, oriented to the QUERY:
// Dir reports canonical agreement, Prop is the payload annotating the
// queried direction and RevProp the opposite one, and P1/P2 restate the
// labels in canonical order.
type Ref struct {
	ID      ID
	Dir     int // DirCanonical or DirReversed
	Prop    any
	RevProp any
	P1, P2  string
}

// options holds Table construction configuration.
type options struct {
	mode IDMode
}

// Option is a functional option for configuring a Table.
type Option func(*options)

// WithIDMode selects the identity-generation strategy.
// Panics on an unknown mode.
func WithIDMode(m IDMode) Option {
	if m != IDModeLabels && m != IDModeCounter {
		panic(ErrBadIDMode.Error())
	}

	return func(o *options) { o.mode = m }
}

// edgeOptions collect per-AddEdge parameters. The set flags distinguish
// "payload explicitly given" from "absent": an absent payload never
// overwrites a stored one on an existing edge.
type edgeOptions struct {
	explicitID    ID
	hasExplicitID bool
	allocate      bool
	prop, revProp any
	propSet       bool
	revPropSet    bool
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeOptions)

// WithExplicitID forces the identity of a newly created edge instead of
// generating one. Ignored when the edge already exists.
func WithExplicitID(id ID) EdgeOption {
	return func(o *edgeOptions) { o.explicitID = id; o.hasExplicitID = true }
}

// WithAllocate starts a new edge with reference count 1, or increments
// the count of an existing one, in the same call that creates/fetches it.
func WithAllocate() EdgeOption {
	return func(o *edgeOptions) { o.allocate = true }
}

// WithProp sets the payload annotating the l1→l2 direction of the
// AddEdge call (mapped onto the stored canonical direction as needed).
// Overwrites an existing payload; omit the option to preserve it.
func WithProp(v any) EdgeOption {
	return func(o *edgeOptions) { o.prop = v; o.propSet = true }
}

// WithRevProp sets the payload annotating the l2→l1 direction of the
// AddEdge call. Overwrites an existing payload; omit to preserve.
func WithRevProp(v any) EdgeOption {
	return func(o *edgeOptions) { o.revProp = v; o.revPropSet = true }
}

// Table is the edge registry. Not safe for concurrent use: callers are
// single solver ticks, so no internal locking is performed.
type Table struct {
	mode   IDMode
	nextID uint64

	// edges: identity → record.
	edges map[ID]*edge

	// half: label → other label → record. Every edge appears twice (or
	// once for a self-pair), making lookup symmetric by construction.
	half map[string]map[string]*edge
}

// New constructs an empty Table. Default mode is IDModeLabels.
// Complexity: O(1).
func New(opts ...Option) *Table {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Table{
		mode:  o.mode,
		edges: make(map[ID]*edge),
		half:  make(map[string]map[string]*edge),
	}
}
