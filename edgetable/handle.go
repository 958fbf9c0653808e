// Package edgetable: owning handles. The raw AllocateEdge/ReleaseEdge
// protocol relies entirely on caller pairing discipline; Handle makes
// the pairing structural — one handle, one count, one Release.
package edgetable

// Handle owns exactly one reference to an edge. Obtain it from
// Table.Allocate; release it exactly once with Release (extra calls are
// no-ops, so a deferred Release composes safely with early ones).
type Handle struct {
	table    *Table
	id       ID
	released bool
}

// Allocate creates-or-fetches the edge l1→l2 with one reference taken
// (AddEdge semantics, WithAllocate implied) and returns the owning
// Handle. Additional EdgeOptions are forwarded to AddEdge.
// Complexity: O(1).
func (t *Table) Allocate(l1, l2 string, opts ...EdgeOption) *Handle {
	r := t.AddEdge(l1, l2, append(opts, WithAllocate())...)

	return &Handle{table: t, id: r.ID}
}

// ID returns the identity of the owned edge.
func (h *Handle) ID() ID { return h.id }

// Release gives the reference back. The first call forwards to
// ReleaseEdge and reports whether that purged the edge; subsequent
// calls return false without touching the table.
// Complexity: O(1).
func (h *Handle) Release() bool {
	if h.released {
		return false
	}
	h.released = true

	return h.table.ReleaseEdge(h.id)
}
