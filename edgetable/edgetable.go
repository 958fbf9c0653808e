// Package edgetable: registry operations. Edge lifecycle (AddEdge /
// AllocateEdge / ReleaseEdge), symmetric queries and traversal helpers.
//
// Determinism:
//   - EdgeOtherEnd and AllLabelEdges return sorted results (labels asc,
//     IDs asc) for stable logs and goldens.
//   - Counter-mode IDs are monotonic and stable ("e" + decimal).
//
// Failure semantics:
//   - Absent labels/IDs answer with ok=false (or empty slices), never
//     errors; mutating calls on absent edges are silent no-ops.
package edgetable

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of counter-mode identities.
// Byte form is intentional to allow append without fmt.
const edgeIDPrefix = 'e'

// genID produces an identity for a new edge with canonical order l1→l2.
func (t *Table) genID(l1, l2 string) ID {
	if t.mode == IDModeCounter {
		t.nextID++
		buf := make([]byte, 0, 12)
		buf = append(buf, edgeIDPrefix)
		buf = strconv.AppendUint(buf, t.nextID, 10)

		return ID(buf)
	}

	return ID(l1 + Separator + l2)
}

// ref builds the query-oriented lookup result for e. forward reports
// whether the query order matched the canonical order.
func ref(e *edge, forward bool) Ref {
	r := Ref{ID: e.id, P1: e.p1, P2: e.p2}
	if forward {
		r.Dir, r.Prop, r.RevProp = DirCanonical, e.prop, e.revProp
	} else {
		r.Dir, r.Prop, r.RevProp = DirReversed, e.revProp, e.prop
	}

	return r
}

// Len returns the number of live edges.
// Complexity: O(1).
func (t *Table) Len() int { return len(t.edges) }

// GetEdge looks up the edge between l1 and l2, in either order.
// The returned Ref is oriented to the query: Dir is DirCanonical when
// (l1, l2) matches the creation order, and Prop/RevProp follow suit.
// Complexity: O(1).
func (t *Table) GetEdge(l1, l2 string) (Ref, bool) {
	e, ok := t.half[l1][l2]
	if !ok {
		return Ref{}, false
	}

	return ref(e, e.p1 == l1), true
}

// GetEdgeID returns just the identity of the edge between l1 and l2.
// Complexity: O(1).
func (t *Table) GetEdgeID(l1, l2 string) (ID, bool) {
	e, ok := t.half[l1][l2]
	if !ok {
		return "", false
	}

	return e.id, true
}

// EdgePoints returns the two labels of edge id in canonical order.
// Complexity: O(1).
func (t *Table) EdgePoints(id ID) (p1, p2 string, ok bool) {
	e, found := t.edges[id]
	if !found {
		return "", "", false
	}

	return e.p1, e.p2, true
}

// AddEdge creates the edge l1→l2 or fetches the existing one (in either
// orientation) — the idempotent entry point of the registry.
//
// New edge:
//   - canonical order is the argument order,
//   - the identity is WithExplicitID if given, else generated per the
//     Table's IDMode,
//   - the reference count starts at 1 with WithAllocate, else at 0,
//   - WithProp / WithRevProp seed the directional payloads.
//
// Existing edge:
//   - WithAllocate increments the reference count,
//   - WithProp / WithRevProp overwrite the stored payloads for the
//     l1→l2 / l2→l1 directions respectively; an omitted option never
//     overwrites (the Go rendering of "undefined does not overwrite"),
//   - WithExplicitID is ignored.
//
// The returned Ref is oriented to the argument order.
// Complexity: O(1).
func (t *Table) AddEdge(l1, l2 string, opts ...EdgeOption) Ref {
	var o edgeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if e, ok := t.half[l1][l2]; ok {
		forward := e.p1 == l1
		if o.allocate {
			e.refCount++
		}
		if o.propSet {
			if forward {
				e.prop = o.prop
			} else {
				e.revProp = o.prop
			}
		}
		if o.revPropSet {
			if forward {
				e.revProp = o.revProp
			} else {
				e.prop = o.revProp
			}
		}

		return ref(e, forward)
	}

	id := o.explicitID
	if !o.hasExplicitID {
		id = t.genID(l1, l2)
	}
	e := &edge{id: id, p1: l1, p2: l2, prop: o.prop, revProp: o.revProp}
	if o.allocate {
		e.refCount = 1
	}

	t.edges[id] = e
	t.link(l1, l2, e)
	if l1 != l2 {
		t.link(l2, l1, e)
	}

	return ref(e, true)
}

// link records e under half[a][b], creating the inner map lazily.
func (t *Table) link(a, b string, e *edge) {
	inner, ok := t.half[a]
	if !ok {
		inner = make(map[string]*edge)
		t.half[a] = inner
	}
	inner[b] = e
}

// AllocateEdge increments the reference count of edge id.
// Returns false (no-op) when the edge does not exist.
// Complexity: O(1).
func (t *Table) AllocateEdge(id ID) bool {
	e, ok := t.edges[id]
	if !ok {
		return false
	}
	e.refCount++

	return true
}

// ReleaseEdge decrements the reference count of edge id and purges the
// edge the instant the count reaches (or was already at) zero: its two
// directional entries and its by-ID entry all disappear atomically.
// The purge is irreversible; a later AddEdge creates a new instance.
//
// Returns true when a purge occurred. Releasing an unknown (or already
// purged) edge returns false and changes nothing — counts can never go
// negative, the checked form of the classical underflow gap.
// Complexity: O(1).
func (t *Table) ReleaseEdge(id ID) bool {
	e, ok := t.edges[id]
	if !ok {
		return false
	}
	e.refCount--
	if e.refCount > 0 {
		return false
	}
	t.purge(e)

	return true
}

// purge removes all three map entries of e and prunes emptied buckets.
func (t *Table) purge(e *edge) {
	delete(t.edges, e.id)
	t.unlink(e.p1, e.p2)
	if e.p1 != e.p2 {
		t.unlink(e.p2, e.p1)
	}
}

func (t *Table) unlink(a, b string) {
	inner := t.half[a]
	delete(inner, b)
	if len(inner) == 0 {
		delete(t.half, a)
	}
}

// EdgeOtherEnd returns the labels paired with label across all its live
// edges, sorted ascending. With canonicalOnly, only edges on which
// label is the canonical first point are considered.
// Complexity: O(d log d) for degree d.
func (t *Table) EdgeOtherEnd(label string, canonicalOnly bool) []string {
	inner := t.half[label]
	if len(inner) == 0 {
		return nil
	}
	out := make([]string, 0, len(inner))
	for other, e := range inner {
		if canonicalOnly && e.p1 != label {
			continue
		}
		out = append(out, other)
	}
	sort.Strings(out)

	return out
}

// AllLabelEdges returns a Ref for every live edge touching label,
// oriented as if queried label-first, sorted by ID ascending.
// Complexity: O(d log d) for degree d.
func (t *Table) AllLabelEdges(label string) []Ref {
	inner := t.half[label]
	if len(inner) == 0 {
		return nil
	}
	out := make([]Ref, 0, len(inner))
	for _, e := range inner {
		out = append(out, ref(e, e.p1 == label))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeOppositeEnd returns the label paired with label on the known edge
// id. ok is false when the edge is absent or label is not one of its
// points.
// Complexity: O(1).
func (t *Table) EdgeOppositeEnd(label string, id ID) (string, bool) {
	e, found := t.edges[id]
	if !found {
		return "", false
	}
	switch label {
	case e.p1:
		return e.p2, true
	case e.p2:
		return e.p1, true
	default:
		return "", false
	}
}
