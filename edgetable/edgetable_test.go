// Package edgetable_test contains unit tests for the edge registry:
// symmetric lookup, payload orientation and overwrite rules, the
// reference-count lifecycle, both ID modes, traversal helpers and the
// owning Handle.
package edgetable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katvale/solvecore/edgetable"
)

// ------------------------------------------------------------------------
// 1. Lifecycle scenario & symmetry.
// ------------------------------------------------------------------------

func TestTable_LifecycleScenario(t *testing.T) {
	// AddEdge("A","B", allocate) → Dir=+1; GetEdgeID("B","A") → same ID;
	// ReleaseEdge → purge reported; GetEdge("A","B") → absent.
	tab := edgetable.New()

	r := tab.AddEdge("A", "B", edgetable.WithAllocate())
	require.Equal(t, edgetable.DirCanonical, r.Dir)
	require.Equal(t, edgetable.ID("A;B"), r.ID)

	id, ok := tab.GetEdgeID("B", "A")
	require.True(t, ok)
	require.Equal(t, r.ID, id)

	require.True(t, tab.ReleaseEdge(id), "count reached zero, purge expected")

	_, ok = tab.GetEdge("A", "B")
	require.False(t, ok, "purged edge must be unreachable")
	require.Equal(t, 0, tab.Len())
}

func TestTable_SymmetricLookup(t *testing.T) {
	tab := edgetable.New()
	tab.AddEdge("left", "right")

	fwd, ok := tab.GetEdge("left", "right")
	require.True(t, ok)
	rev, ok := tab.GetEdge("right", "left")
	require.True(t, ok)

	require.Equal(t, fwd.ID, rev.ID, "both orders must resolve to one edge")
	require.Equal(t, edgetable.DirCanonical, fwd.Dir)
	require.Equal(t, edgetable.DirReversed, rev.Dir)
	require.Equal(t, "left", fwd.P1)
	require.Equal(t, "right", fwd.P2)
	require.Equal(t, fwd.P1, rev.P1, "canonical points do not depend on query order")
}

func TestTable_EdgePoints(t *testing.T) {
	tab := edgetable.New()
	r := tab.AddEdge("p", "q")

	p1, p2, ok := tab.EdgePoints(r.ID)
	require.True(t, ok)
	require.Equal(t, "p", p1)
	require.Equal(t, "q", p2)

	_, _, ok = tab.EdgePoints("nope")
	require.False(t, ok)
}

// ------------------------------------------------------------------------
// 2. Payload orientation & overwrite rules.
// ------------------------------------------------------------------------

func TestTable_PayloadOrientation(t *testing.T) {
	tab := edgetable.New()
	tab.AddEdge("A", "B", edgetable.WithProp("a→b"), edgetable.WithRevProp("b→a"))

	fwd, _ := tab.GetEdge("A", "B")
	require.Equal(t, "a→b", fwd.Prop)
	require.Equal(t, "b→a", fwd.RevProp)

	// Queried backwards, the payloads swap roles.
	rev, _ := tab.GetEdge("B", "A")
	require.Equal(t, "b→a", rev.Prop)
	require.Equal(t, "a→b", rev.RevProp)
}

func TestTable_AbsentOptionNeverOverwrites(t *testing.T) {
	tab := edgetable.New()
	tab.AddEdge("A", "B", edgetable.WithProp("keep"))

	// Re-add without WithProp: the stored payload must survive.
	tab.AddEdge("A", "B", edgetable.WithRevProp("new-rev"))
	r, _ := tab.GetEdge("A", "B")
	require.Equal(t, "keep", r.Prop)
	require.Equal(t, "new-rev", r.RevProp)

	// Explicit WithProp(nil) is "given" and does overwrite.
	tab.AddEdge("A", "B", edgetable.WithProp(nil))
	r, _ = tab.GetEdge("A", "B")
	require.Nil(t, r.Prop)
}

func TestTable_ReversedAddMapsPayloads(t *testing.T) {
	// Payload options follow the argument order of the AddEdge call,
	// not the stored canonical order.
	tab := edgetable.New()
	tab.AddEdge("A", "B")
	tab.AddEdge("B", "A", edgetable.WithProp("b→a"))

	r, _ := tab.GetEdge("A", "B")
	require.Equal(t, "b→a", r.RevProp)
	require.Nil(t, r.Prop)
}

// ------------------------------------------------------------------------
// 3. Reference counting.
// ------------------------------------------------------------------------

func TestTable_RefCountMonotonicity(t *testing.T) {
	// Created with allocate, then k more AllocateEdge calls: exactly
	// k+1 releases reach the purge.
	const k = 4
	tab := edgetable.New()
	r := tab.AddEdge("A", "B", edgetable.WithAllocate())
	for i := 0; i < k; i++ {
		require.True(t, tab.AllocateEdge(r.ID))
	}

	for i := 0; i < k; i++ {
		require.False(t, tab.ReleaseEdge(r.ID), "release #%d must not purge", i+1)
		_, ok := tab.GetEdge("A", "B")
		require.True(t, ok)
	}
	require.True(t, tab.ReleaseEdge(r.ID), "release #%d must purge", k+1)
	_, ok := tab.GetEdge("A", "B")
	require.False(t, ok)
}

func TestTable_ReleaseUnknownIsDetected(t *testing.T) {
	tab := edgetable.New()
	require.False(t, tab.ReleaseEdge("ghost"))
	require.False(t, tab.AllocateEdge("ghost"))

	// Double release after a purge is equally inert.
	r := tab.AddEdge("A", "B", edgetable.WithAllocate())
	require.True(t, tab.ReleaseEdge(r.ID))
	require.False(t, tab.ReleaseEdge(r.ID))
}

func TestTable_UnallocatedEdgeReleasePurges(t *testing.T) {
	// Created without allocation: count 0, one release purges at once.
	tab := edgetable.New()
	r := tab.AddEdge("A", "B")
	require.True(t, tab.ReleaseEdge(r.ID))
	require.Equal(t, 0, tab.Len())
}

func TestTable_AllocateOnExistingEdge(t *testing.T) {
	tab := edgetable.New()
	tab.AddEdge("A", "B", edgetable.WithAllocate())
	// AddEdge with WithAllocate on an existing edge increments too.
	r := tab.AddEdge("B", "A", edgetable.WithAllocate())

	require.False(t, tab.ReleaseEdge(r.ID))
	require.True(t, tab.ReleaseEdge(r.ID))
}

// ------------------------------------------------------------------------
// 4. Identity modes.
// ------------------------------------------------------------------------

func TestTable_LabelModeIDsStableAcrossPurge(t *testing.T) {
	tab := edgetable.New(edgetable.WithIDMode(edgetable.IDModeLabels))
	r1 := tab.AddEdge("A", "B", edgetable.WithAllocate())
	tab.ReleaseEdge(r1.ID)

	r2 := tab.AddEdge("A", "B")
	require.Equal(t, r1.ID, r2.ID, "label-mode IDs are purge-stable")
}

func TestTable_CounterModeIDs(t *testing.T) {
	tab := edgetable.New(edgetable.WithIDMode(edgetable.IDModeCounter))
	r1 := tab.AddEdge("A", "B", edgetable.WithAllocate())
	require.Equal(t, edgetable.ID("e1"), r1.ID)

	tab.ReleaseEdge(r1.ID)
	r2 := tab.AddEdge("A", "B")
	require.NotEqual(t, r1.ID, r2.ID, "counter-mode IDs are fresh after purge")
	require.Equal(t, edgetable.ID("e2"), r2.ID)
}

func TestTable_ExplicitID(t *testing.T) {
	tab := edgetable.New()
	r := tab.AddEdge("A", "B", edgetable.WithExplicitID("custom"))
	require.Equal(t, edgetable.ID("custom"), r.ID)

	// Ignored on an existing edge.
	again := tab.AddEdge("A", "B", edgetable.WithExplicitID("other"))
	require.Equal(t, edgetable.ID("custom"), again.ID)
}

func TestWithIDMode_BadValuePanics(t *testing.T) {
	require.PanicsWithValue(t, edgetable.ErrBadIDMode.Error(), func() {
		edgetable.WithIDMode(edgetable.IDMode(99))
	})
}

// ------------------------------------------------------------------------
// 5. Traversal helpers.
// ------------------------------------------------------------------------

func TestTable_Traversal(t *testing.T) {
	tab := edgetable.New()
	tab.AddEdge("hub", "b")
	tab.AddEdge("a", "hub") // hub is the reverse point here
	tab.AddEdge("hub", "c")
	tab.AddEdge("x", "y") // unrelated

	require.Equal(t, []string{"a", "b", "c"}, tab.EdgeOtherEnd("hub", false))
	require.Equal(t, []string{"b", "c"}, tab.EdgeOtherEnd("hub", true),
		"canonicalOnly must drop edges where hub is the second point")

	refs := tab.AllLabelEdges("hub")
	require.Len(t, refs, 3)
	for i := 1; i < len(refs); i++ {
		require.Less(t, refs[i-1].ID, refs[i].ID, "IDs ascending")
	}

	id, _ := tab.GetEdgeID("a", "hub")
	other, ok := tab.EdgeOppositeEnd("hub", id)
	require.True(t, ok)
	require.Equal(t, "a", other)

	_, ok = tab.EdgeOppositeEnd("stranger", id)
	require.False(t, ok)

	require.Nil(t, tab.EdgeOtherEnd("nobody", false))
	require.Nil(t, tab.AllLabelEdges("nobody"))
}

// ------------------------------------------------------------------------
// 6. Owning handle.
// ------------------------------------------------------------------------

func TestHandle_ReleaseIdempotent(t *testing.T) {
	tab := edgetable.New()
	h1 := tab.Allocate("A", "B")
	h2 := tab.Allocate("B", "A")
	require.Equal(t, h1.ID(), h2.ID())

	require.False(t, h1.Release(), "one reference remains")
	require.False(t, h1.Release(), "second release of the same handle is inert")
	_, ok := tab.GetEdge("A", "B")
	require.True(t, ok)

	require.True(t, h2.Release(), "last handle purges")
	require.False(t, h2.Release())
	_, ok = tab.GetEdge("A", "B")
	require.False(t, ok)
}
