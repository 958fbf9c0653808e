// Package vectorset_test contains unit tests for the sparse vector set:
// single-component arithmetic, zero-entry elision, the zero-rounding
// snap, the component index with its change journal, and observer
// registration semantics.
package vectorset_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katvale/solvecore/vectorset"
)

// ------------------------------------------------------------------------
// 1. Basic arithmetic & failure sentinels.
// ------------------------------------------------------------------------

func TestSet_UnknownIDsAreSilentNoOps(t *testing.T) {
	s := vectorset.New()

	_, ok := s.AddValue(99, "x", 1, false)
	require.False(t, ok)
	require.False(t, s.SetValue(99, "x", 1, false))
	require.False(t, s.MultiplyVector(99, 2))
	require.False(t, s.RemoveVector(99))
	require.False(t, s.TransferValue(99, "a", 1, "b", 1))
	require.Zero(t, s.Value(99, "x"))
	_, ok = s.Vector(99)
	require.False(t, ok)
}

func TestSet_AddValueAdditivity(t *testing.T) {
	// addValue(d1) then addValue(d2) must equal one addValue(d1+d2).
	s1 := vectorset.New()
	v1 := s1.NewVector(nil)
	s1.AddValue(v1, "x", 0.7, false)
	s1.AddValue(v1, "x", 2.55, false)

	s2 := vectorset.New()
	v2 := s2.NewVector(nil)
	s2.AddValue(v2, "x", 0.7+2.55, false)

	require.True(t, scalar.EqualWithinAbsOrRel(s1.Value(v1, "x"), s2.Value(v2, "x"), 1e-12, 1e-12))
}

func TestSet_ScenarioCancellation(t *testing.T) {
	// newVector({x:5}) then addValue(-5): "x" disappears from the vector
	// AND from the component index; Value reads 0.
	s := vectorset.New()
	id := s.NewVector(vectorset.Values{"x": 5})
	require.True(t, s.HasComponent("x"))
	require.Equal(t, 1, s.NonZeroCount())

	res, ok := s.AddValue(id, "x", -5, false)
	require.True(t, ok)
	require.Zero(t, res)
	require.Zero(t, s.Value(id, "x"))
	require.False(t, s.HasComponent("x"))
	require.Equal(t, 0, s.NonZeroCount())

	vals, ok := s.Vector(id)
	require.True(t, ok, "the vector itself stays alive, empty")
	require.Empty(t, vals)
}

func TestSet_ZeroEntryElisionOnSetValue(t *testing.T) {
	s := vectorset.New()
	id := s.NewVector(vectorset.Values{"x": 3, "y": 4})

	require.True(t, s.SetValue(id, "x", 0, false))
	vals, _ := s.Vector(id)
	require.Equal(t, vectorset.Values{"y": 4.0}, vals)
	require.False(t, s.HasComponent("x"))
	require.Equal(t, 1, s.NonZeroCount())
}

func TestSet_ZeroRoundingSnap(t *testing.T) {
	// 1 + (1e-14 − 1): the float result is ~1e-14 ≠ 0, but its ratio to
	// the delta is ~1e-14 < eps, so it snaps to exact zero.
	s := vectorset.New(vectorset.WithZeroRounding(1e-10))
	id := s.NewVector(vectorset.Values{"x": 1})

	res, ok := s.AddValue(id, "x", 1e-14-1, false)
	require.True(t, ok)
	require.Zero(t, res)
	require.False(t, s.HasComponent("x"))

	// Disabled (the default): the noise survives.
	s2 := vectorset.New()
	id2 := s2.NewVector(vectorset.Values{"x": 1})
	res, _ = s2.AddValue(id2, "x", 1e-14-1, false)
	require.NotZero(t, res)
	require.True(t, s2.HasComponent("x"))
}

func TestWithZeroRounding_NegativePanics(t *testing.T) {
	require.PanicsWithValue(t, vectorset.ErrBadZeroRounding.Error(), func() {
		vectorset.WithZeroRounding(-1)
	})
}

func TestSet_TransferValue(t *testing.T) {
	s := vectorset.New()
	id := s.NewVector(vectorset.Values{"a": 10})

	require.True(t, s.TransferValue(id, "a", 4, "b", 4))
	require.Equal(t, 6.0, s.Value(id, "a"))
	require.Equal(t, 4.0, s.Value(id, "b"))

	// Same-name transfer collapses to one add of (to − from).
	require.True(t, s.TransferValue(id, "a", 6, "a", 10))
	require.Equal(t, 10.0, s.Value(id, "a"))
}

func TestSet_MultiplyVector(t *testing.T) {
	s := vectorset.New()
	id := s.NewVector(vectorset.Values{"x": 2, "y": -3})

	require.True(t, s.MultiplyVector(id, 2.5))
	require.Equal(t, 5.0, s.Value(id, "x"))
	require.Equal(t, -7.5, s.Value(id, "y"))

	// Scalar 0 removes all entries instead of storing zeros.
	require.True(t, s.MultiplyVector(id, 0))
	vals, _ := s.Vector(id)
	require.Empty(t, vals)
	require.False(t, s.HasComponent("x"))
	require.False(t, s.HasComponent("y"))
	require.Equal(t, 0, s.NonZeroCount())
}

func TestSet_MonotonicIDs(t *testing.T) {
	s := vectorset.New()
	a := s.NewVector(nil)
	b := s.NewVector(vectorset.Values{"x": 1})
	s.RemoveVector(a)
	c := s.NewVector(nil)

	require.Less(t, a, b)
	require.Less(t, b, c, "removed IDs are never reused")
	require.Equal(t, 2, s.Len())
}

// ------------------------------------------------------------------------
// 2. Component index & change journal.
// ------------------------------------------------------------------------

func TestSet_ComponentIndex(t *testing.T) {
	s := vectorset.New()
	v1 := s.NewVector(vectorset.Values{"x": 1, "y": 2})
	v2 := s.NewVector(vectorset.Values{"y": 3})

	require.Equal(t, []string{"x", "y"}, s.Components())
	require.Equal(t, []vectorset.ID{v1, v2}, s.ComponentVectors("y"))
	require.Equal(t, []vectorset.ID{v1}, s.ComponentVectors("x"))
	require.Nil(t, s.ComponentVectors("z"))

	// The index entry survives until the LAST holder drops it.
	s.SetValue(v1, "y", 0, false)
	require.True(t, s.HasComponent("y"))
	s.SetValue(v2, "y", 0, false)
	require.False(t, s.HasComponent("y"))
}

func TestSet_ComponentJournal(t *testing.T) {
	s := vectorset.New()
	id := s.NewVector(vectorset.Values{"x": 1})

	added, removed := s.ComponentChanges()
	require.Equal(t, []string{"x"}, added)
	require.Empty(t, removed)

	s.ClearComponentChanges()

	// Remove then re-add within one batch: entries cancel (net no-op).
	s.SetValue(id, "x", 0, false)
	s.SetValue(id, "x", 7, false)
	added, removed = s.ComponentChanges()
	require.Empty(t, added)
	require.Empty(t, removed)

	// Add then remove within one batch cancels too.
	s.AddValue(id, "fresh", 1, false)
	s.AddValue(id, "fresh", -1, false)
	added, removed = s.ComponentChanges()
	require.Empty(t, added)
	require.Empty(t, removed)

	// A plain removal is journaled.
	s.SetValue(id, "x", 0, false)
	added, removed = s.ComponentChanges()
	require.Empty(t, added)
	require.Equal(t, []string{"x"}, removed)
}

func TestSet_SetToZeroInAllVectors(t *testing.T) {
	s := vectorset.New()
	v1 := s.NewVector(vectorset.Values{"w": 1, "k": 5})
	v2 := s.NewVector(vectorset.Values{"w": 2})
	v3 := s.NewVector(vectorset.Values{"other": 3})

	s.SetToZeroInAllVectors("w")
	require.Zero(t, s.Value(v1, "w"))
	require.Zero(t, s.Value(v2, "w"))
	require.False(t, s.HasComponent("w"))
	require.Equal(t, 5.0, s.Value(v1, "k"), "unrelated components untouched")
	require.Equal(t, 3.0, s.Value(v3, "other"))
	require.Equal(t, 2, s.NonZeroCount(), "v2 became the zero vector")

	// Zeroing an absent component is a silent no-op.
	s.SetToZeroInAllVectors("ghost")
}

// ------------------------------------------------------------------------
// 3. Observer registration semantics.
// ------------------------------------------------------------------------

// recorder is a minimal observer capturing its notification stream.
type recorder struct {
	values []valueEvent
	mults  []float64
	adds   int
	bulks  int
}

type valueEvent struct {
	id    vectorset.ID
	name  string
	delta float64
}

func (r *recorder) ValueAdded(_ *vectorset.Set, id vectorset.ID, name string, delta float64) {
	r.values = append(r.values, valueEvent{id: id, name: name, delta: delta})
}
func (r *recorder) VectorMultiplied(_ *vectorset.Set, _ vectorset.ID, scalar float64) {
	r.mults = append(r.mults, scalar)
}
func (r *recorder) VectorsAdded(_ *vectorset.Set, _, _ vectorset.ID, _ float64) { r.adds++ }
func (r *recorder) VectorChanged(_ *vectorset.Set, _ vectorset.ID)              { r.bulks++ }

func TestSet_ObserverStream(t *testing.T) {
	s := vectorset.New()
	rec := &recorder{}
	s.RegisterInnerProducts(rec)

	id := s.NewVector(vectorset.Values{"x": 1})
	require.Equal(t, 1, rec.bulks, "NewVector emits one bulk call")

	s.AddValue(id, "x", 2, false)
	require.Equal(t, []valueEvent{{id: id, name: "x", delta: 2}}, rec.values)

	// SetValue notifies with the difference from the previous value.
	s.SetValue(id, "x", 10, false)
	require.Equal(t, valueEvent{id: id, name: "x", delta: 7}, rec.values[len(rec.values)-1])

	// Suppressed calls stay silent.
	n := len(rec.values)
	s.AddValue(id, "x", 1, true)
	require.Len(t, rec.values, n)

	s.MultiplyVector(id, 3)
	require.Equal(t, []float64{3}, rec.mults)

	s.RemoveVector(id)
	require.Equal(t, 2, rec.bulks)
}

func TestSet_ObserverSeesAppliedDelta(t *testing.T) {
	// When the zero-snap fires, the observer receives the snap-adjusted
	// delta so its aggregates cancel exactly.
	s := vectorset.New(vectorset.WithZeroRounding(1e-10))
	rec := &recorder{}
	s.RegisterInnerProducts(rec)

	id := s.NewVector(vectorset.Values{"x": 1})
	s.AddValue(id, "x", 1e-14-1, false)

	last := rec.values[len(rec.values)-1]
	require.Equal(t, -1.0, last.delta, "applied delta must negate the stored value exactly")
}

func TestSet_DeregisterByIdentity(t *testing.T) {
	s := vectorset.New()
	r1, r2 := &recorder{}, &recorder{}
	s.RegisterInnerProducts(r1)
	s.RegisterInnerProducts(r2)

	require.True(t, s.DeregisterInnerProducts(r1))
	require.False(t, s.DeregisterInnerProducts(r1), "already removed")

	id := s.NewVector(vectorset.Values{"x": 1})
	s.AddValue(id, "x", 1, false)
	require.Empty(t, r1.values)
	require.Len(t, r2.values, 1)
}

func TestSet_ObserverOrder(t *testing.T) {
	// Observers fire in registration order on every mutation.
	s := vectorset.New()
	var order []string
	first := &orderProbe{tag: "first", order: &order}
	second := &orderProbe{tag: "second", order: &order}
	s.RegisterInnerProducts(first)
	s.RegisterInnerProducts(second)

	id := s.NewVector(nil)
	s.AddValue(id, "x", 1, false)
	require.Equal(t, []string{"first", "second", "first", "second"}, order)
}

type orderProbe struct {
	tag   string
	order *[]string
}

func (p *orderProbe) ValueAdded(_ *vectorset.Set, _ vectorset.ID, _ string, _ float64) {
	*p.order = append(*p.order, p.tag)
}
func (p *orderProbe) VectorMultiplied(_ *vectorset.Set, _ vectorset.ID, _ float64) {
	*p.order = append(*p.order, p.tag)
}
func (p *orderProbe) VectorsAdded(_ *vectorset.Set, _, _ vectorset.ID, _ float64) {
	*p.order = append(*p.order, p.tag)
}
func (p *orderProbe) VectorChanged(_ *vectorset.Set, _ vectorset.ID) {
	*p.order = append(*p.order, p.tag)
}
