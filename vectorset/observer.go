// Package vectorset: ProductTable, the package's concrete
// InnerProductObserver. It maintains the inner products of watched
// vector pairs incrementally, falling back to a full dot product only
// on bulk transitions.
package vectorset

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// pair is a normalized (a ≤ b) watched vector pair.
type pair struct {
	a, b ID
}

func makePair(a, b ID) pair {
	if a > b {
		a, b = b, a
	}

	return pair{a: a, b: b}
}

// ProductTable tracks the inner products of selected vector pairs of
// one Set, updating them from mutation deltas instead of rescanning.
// Watching a vector against itself tracks its squared norm.
//
// Register it with Set.RegisterInnerProducts; like the Set itself it is
// single-threaded by contract.
type ProductTable struct {
	set      *Set
	products map[pair]float64
}

// NewProductTable creates an empty table bound to s; the caller still
// registers it: tracking only starts from registration, and Merge /
// Duplicate deliberately never carry registrations over.
func NewProductTable(s *Set) *ProductTable {
	return &ProductTable{set: s, products: make(map[pair]float64)}
}

// Watch starts tracking the inner product ⟨a, b⟩, seeding it from the
// Set's current state. Complexity: O(k) for the seeding dot product.
func (pt *ProductTable) Watch(a, b ID) {
	key := makePair(a, b)
	pt.products[key] = pt.dot(key.a, key.b)
}

// Unwatch stops tracking ⟨a, b⟩.
func (pt *ProductTable) Unwatch(a, b ID) {
	delete(pt.products, makePair(a, b))
}

// Product returns the tracked inner product ⟨a, b⟩; ok is false when
// the pair is not watched.
// Complexity: O(1).
func (pt *ProductTable) Product(a, b ID) (float64, bool) {
	p, ok := pt.products[makePair(a, b)]

	return p, ok
}

// ValueAdded implements InnerProductObserver.
//
// For a watched pair (id, other), adding delta to component name moves
// the product by delta × other[name]; the self pair moves by
// delta × (2·new − delta), both derived from the post-mutation state.
func (pt *ProductTable) ValueAdded(s *Set, id ID, name string, delta float64) {
	if delta == 0 {
		return
	}
	for key := range pt.products {
		switch {
		case key.a == id && key.b == id:
			newVal := s.Value(id, name)
			pt.products[key] += delta * (2*newVal - delta)
		case key.a == id:
			pt.products[key] += delta * s.Value(key.b, name)
		case key.b == id:
			pt.products[key] += delta * s.Value(key.a, name)
		}
	}
}

// VectorMultiplied implements InnerProductObserver: scaling one side
// scales the product; the self pair scales quadratically.
func (pt *ProductTable) VectorMultiplied(_ *Set, id ID, scalar float64) {
	for key := range pt.products {
		switch {
		case key.a == id && key.b == id:
			pt.products[key] *= scalar * scalar
		case key.a == id || key.b == id:
			pt.products[key] *= scalar
		}
	}
}

// VectorsAdded implements InnerProductObserver for the batched
// target += scalar × source.
//
// Where the table already knows the products it needs —
// ⟨t′, x⟩ = ⟨t, x⟩ + scalar·⟨src, x⟩, and for the self pair
// ⟨t′, t′⟩ = ⟨t, t⟩ + 2·scalar·⟨t, src⟩ + scalar²·⟨src, src⟩ — the
// update is pure arithmetic on previous products (the numerical-
// stability point of the batched call). Missing inputs fall back to a
// recompute from the Set's current state.
func (pt *ProductTable) VectorsAdded(_ *Set, target, source ID, scalar float64) {
	// Snapshot the previous products: the updates below must all read
	// pre-mutation values even while the map is being rewritten.
	prev := make(map[pair]float64, len(pt.products))
	for k, v := range pt.products {
		prev[k] = v
	}

	for key := range pt.products {
		if key.a != target && key.b != target {
			continue
		}
		if key.a == target && key.b == target {
			tt, okTT := prev[makePair(target, target)]
			ts, okTS := prev[makePair(target, source)]
			ss, okSS := prev[makePair(source, source)]
			if okTT && okTS && okSS {
				pt.products[key] = tt + 2*scalar*ts + scalar*scalar*ss
			} else {
				pt.products[key] = pt.dot(target, target)
			}

			continue
		}
		other := key.a
		if other == target {
			other = key.b
		}
		tx, okTX := prev[key]
		sx, okSX := prev[makePair(source, other)]
		if okTX && okSX {
			pt.products[key] = tx + scalar*sx
		} else {
			pt.products[key] = pt.dot(target, other)
		}
	}
}

// VectorChanged implements InnerProductObserver: bulk transitions
// (creation, replacement, removal) invalidate every product involving
// id, so each is recomputed from the Set's current state.
func (pt *ProductTable) VectorChanged(_ *Set, id ID) {
	for key := range pt.products {
		if key.a == id || key.b == id {
			pt.products[key] = pt.dot(key.a, key.b)
		}
	}
}

// dot computes ⟨a, b⟩ from the Set's current state. The sparse maps are
// aligned into dense slices over their shared components (the rest
// contribute zero terms) and reduced with gonum's floats.Dot. Absent
// vectors are zero vectors.
func (pt *ProductTable) dot(a, b ID) float64 {
	va, okA := pt.set.Vector(a)
	vb, okB := pt.set.Vector(b)
	if !okA || !okB || len(va) == 0 || len(vb) == 0 {
		return 0
	}

	names := make([]string, 0, len(va))
	for name := range va {
		if _, shared := vb[name]; shared {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	xs := make([]float64, len(names))
	ys := make([]float64, len(names))
	for i, name := range names {
		xs[i] = va[name]
		ys[i] = vb[name]
	}

	return floats.Dot(xs, ys)
}
