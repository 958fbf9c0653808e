// Package vectorset: single-component operations, the global component
// index and the component-change journal.
//
// Invariants maintained here:
//   - A component name is present in the index iff at least one live
//     vector holds it with a nonzero weight.
//   - A vector's entry arena and its pos map agree at all times; no
//     entry ever stores an exact zero.
//   - The nonzero-vector count equals the number of vectors with ≥ 1
//     entry.
//
// Failure semantics: unknown vector IDs and components are silent
// no-ops (ok=false / 0), never errors.
package vectorset

import (
	"math"
	"sort"
)

// Len returns the number of live vectors (including empty ones).
// Complexity: O(1).
func (s *Set) Len() int { return len(s.vectors) }

// NonZeroCount returns the number of vectors holding at least one entry.
// Complexity: O(1).
func (s *Set) NonZeroCount() int { return s.nonZero }

// Value returns the weight of component name in vector id. Implicit and
// explicit zeros are indistinguishable: both read as 0.
// Complexity: O(1).
func (s *Set) Value(id ID, name string) float64 {
	v, ok := s.vectors[id]
	if !ok {
		return 0
	}
	p, ok := v.pos[name]
	if !ok {
		return 0
	}

	return v.entries[p].value
}

// Vector returns a copy of vector id as a Values map.
// Complexity: O(k) for k nonzero components.
func (s *Set) Vector(id ID) (Values, bool) {
	v, ok := s.vectors[id]
	if !ok {
		return nil, false
	}
	out := make(Values, len(v.entries))
	for _, e := range v.entries {
		out[e.name] = e.value
	}

	return out, true
}

// HasComponent reports whether any live vector holds component name.
// Complexity: O(log c).
func (s *Set) HasComponent(name string) bool {
	_, ok := s.index.Get(name)

	return ok
}

// Components returns every component held by at least one vector, in
// sorted order (the index is an ordered map; no sort pass is needed).
// Complexity: O(c).
func (s *Set) Components() []string {
	out := make([]string, 0, s.index.Len())
	s.index.Scan(func(name string, _ map[ID]struct{}) bool {
		out = append(out, name)

		return true
	})

	return out
}

// ComponentVectors returns the IDs of the vectors holding component
// name, sorted ascending.
// Complexity: O(m log m) for m holders.
func (s *Set) ComponentVectors(name string) []ID {
	holders, ok := s.index.Get(name)
	if !ok {
		return nil
	}
	out := make([]ID, 0, len(holders))
	for id := range holders {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ------------------------------------------------------------------------
// Component index bookkeeping.
// ------------------------------------------------------------------------

// indexAdd records that vector id now holds component name.
// Creates the index bucket lazily; the first holder journals an "added"
// transition (cancelling a pending "removed").
func (s *Set) indexAdd(name string, id ID) {
	holders, ok := s.index.Get(name)
	if !ok {
		holders = make(map[ID]struct{}, 1)
		s.index.Set(name, holders)
		s.addComponent(name)
	}
	holders[id] = struct{}{}
}

// indexRemove records that vector id no longer holds component name.
// Tears the bucket down with the last holder and journals the removal.
func (s *Set) indexRemove(name string, id ID) {
	holders, ok := s.index.Get(name)
	if !ok {
		return
	}
	delete(holders, id)
	if len(holders) == 0 {
		s.index.Delete(name)
		s.removeComponent(name)
	}
}

// addComponent journals a component's appearance. Appearance of a name
// pending removal cancels both entries (net no-op within the batch).
func (s *Set) addComponent(name string) {
	if kind, ok := s.changes[name]; ok && kind == componentRemoved {
		delete(s.changes, name)

		return
	}
	s.changes[name] = componentAdded
}

// removeComponent journals a component's disappearance, with the mirror
// cancellation rule.
func (s *Set) removeComponent(name string) {
	if kind, ok := s.changes[name]; ok && kind == componentAdded {
		delete(s.changes, name)

		return
	}
	s.changes[name] = componentRemoved
}

// ComponentChanges returns the names that entered (added) and left
// (removed) the component index since the last flush, each sorted.
// Within-batch churn that nets to nothing is absent from both lists.
// Complexity: O(j log j) for journal size j.
func (s *Set) ComponentChanges() (added, removed []string) {
	for name, kind := range s.changes {
		if kind == componentAdded {
			added = append(added, name)
		} else {
			removed = append(removed, name)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)

	return added, removed
}

// ClearComponentChanges discards the journal; the consumer calls this
// after processing a batch.
// Complexity: O(1).
func (s *Set) ClearComponentChanges() {
	s.changes = make(map[string]componentChange)
}

// ------------------------------------------------------------------------
// Vector entry arena.
// ------------------------------------------------------------------------

// addEntry appends a nonzero entry and stamps its position.
func (v *vector) addEntry(name string, value float64) {
	v.pos[name] = len(v.entries)
	v.entries = append(v.entries, entry{name: name, value: value})
}

// removeEntry drops the entry at position p by swap-and-shrink,
// restamping the moved entry's back-reference. O(1).
func (v *vector) removeEntry(name string, p int) {
	last := len(v.entries) - 1
	if p != last {
		v.entries[p] = v.entries[last]
		v.pos[v.entries[p].name] = p
	}
	v.entries = v.entries[:last]
	delete(v.pos, name)
}

// ------------------------------------------------------------------------
// Single-component mutations.
// ------------------------------------------------------------------------

// AddValue adds delta to component name of vector id and returns the
// resulting value.
//
// When the result is nonzero but |result/delta| falls below the
// configured zero-rounding threshold, the result snaps to exact zero —
// the guard against floating-point noise surviving a cancellation.
// Removal of a vector's last entry decrements the nonzero-vector count.
//
// Unless suppressProducts is set, every registered observer receives
// ValueAdded with the delta actually applied (which differs from delta
// exactly when the snap fired).
// Complexity: O(1) plus observer work.
func (s *Set) AddValue(id ID, name string, delta float64, suppressProducts bool) (float64, bool) {
	v, ok := s.vectors[id]
	if !ok {
		return 0, false
	}
	if delta == 0 {
		return s.Value(id, name), true
	}

	p, exists := v.pos[name]
	var old float64
	if exists {
		old = v.entries[p].value
	}
	res := old + delta
	if res != 0 && s.zeroRounding > 0 && math.Abs(res/delta) < s.zeroRounding {
		res = 0
	}
	applied := res - old

	switch {
	case res == 0 && exists:
		v.removeEntry(name, p)
		s.indexRemove(name, id)
		if len(v.entries) == 0 {
			s.nonZero--
		}
	case res == 0:
		// Snapped to zero before the entry ever existed: nothing stored.
	case exists:
		v.entries[p].value = res
	default:
		if len(v.entries) == 0 {
			s.nonZero++
		}
		v.addEntry(name, res)
		s.indexAdd(name, id)
	}

	if !suppressProducts {
		for _, ob := range s.observers {
			ob.ValueAdded(s, id, name, applied)
		}
	}

	return res, true
}

// SetValue unconditionally sets component name of vector id to value,
// creating or deleting the entry as needed. Observers are notified with
// the DIFFERENCE from the previous value (no notification when the
// value did not change).
// Complexity: O(1) plus observer work.
func (s *Set) SetValue(id ID, name string, value float64, suppressProducts bool) bool {
	v, ok := s.vectors[id]
	if !ok {
		return false
	}

	p, exists := v.pos[name]
	var old float64
	if exists {
		old = v.entries[p].value
	}
	if value == old {
		return true
	}

	switch {
	case value == 0:
		v.removeEntry(name, p)
		s.indexRemove(name, id)
		if len(v.entries) == 0 {
			s.nonZero--
		}
	case exists:
		v.entries[p].value = value
	default:
		if len(v.entries) == 0 {
			s.nonZero++
		}
		v.addEntry(name, value)
		s.indexAdd(name, id)
	}

	if !suppressProducts {
		for _, ob := range s.observers {
			ob.ValueAdded(s, id, name, value-old)
		}
	}

	return true
}

// TransferValue moves weight between two components of vector id: a
// negative add of fromValue on fromName composed with a positive add of
// toValue on toName. When the two names coincide the composition
// collapses into a single add of (toValue − fromValue), avoiding a
// spurious zero-crossing notification.
// Complexity: O(1) plus observer work.
func (s *Set) TransferValue(id ID, fromName string, fromValue float64, toName string, toValue float64) bool {
	if _, ok := s.vectors[id]; !ok {
		return false
	}
	if fromName == toName {
		_, ok := s.AddValue(id, toName, toValue-fromValue, false)

		return ok
	}
	if _, ok := s.AddValue(id, fromName, -fromValue, false); !ok {
		return false
	}
	_, ok := s.AddValue(id, toName, toValue, false)

	return ok
}

// MultiplyVector scales every entry of vector id by scalar. A zero
// scalar degenerates to removing all entries (no zero-valued entries
// are ever left behind). Observers receive one VectorMultiplied call.
// Complexity: O(k) plus observer work.
func (s *Set) MultiplyVector(id ID, scalar float64) bool {
	v, ok := s.vectors[id]
	if !ok {
		return false
	}

	if scalar == 0 {
		s.dropEntries(id, v)
	} else {
		for i := range v.entries {
			v.entries[i].value *= scalar
		}
	}

	for _, ob := range s.observers {
		ob.VectorMultiplied(s, id, scalar)
	}

	return true
}

// dropEntries empties v, tearing down index references and maintaining
// the nonzero-vector count. No observer traffic: callers decide how
// the emptying is reported.
func (s *Set) dropEntries(id ID, v *vector) {
	if len(v.entries) == 0 {
		return
	}
	for _, e := range v.entries {
		s.indexRemove(e.name, id)
	}
	v.entries = v.entries[:0]
	v.pos = make(map[string]int)
	s.nonZero--
}

// ------------------------------------------------------------------------
// Observer registration.
// ------------------------------------------------------------------------

// RegisterInnerProducts attaches an observer; it will be invoked, in
// registration order, on every subsequent mutation.
// Complexity: O(1).
func (s *Set) RegisterInnerProducts(ob InnerProductObserver) {
	s.observers = append(s.observers, ob)
}

// DeregisterInnerProducts detaches an observer by identity (not by
// registration index). Returns false when the observer was never
// registered.
// Complexity: O(len(observers)).
func (s *Set) DeregisterInnerProducts(ob InnerProductObserver) bool {
	for i, registered := range s.observers {
		if registered == ob {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)

			return true
		}
	}

	return false
}
