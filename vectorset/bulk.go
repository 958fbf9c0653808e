// Package vectorset: whole-vector operations — construction, full
// replacement, removal, vector-into-vector addition, one-pass component
// zeroing, and set-level Merge/Duplicate.
//
// Observer policy (see InnerProductObserver): bulk transitions emit one
// VectorChanged recomputation call instead of per-component streams;
// AddScaledVector emits one batched VectorsAdded.
package vectorset

// NewVector creates a vector holding the given values (zero-valued
// input entries are ignored) and returns its fresh, monotonic ID.
// Observers receive one VectorChanged call.
// Complexity: O(k log c) plus observer work.
func (s *Set) NewVector(values Values) ID {
	s.nextID++
	id := s.nextID
	v := &vector{pos: make(map[string]int, len(values))}
	s.vectors[id] = v

	for name, value := range values {
		if value == 0 {
			continue
		}
		v.addEntry(name, value)
		s.indexAdd(name, id)
	}
	if len(v.entries) > 0 {
		s.nonZero++
	}

	for _, ob := range s.observers {
		ob.VectorChanged(s, id)
	}

	return id
}

// SetVector replaces the entire contents of vector id with values.
// Components present before but absent from values are transitions to
// zero; fresh components are transitions from zero. When diffOut is
// non-nil it receives the exact per-component delta (new − old) of
// every touched component. Observers receive one VectorChanged call.
// Complexity: O(k_old + k_new) plus observer work.
func (s *Set) SetVector(id ID, values Values, diffOut Values) bool {
	v, ok := s.vectors[id]
	if !ok {
		return false
	}

	// 1) Old components absent from the new contents → removed.
	//    Iterate a snapshot: removeEntry mutates the arena.
	old := make([]entry, len(v.entries))
	copy(old, v.entries)
	for _, e := range old {
		if newVal, keep := values[e.name]; keep && newVal != 0 {
			continue
		}
		v.removeEntry(e.name, v.pos[e.name])
		s.indexRemove(e.name, id)
		if diffOut != nil {
			diffOut[e.name] = -e.value
		}
	}

	// 2) New contents: create or overwrite.
	for name, value := range values {
		if value == 0 {
			continue
		}
		p, exists := v.pos[name]
		if exists {
			if delta := value - v.entries[p].value; delta != 0 && diffOut != nil {
				diffOut[name] = delta
			}
			v.entries[p].value = value
		} else {
			v.addEntry(name, value)
			s.indexAdd(name, id)
			if diffOut != nil {
				diffOut[name] = value
			}
		}
	}

	// 3) Nonzero-count transition.
	if len(old) == 0 && len(v.entries) > 0 {
		s.nonZero++
	} else if len(old) > 0 && len(v.entries) == 0 {
		s.nonZero--
	}

	for _, ob := range s.observers {
		ob.VectorChanged(s, id)
	}

	return true
}

// RemoveVector deletes vector id, releasing all its index references.
// The ID is never reused. Observers receive one VectorChanged call.
// Complexity: O(k) plus observer work.
func (s *Set) RemoveVector(id ID) bool {
	v, ok := s.vectors[id]
	if !ok {
		return false
	}
	s.dropEntries(id, v)
	delete(s.vectors, id)

	for _, ob := range s.observers {
		ob.VectorChanged(s, id)
	}

	return true
}

// AddVector adds scalar × values into vector target, one component at a
// time (observers see the individual ValueAdded stream).
// Complexity: O(k) plus observer work.
func (s *Set) AddVector(target ID, values Values, scalar float64) bool {
	if _, ok := s.vectors[target]; !ok {
		return false
	}
	if scalar == 0 {
		return true
	}
	for name, value := range values {
		s.AddValue(target, name, scalar*value, false)
	}

	return true
}

// AddScaledVector adds scalar × (vector source) into vector target.
//
// The component adds are applied with observer traffic suppressed and
// observers receive a single batched VectorsAdded instead: an observer
// holding the previous inner products of both vectors can update from
// them directly, which is both cheaper and more numerically stable than
// resumming the target term by term.
// Complexity: O(k) plus observer work.
func (s *Set) AddScaledVector(target, source ID, scalar float64) bool {
	src, ok := s.vectors[source]
	if _, tok := s.vectors[target]; !ok || !tok {
		return false
	}
	if scalar == 0 {
		return true
	}

	// Snapshot the source arena: target may alias source.
	adds := make([]entry, len(src.entries))
	copy(adds, src.entries)
	for _, e := range adds {
		s.AddValue(target, e.name, scalar*e.value, true)
	}

	for _, ob := range s.observers {
		ob.VectorsAdded(s, target, source, scalar)
	}

	return true
}

// SetToZeroInAllVectors zeroes component name across every vector that
// holds it, in one pass over the component index rather than one
// SetValue call per vector. Observers see one ValueAdded (with the
// negating delta) per affected vector, so their aggregates stay exact.
// Complexity: O(m) for m holders, plus observer work.
func (s *Set) SetToZeroInAllVectors(name string) {
	holders, ok := s.index.Get(name)
	if !ok {
		return
	}
	// Snapshot: removals mutate the bucket (and eventually delete it).
	ids := make([]ID, 0, len(holders))
	for id := range holders {
		ids = append(ids, id)
	}

	for _, id := range ids {
		v := s.vectors[id]
		p := v.pos[name]
		old := v.entries[p].value
		v.removeEntry(name, p)
		s.indexRemove(name, id)
		if len(v.entries) == 0 {
			s.nonZero--
		}
		for _, ob := range s.observers {
			ob.ValueAdded(s, id, name, -old)
		}
	}
}

// Merge copies every vector of other into s under fresh IDs (source IDs
// are NOT preserved) and returns the source→new ID mapping. Observer
// registrations are never copied; re-register on s if needed.
// Complexity: O(total entries) plus observer work.
func (s *Set) Merge(other *Set) map[ID]ID {
	if other == nil {
		return nil
	}
	mapping := make(map[ID]ID, len(other.vectors))
	for srcID, v := range other.vectors {
		values := make(Values, len(v.entries))
		for _, e := range v.entries {
			values[e.name] = e.value
		}
		mapping[srcID] = s.NewVector(values)
	}

	return mapping
}

// Duplicate clones the Set entirely — vectors (under their ORIGINAL
// IDs), component index, change journal, counters and the zero-rounding
// policy. Observer registrations are never copied.
// Complexity: O(total entries).
func (s *Set) Duplicate() *Set {
	dup := &Set{
		zeroRounding: s.zeroRounding,
		nextID:       s.nextID,
		vectors:      make(map[ID]*vector, len(s.vectors)),
		changes:      make(map[string]componentChange, len(s.changes)),
		nonZero:      s.nonZero,
	}

	for id, v := range s.vectors {
		nv := &vector{
			entries: make([]entry, len(v.entries)),
			pos:     make(map[string]int, len(v.pos)),
		}
		copy(nv.entries, v.entries)
		for name, p := range v.pos {
			nv.pos[name] = p
		}
		dup.vectors[id] = nv
	}

	s.index.Scan(func(name string, holders map[ID]struct{}) bool {
		nh := make(map[ID]struct{}, len(holders))
		for id := range holders {
			nh[id] = struct{}{}
		}
		dup.index.Set(name, nh)

		return true
	})

	for name, kind := range s.changes {
		dup.changes[name] = kind
	}

	return dup
}
