// Package orgroup: the Tracker itself — queries, reconciliation and
// the refresh pull from the ConstraintSource.
//
// Determinism:
//   - Source verdict maps are processed in sorted group order.
//   - FirstSatisfiedVariable picks the lexicographically smallest
//     eligible variable.
//
// Counts are derived from set sizes (len), so they can never run
// negative — the checked resolution of the classical
// decrement-without-bounds gap.
package orgroup

import "sort"

// group is the per-group record: the two tagged variable sets.
// A group with both sets empty is never kept in the table.
type group struct {
	satisfied map[string]Tightness
	violated  map[string]float64
}

// Tracker reconciles ConstraintSource verdicts into per-group
// satisfaction tables. Not safe for concurrent use.
type Tracker struct {
	source  ConstraintSource
	groups  map[string]*group
	changes *Changes
}

// New constructs an empty Tracker bound to source.
// A nil source panics: the Tracker is meaningless without one.
// Complexity: O(1).
func New(source ConstraintSource) *Tracker {
	if source == nil {
		panic("orgroup: constraint source is nil")
	}

	return &Tracker{
		source:  source,
		groups:  make(map[string]*group),
		changes: newChanges(),
	}
}

// Len returns the number of groups currently tracked.
// Complexity: O(1).
func (t *Tracker) Len() int { return len(t.groups) }

// ------------------------------------------------------------------------
// Queries.
// ------------------------------------------------------------------------

// GroupStatus derives the overall status of group: satisfied iff the
// satisfied-variable count is > 0, violated otherwise, unknown when the
// group has no record at all.
// Complexity: O(1).
func (t *Tracker) GroupStatus(name string) Status {
	g, ok := t.groups[name]
	if !ok {
		return StatusUnknown
	}
	if len(g.satisfied) > 0 {
		return StatusSatisfied
	}

	return StatusViolated
}

// NumSatisfied returns the number of variables on which group is
// currently satisfied (0 for unknown groups).
// Complexity: O(1).
func (t *Tracker) NumSatisfied(name string) int {
	g, ok := t.groups[name]
	if !ok {
		return 0
	}

	return len(g.satisfied)
}

// NumViolated returns the number of variables on which group is
// currently violated (0 for unknown groups).
// Complexity: O(1).
func (t *Tracker) NumViolated(name string) int {
	g, ok := t.groups[name]
	if !ok {
		return 0
	}

	return len(g.violated)
}

// GroupSatisfaction returns group's verdict on variable: the tightness
// code if satisfied, the violation target if violated; ok is false when
// the pair has no record.
// Complexity: O(1).
func (t *Tracker) GroupSatisfaction(name, variable string) (Satisfaction, bool) {
	g, ok := t.groups[name]
	if !ok {
		return Satisfaction{}, false
	}
	if tight, sat := g.satisfied[variable]; sat {
		return Satisfied(tight), true
	}
	if target, viol := g.violated[variable]; viol {
		return Violated(target), true
	}

	return Satisfaction{}, false
}

// IsSatisfiedOnVariable reports whether group is satisfied on variable.
// Complexity: O(1).
func (t *Tracker) IsSatisfiedOnVariable(name, variable string) bool {
	g, ok := t.groups[name]
	if !ok {
		return false
	}
	_, sat := g.satisfied[variable]

	return sat
}

// SatisfiedOnVariableOnly reports whether variable is the ONLY variable
// on which group is satisfied — the case where moving it off
// satisfaction would flip the whole group.
// Complexity: O(1).
func (t *Tracker) SatisfiedOnVariableOnly(name, variable string) bool {
	g, ok := t.groups[name]
	if !ok {
		return false
	}
	_, sat := g.satisfied[variable]

	return sat && len(g.satisfied) == 1
}

// IsSatisfiedOnOtherVariable reports whether group is satisfied on at
// least one variable other than the given one.
// Complexity: O(1).
func (t *Tracker) IsSatisfiedOnOtherVariable(name, variable string) bool {
	g, ok := t.groups[name]
	if !ok {
		return false
	}
	if _, sat := g.satisfied[variable]; sat {
		return len(g.satisfied) > 1
	}

	return len(g.satisfied) > 0
}

// FirstSatisfiedVariable returns a variable on which group is satisfied,
// skipping except (pass "" to skip none). For determinism the
// lexicographically smallest eligible variable is chosen.
// Complexity: O(k) for k satisfied variables.
func (t *Tracker) FirstSatisfiedVariable(name, except string) (string, bool) {
	g, ok := t.groups[name]
	if !ok {
		return "", false
	}
	best, found := "", false
	for v := range g.satisfied {
		if v == except {
			continue
		}
		if !found || v < best {
			best, found = v, true
		}
	}

	return best, found
}

// ------------------------------------------------------------------------
// Reconciliation.
// ------------------------------------------------------------------------

// UpdateVariableSatisfaction asks the ConstraintSource for variable's
// per-group verdicts at value (stable optionally carries a
// stability-preference value) and reconciles every affected group's
// sets and the journal.
//
// Transition bookkeeping:
//   - violated→satisfied moves the variable between the sets; if the
//     group thereby first becomes satisfied, the journal records the
//     prior status (it WAS violated before this batch).
//   - satisfied→violated is the mirror.
//   - same-state updates that change only the tightness code or target
//     still journal the pair exactly once per batch (first value wins).
//
// Complexity: O(G log G) for G reported groups, plus journal work.
func (t *Tracker) UpdateVariableSatisfaction(variable string, value float64, stable *float64) {
	verdicts := t.source.GroupSatisfaction(variable, value, stable)
	if len(verdicts) == 0 {
		return
	}

	// Deterministic processing order regardless of map layout.
	names := make([]string, 0, len(verdicts))
	for name := range verdicts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t.applyVerdict(name, variable, verdicts[name])
	}
}

// applyVerdict reconciles one group's verdict on one variable.
func (t *Tracker) applyVerdict(name, variable string, verdict Satisfaction) {
	// Journal BEFORE mutating: both writers capture start-of-batch
	// state and are write-once, so repeats within a batch are free.
	t.AddVariableChange(name, variable)
	priorStatus := t.GroupStatus(name)

	g, ok := t.groups[name]
	if !ok {
		g = &group{
			satisfied: make(map[string]Tightness),
			violated:  make(map[string]float64),
		}
		t.groups[name] = g
	}

	if verdict.Satisfied {
		delete(g.violated, variable)
		g.satisfied[variable] = verdict.Tightness
	} else {
		delete(g.satisfied, variable)
		g.violated[variable] = verdict.Target
	}

	if t.GroupStatus(name) != priorStatus {
		t.changeStatus(name, priorStatus)
	}
}

// changeStatus journals a derived-status flip, write-once per batch.
func (t *Tracker) changeStatus(name string, prior Status) {
	if _, done := t.changes.Statuses[name]; done {
		return
	}
	t.changes.Statuses[name] = prior
}

// RemoveVariableFromGroup drops variable's record from whichever set of
// group holds it, journaling the pair and any status flip. A group left
// with zero satisfied and zero violated entries is deleted from the
// table (its status becomes unknown).
//
// Returns false (no-op) when the pair has no record.
// Complexity: O(1) plus journal work.
func (t *Tracker) RemoveVariableFromGroup(variable, name string) bool {
	g, ok := t.groups[name]
	if !ok {
		return false
	}
	_, sat := g.satisfied[variable]
	_, viol := g.violated[variable]
	if !sat && !viol {
		return false
	}

	t.AddVariableChange(name, variable)
	priorStatus := t.GroupStatus(name)

	delete(g.satisfied, variable)
	delete(g.violated, variable)
	if len(g.satisfied) == 0 && len(g.violated) == 0 {
		delete(t.groups, name)
	}

	if t.GroupStatus(name) != priorStatus {
		t.changeStatus(name, priorStatus)
	}

	return true
}

// RefreshModifiedGroups pulls the ConstraintSource's two pending-change
// lists — memberships removed from groups and group priority changes —
// applies the removals, journals the priority changes, then tells the
// source to clear its lists.
// Complexity: O(removals + priority changes).
func (t *Tracker) RefreshModifiedGroups() {
	for _, gv := range t.source.RemovedGroupVariables() {
		t.RemoveVariableFromGroup(gv.Variable, gv.Group)
	}
	for _, pc := range t.source.PriorityChanges() {
		t.AddPriorityChange(pc.Group, pc.Prior)
	}
	t.source.ClearPendingChanges()
}
