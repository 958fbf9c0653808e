// Package orgroup: the change journal. Every writer is write-once per
// flush cycle: the first call for a key records the value as of the
// start of the batch, later calls in the same batch are no-ops. A
// consumer reading the journal after a batch therefore sees exactly the
// net transition, however noisy the batch was.
package orgroup

// VariableChange records one (group, variable) record's state at the
// start of the batch. Existed is false when the pair had no record yet
// (Prior is then meaningless).
type VariableChange struct {
	Prior   Satisfaction
	Existed bool
}

// Changes is the journal accumulated since the last ClearChanges.
type Changes struct {
	// Variables: prior per-(group, variable) records.
	Variables map[GroupVariable]VariableChange

	// Statuses: prior per-group overall status.
	Statuses map[string]Status

	// Priorities: prior per-group priority.
	Priorities map[string]float64
}

func newChanges() *Changes {
	return &Changes{
		Variables:  make(map[GroupVariable]VariableChange),
		Statuses:   make(map[string]Status),
		Priorities: make(map[string]float64),
	}
}

// Changes exposes the journal for consumption after a batch.
func (t *Tracker) Changes() *Changes { return t.changes }

// ClearChanges discards the journal; the consumer calls this after
// processing a batch (skipping it conflates two batches' changes).
// Complexity: O(1).
func (t *Tracker) ClearChanges() { t.changes = newChanges() }

// AddVariableChange journals the current record of (group, variable),
// write-once: only the first call per batch stores anything.
// Called internally before every mutation of the pair; exposed for
// consumers that mirror Tracker state on their own.
func (t *Tracker) AddVariableChange(group, variable string) {
	key := GroupVariable{Group: group, Variable: variable}
	if _, done := t.changes.Variables[key]; done {
		return
	}
	sat, ok := t.GroupSatisfaction(group, variable)
	t.changes.Variables[key] = VariableChange{Prior: sat, Existed: ok}
}

// AddStatusChange journals the current overall status of group,
// write-once per batch.
func (t *Tracker) AddStatusChange(group string) {
	if _, done := t.changes.Statuses[group]; done {
		return
	}
	t.changes.Statuses[group] = t.GroupStatus(group)
}

// AddPriorityChange journals the prior priority of group, write-once
// per batch. The Tracker does not store priorities itself; the prior
// value travels with the source's PriorityChange report.
func (t *Tracker) AddPriorityChange(group string, prior float64) {
	if _, done := t.changes.Priorities[group]; done {
		return
	}
	t.changes.Priorities[group] = prior
}
