// Package orgroup: core types — tightness codes, group status, the
// Satisfaction record and the external ConstraintSource contract.
package orgroup

// Tightness is the four-valued code tagging a satisfied constraint:
// whether its min and/or max bound is exactly met (no slack). The
// bracket notation mirrors interval notation — '[' / ']' mark an
// exactly-met bound, '(' / ')' a bound with slack.
type Tightness string

const (
	// TightnessNone: neither bound exactly met.
	TightnessNone Tightness = "()"

	// TightnessMin: the min bound is exactly met.
	TightnessMin Tightness = "[)"

	// TightnessMax: the max bound is exactly met.
	TightnessMax Tightness = "(]"

	// TightnessBoth: both bounds exactly met (no slack at all).
	TightnessBoth Tightness = "[]"
)

// Status is a group's overall state: satisfied iff the group is
// satisfied on at least one variable, violated iff it is known but
// satisfied on none, unknown iff the Tracker has no record of it.
type Status int

const (
	// StatusUnknown: the group is not present in the Tracker.
	StatusUnknown Status = iota

	// StatusSatisfied: satisfied on ≥ 1 variable.
	StatusSatisfied

	// StatusViolated: known, but satisfied on no variable.
	StatusViolated
)

// String implements fmt.Stringer for readable logs and test failures.
func (st Status) String() string {
	switch st {
	case StatusSatisfied:
		return "satisfied"
	case StatusViolated:
		return "violated"
	default:
		return "unknown"
	}
}

// Satisfaction is one group's verdict on one variable: either satisfied
// with a Tightness code, or violated with the numeric target the
// variable would have to move to in order to satisfy the group.
type Satisfaction struct {
	Satisfied bool
	Tightness Tightness // valid when Satisfied
	Target    float64   // valid when !Satisfied
}

// Satisfied builds a satisfied verdict with the given tightness.
func Satisfied(t Tightness) Satisfaction {
	return Satisfaction{Satisfied: true, Tightness: t}
}

// Violated builds a violated verdict with the given move-to-satisfy
// target.
func Violated(target float64) Satisfaction {
	return Satisfaction{Target: target}
}

// GroupVariable names one (group, variable) membership.
type GroupVariable struct {
	Group    string
	Variable string
}

// PriorityChange reports that a group's priority changed, carrying the
// prior and current values.
type PriorityChange struct {
	Group          string
	Prior, Current float64
}

// ConstraintSource is the external collaborator that evaluates the
// actual disjunctive constraints. The Tracker never interprets
// constraint expressions; it only reconciles the source's verdicts.
type ConstraintSource interface {
	// GroupSatisfaction reports, per group touching variable, the
	// verdict at the given value. stable optionally carries a
	// stability-preference value (nil = absent) and is passed through
	// untouched.
	GroupSatisfaction(variable string, value float64, stable *float64) map[string]Satisfaction

	// RemovedGroupVariables lists memberships dropped since the last
	// refresh; the Tracker applies them via RemoveVariableFromGroup.
	RemovedGroupVariables() []GroupVariable

	// PriorityChanges lists group priority changes since the last
	// refresh; the Tracker journals them.
	PriorityChanges() []PriorityChange

	// ClearPendingChanges discards the source's two pending-change
	// lists once the Tracker has consumed them.
	ClearPendingChanges()
}
