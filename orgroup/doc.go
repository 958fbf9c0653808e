// Package orgroup tracks the satisfaction state of disjunctive ("or")
// constraint groups: a group is satisfied overall iff it is satisfied
// on at least one of the variables it touches.
//
// A resistance calculator sitting above this package asks, for every
// candidate move of a variable, whether the move would leave some group
// unsatisfied everywhere else — that is what the per-variable
// satisfaction bookkeeping and the convenience predicates
// (SatisfiedOnVariableOnly, IsSatisfiedOnOtherVariable, ...) answer
// without rescanning constraints.
//
// For each group the Tracker keeps:
//
//   - the variables on which the group is currently satisfied, each
//     tagged with a four-valued Tightness code (whether the min and/or
//     max bound is exactly met, i.e. has no slack),
//   - the variables on which it is violated, each tagged with the
//     numeric move-to-satisfy target,
//   - derived per-group counts and the overall Status.
//
// The Tracker does not evaluate constraints itself: an external
// ConstraintSource reports, for a variable at a value, the per-group
// satisfaction. UpdateVariableSatisfaction reconciles that report into
// the tables; RefreshModifiedGroups pulls the source's own pending
// membership/priority changes.
//
// Every mutation is journaled with first-write-wins semantics: within
// one batch (between ClearChanges calls) the journal always holds the
// state as of the START of the batch, however many times the same
// (group, variable) or group is touched — so a consumer reads exact net
// deltas without snapshotting.
//
// Lookups on unknown groups/variables answer with sentinels
// (StatusUnknown, ok=false), never errors. Single-threaded by contract.
package orgroup
