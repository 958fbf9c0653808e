// Package edgetable implements a reference-counted registry of labeled
// edges: canonical identities for unordered pairs of opaque labels.
//
// A constraint solver names the segment between two positions ("box3;
// left" to "box7;right") from either side; edgetable guarantees both
// sides resolve to the same edge. Each edge records:
//
//   - its two labels in canonical order (the order of first creation),
//   - an identity (deterministic label concatenation, or a fast numeric
//     counter — a construction-time strategy, see IDMode),
//   - an optional payload per direction,
//   - a reference count governing its lifetime.
//
// Lookups are symmetric: GetEdge(a, b) and GetEdge(b, a) find the same
// edge, and the result's Dir flag (+1/−1) reports whether the query
// matched the canonical order. An edge lives until a release call drives
// its reference count to zero, at which point it is purged atomically
// from all three internal maps; a later add creates a fresh instance
// (sharing the old identity only under IDModeLabels).
//
// The allocate/release protocol relies on caller pairing discipline.
// Allocate returns an owning Handle whose Release is idempotent, turning
// that discipline into structure; the raw AllocateEdge/ReleaseEdge pair
// remains for consumers that track counts themselves.
//
// All lookups on absent edges answer with ok=false sentinels, never
// errors: these are hot solver-tick paths, and an absent edge means
// "nothing to do".
package edgetable
