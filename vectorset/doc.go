// Package vectorset implements a sparse collection of named vectors —
// the arithmetic substrate on which a constraint solver represents its
// constraint rows and solution vectors.
//
// A vector is a sparse mapping from component name (an opaque string,
// typically a layout variable) to a nonzero weight; a vector with no
// entries is the zero vector. Vectors live inside a Set under opaque,
// monotonically generated IDs. Exactly-zero weights are never stored:
// any operation that drives a component to zero removes the entry from
// the vector AND from the Set's global component index, so explicit and
// implicit zeros are indistinguishable.
//
// Three incremental facilities ride on top of the arithmetic:
//
//   - Component index — for every component held by at least one live
//     vector, the set of vectors holding it. Created lazily on the first
//     nonzero write, torn down with the last. Backed by an ordered map,
//     so Components and one-pass operations iterate in sorted order.
//   - Component-change journal — which names entered or left the index
//     since the last flush. An add that cancels a pending remove (or
//     vice versa) nets to nothing, so a consumer reading the journal
//     after a batch sees exactly the net transition.
//   - Inner-product observers — registered collaborators notified of
//     every mutation (with the delta actually applied) so they can
//     maintain dual-space aggregates without rescanning; bulk
//     operations emit a single recomputation call instead of one
//     notification per component. ProductTable is the package's
//     concrete observer.
//
// Additions snap to exact zero when the result's ratio to the applied
// delta falls below a configurable threshold (WithZeroRounding) —
// a guard against floating-point noise surviving a cancellation, and a
// tunable policy rather than a hard guarantee.
//
// Operations addressing an unknown vector ID or component are silent
// no-ops answering with ok=false / 0: these are hot solver-tick paths,
// and consumers keep their own indices of what exists.
//
// A Set is single-threaded by contract (one solver tick at a time);
// there is no internal locking.
package vectorset
