// Package solvecore is the incremental bookkeeping substrate for a
// linear-constraint layout solver: sparse vectors, labeled edges,
// disjunctive-constraint tracking and a double-ended priority queue.
//
// 🚀 What is solvecore?
//
//	A small, deterministic, single-threaded library that brings together
//	the four data structures an incremental constraint solver reads and
//	writes on every tick:
//		• vectorset — sparse named vectors with a live component index,
//		  change journaling and pluggable inner-product observers
//		• edgetable — a reference-counted, direction-aware registry of
//		  label pairs with symmetric lookup
//		• orgroup   — satisfaction tracking for disjunctive ("or")
//		  constraint groups, with a first-write-wins change journal
//		• mmheap    — a min-max heap: cheap access to both extrema of
//		  one priority queue
//
// ✨ Why choose solvecore?
//
//   - Incremental by construction – every mutation is reflected to
//     registered observers and journals; consumers never rescan
//   - Deterministic – sorted accessors, stable iteration, no global state
//   - Hot-path friendly – absent IDs and empty heaps answer with
//     sentinels, never panics on the lookup path
//   - Pure Go – no cgo, a minimal dependency surface
//
// The solver iteration loop, the constraint compiler and all rendering
// sit above this module and are deliberately not part of it: solvecore
// only promises that the numbers it keeps are exact, current and cheap
// to observe.
//
// Quick ASCII example (one solver tick):
//
//	constraints ──▶ vectorset (rows) ──▶ inner-product observers
//	      │               │
//	      ▼               ▼
//	 edgetable      orgroup journal ──▶ resistance calculator
//	      │                                   │
//	      └────────▶ mmheap ◀─────────────────┘
//	           (pick the next variable: most- or least-urgent)
//
// Under the hood, everything is organized under four subpackages:
//
//	vectorset/ — sparse vector arithmetic & global component index
//	edgetable/ — canonical, ref-counted label-pair registry
//	orgroup/   — or-group satisfaction tracker & change journal
//	mmheap/    — double-ended (min-max) priority heap
//
//	go get github.com/katvale/solvecore
package solvecore
