// Package poset implements finite partially ordered sets given by their
// cover relation (the Hasse diagram).
//
// What:
//
//   - New: universe + upper-cover lists, validated (range, self-cover,
//     acyclicity, irredundancy) in one synchronous pass.
//   - FromFilters / FromLeq: alternate factories; covers are derived as the
//     minimal elements of every strict principal filter.
//   - Order queries: Leq, Less, Comparable, UpSet, DownSet, Interval,
//     UpperBounds, LowerBounds, MinimalIn, LeastIn, ...
//   - Structure: UpperCovers, LowerCovers, Edges, Minimal, Maximal,
//     Bottom, Top, TopologicalOrder.
//
// Closure strategy:
//
//	Len() <= threshold  → one bit-matrix closure (Warshall), built on first query
//	Len() >  threshold  → per-element BFS rows, memoized (singleflight)
//
// The threshold defaults to DefaultClosureThreshold and is set with
// WithClosureThreshold. Both strategies answer identically.
//
// Concurrency:
//
// A *Poset is immutable after construction. All methods are safe for
// concurrent use; lazily derived data is published exactly once.
//
// Errors:
//
//   - ErrConstruction     any failed construction, plus one cause below
//   - ErrShape, ErrCoverOutOfRange, ErrSelfCover, ErrCycle,
//     ErrRedundantCover, ErrNotTransitive, ErrInvalidOption, ErrNilPredicate
//   - core.ErrIndexOutOfRange  query with an invalid index
package poset
