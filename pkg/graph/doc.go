// Package graph validates a types.Graph's structural invariants before it
// is handed to a GraphInstance: edge indices in range, parent/child
// topology symmetry, and junction arity ranges. Input-node bookkeeping is
// not checked.
//
// Unlike the teacher's graph package, this one performs no topological
// sort or cycle detection — Directed graphs are allowed, and expected, to
// be cyclic. What a DAG-oriented engine would call "dependency order" has
// no analogue here; scheduling order is defined by the executor model in
// pkg/engine, not by a precomputed node ordering.
package graph
