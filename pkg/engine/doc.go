// Package engine implements the scheduler: Executor, JunctionRegistry, and
// GraphInstance. It is the component that actually runs a types.Graph —
// pkg/graph only validates static structure; this package owns the dynamic,
// step-by-step execution of that structure.
//
// GraphInstance implements types.Runner, so a GraphNode variant in pkg/optype
// can invoke a sub-graph synchronously without pkg/optype importing this
// package: GraphNode takes a types.Runner parameter at Execute time, and the
// concrete Runner handed to it is always a *GraphInstance.
package engine
