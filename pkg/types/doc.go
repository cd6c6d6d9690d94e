// Package types provides the shared data model for the Directed graph
// execution engine: source positions, the NodeType algebra's interfaces
// (Variant, and the optional Junction and Parameterizable capabilities), and
// the Node/Graph arena that the surface-syntax parser (an external
// collaborator, out of scope for this module) is assumed to populate.
//
// # Key Components
//
// NodeType algebra: Variant is the single interface every node type
// implements; JunctionType and ParameterizableType are optional capabilities
// a Variant may additionally satisfy.
//
// Graph structure: Node and Graph form a node arena addressed by index
// rather than direct pointers, which represents the cyclic parent/child
// topology described by the language spec without a reference cycle at the
// Go type level.
//
// # Design Principles
//
//   - Minimal dependencies: this package depends only on bignum.
//   - Concrete built-in variants (Nop, Return, the arithmetic operators, ...)
//     live in the sibling optype package, which imports types rather than
//     the reverse — this is what lets a sub-graph variant hold a *Graph
//     handle directly without a cycle.
package types
