// Package optype implements the built-in NodeType algebra: the fixed set of
// operator variants a Directed graph is built from (§4.2 of the language
// spec). Each variant is a small immutable value implementing
// types.Variant, plus the optional types.JunctionType and
// types.ParameterizableType capabilities.
//
// This mirrors the teacher's Strategy Pattern (one small file per node type,
// dispatched through a registry) but the "registry" here is a name-to-type
// lookup for compile-time graph construction (see pkg/registry), not a
// per-execution dispatch table: each Node already carries its own bound
// Variant value, and Executor just calls its Execute method directly.
package optype
