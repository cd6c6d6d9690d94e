package types

import (
	"fmt"

	"github.com/dgraph-esolang/directed/pkg/bignum"
)

// ============================================================================
// Source Positions
// ============================================================================

// Position identifies a location in a source unit, for diagnostics. The
// parser (out of scope for this module) is assumed to attach one to every
// node and edge it produces.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// String renders the position as "filename:line:column", the prefix every
// diagnostic line in the language's error contract begins with.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// ============================================================================
// Outcome
// ============================================================================

// OutcomeKind tags the result of executing a node.
type OutcomeKind int

const (
	// Value produces a new accumulator and lets the executor continue.
	Value OutcomeKind = iota
	// Return ends the enclosing GraphInstance with a result.
	Return
	// Die removes only the executor that produced this outcome.
	Die
	// DieAll removes every executor in the enclosing GraphInstance.
	DieAll
)

func (k OutcomeKind) String() string {
	switch k {
	case Value:
		return "VALUE"
	case Return:
		return "RETURN"
	case Die:
		return "DIE"
	case DieAll:
		return "DIE_ALL"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the tagged result of Variant.Execute. Only VALUE and RETURN
// carry a value; DIE and DIE_ALL ignore it.
type Outcome struct {
	Kind  OutcomeKind
	Value bignum.Integer
}

// ValueOutcome builds a VALUE(v) outcome.
func ValueOutcome(v bignum.Integer) Outcome { return Outcome{Kind: Value, Value: v} }

// ReturnOutcome builds a RETURN(v) outcome.
func ReturnOutcome(v bignum.Integer) Outcome { return Outcome{Kind: Return, Value: v} }

// DieOutcome builds a DIE outcome.
func DieOutcome() Outcome { return Outcome{Kind: Die} }

// DieAllOutcome builds a DIE_ALL outcome.
func DieAllOutcome() Outcome { return Outcome{Kind: DieAll} }

// ============================================================================
// NodeType algebra
// ============================================================================

// Runner lets a Variant invoke a nested sub-graph synchronously. The engine
// package's GraphInstance implements Runner so a GraphNode variant can run
// its sub-graph to completion — sharing the outer instance's observer and
// logger — without this package needing to depend on the engine.
type Runner interface {
	// RunGraph instantiates g with the given inputs and runs it to
	// completion, translating its result into this node's Outcome: a
	// RETURN from the inner graph becomes VALUE here; dying with no
	// return becomes DIE.
	RunGraph(g *Graph, inputs []bignum.Integer) (Outcome, error)
}

// Variant is the behavior every node type implements: given the ordered
// arguments arriving on its in-edges (plus any bound parameters, which an
// implementation combines with them itself: operators and relations append
// them after the arguments, a sub-graph node puts them first) and a Runner for the rare variant that
// invokes a sub-graph, produce an Outcome.
type Variant interface {
	// Execute runs this node type against the given arguments. Most
	// variants ignore run; only a sub-graph invocation uses it.
	Execute(args []bignum.Integer, run Runner) (Outcome, error)

	// Name identifies the variant for diagnostics and debug tracing.
	Name() string
}

// JunctionType is the optional capability a Variant implements when nodes of
// that type must synchronize multiple in-edges before firing. JunctionRange
// returns the inclusive minimum and inclusive maximum count of parents the
// type accepts; max < 0 means unbounded.
type JunctionType interface {
	Variant
	JunctionRange() (min, max int)
}

// ParameterizableType is the optional capability a Variant implements when it
// can be bound to extra compile-time parameters, producing a new Variant
// that captures them.
type ParameterizableType interface {
	Variant
	ParamRange() (min, max int)
	Parameterize(params []bignum.Integer) (Variant, error)
}

// IsJunction reports whether v is a JunctionType and, if so, its range.
func IsJunction(v Variant) (r JunctionType, ok bool) {
	r, ok = v.(JunctionType)
	return r, ok
}

// IsParameterizable reports whether v is a ParameterizableType and, if so,
// its parameter range.
func IsParameterizable(v Variant) (p ParameterizableType, ok bool) {
	p, ok = v.(ParameterizableType)
	return p, ok
}
