package optype

import (
	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// GraphNodeType invokes a user-defined sub-graph as a node: a graph with N
// parameters and M declared arguments (G.nargs) is a junction over exactly M
// parents when M > 1, and a plain single-parent node when M is 0 or 1 — the
// JunctionRange below expresses that rule purely through its returned
// bounds, with no conditional branching needed anywhere else.
type GraphNodeType struct {
	g      *types.Graph
	params []bignum.Integer
}

// NewGraphNode binds an unparameterized reference to g.
func NewGraphNode(g *types.Graph) GraphNodeType {
	return GraphNodeType{g: g}
}

func (t GraphNodeType) Name() string { return t.g.Name }

// ParamRange: exactly the sub-graph's declared parameter count.
func (t GraphNodeType) ParamRange() (min, max int) { return t.g.NParameters, t.g.NParameters }

func (t GraphNodeType) Parameterize(params []bignum.Integer) (types.Variant, error) {
	if len(params) != t.g.NParameters {
		return nil, ErrWrongParamCount
	}
	bound := make([]bignum.Integer, len(params))
	copy(bound, params)
	return GraphNodeType{g: t.g, params: bound}, nil
}

// JunctionRange: a single parent when the sub-graph takes 0 or 1 runtime
// arguments, or exactly G.nargs parents when it takes more than one.
func (t GraphNodeType) JunctionRange() (min, max int) {
	if t.g.NArgs <= 1 {
		return 1, 1
	}
	return t.g.NArgs, t.g.NArgs
}

// Execute instantiates the sub-graph with this node's bound parameters
// followed by the in-edge arguments it declares, and runs it to completion
// via run. args is sliced to NArgs so a 0-arg sub-graph ignores the single
// incoming accumulator its non-junction parent edge still carries.
func (t GraphNodeType) Execute(args []bignum.Integer, run types.Runner) (types.Outcome, error) {
	n := t.g.NArgs
	if len(args) < n {
		return types.Outcome{}, ErrTooFewArgs
	}
	inputs := make([]bignum.Integer, 0, len(t.params)+n)
	inputs = append(inputs, t.params...)
	inputs = append(inputs, args[:n]...)
	return run.RunGraph(t.g, inputs)
}
