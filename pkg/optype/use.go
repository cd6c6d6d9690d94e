package optype

import (
	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// UseType selects one of its inputs by a fixed index bound at
// parameterization time: Use(i) is a junction over i+1 parents
// (unbounded above) and produces VALUE(args[i]).
//
// The unparameterized form cannot execute: a graph that references bare
// Use without parameterizing it first is malformed, per the language's
// requirement that every Use be given exactly one selector parameter.
type UseType struct {
	parameterized bool
	index         int
}

// Use is the shared stateless, unparameterized Use instance.
var Use = UseType{}

func (UseType) Name() string { return "Use" }

// ParamRange: exactly one selector index.
func (UseType) ParamRange() (min, max int) { return 1, 1 }

func (t UseType) Parameterize(params []bignum.Integer) (types.Variant, error) {
	if len(params) != 1 {
		return nil, ErrWrongParamCount
	}
	idx, ok := params[0].Int()
	if !ok || idx < 0 {
		return nil, ErrParamNotSelector
	}
	return UseType{parameterized: true, index: idx}, nil
}

// JunctionRange requires at least index+1 parents once parameterized; the
// unparameterized form reports a range of 0 since it can never legally
// execute and thus never needs to synchronize.
func (t UseType) JunctionRange() (min, max int) {
	if !t.parameterized {
		return 0, 0
	}
	return t.index + 1, -1
}

func (t UseType) Execute(args []bignum.Integer, _ types.Runner) (types.Outcome, error) {
	if !t.parameterized {
		return types.Outcome{}, ErrUnparameterizedUse
	}
	if len(args) <= t.index {
		return types.Outcome{}, ErrTooFewArgs
	}
	return types.ValueOutcome(args[t.index]), nil
}
