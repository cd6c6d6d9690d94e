package optype

import (
	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// Op identifies one of the fixed arithmetic/bitwise operators.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpXor
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	default:
		return "?"
	}
}

// OperatorType left-folds an arithmetic or bitwise operator across its
// runtime args followed by its bound parameters, in arrival order: a
// junction over at least one parent (unbounded arity), optionally
// parameterized with zero or more trailing constants.
type OperatorType struct {
	op     Op
	params []bignum.Integer
}

// NewOperator builds an unparameterized OperatorType for op.
func NewOperator(op Op) OperatorType {
	return OperatorType{op: op}
}

func (t OperatorType) Name() string { return t.op.String() }

// JunctionRange: at least one parent, unbounded.
func (OperatorType) JunctionRange() (min, max int) { return 1, -1 }

// ParamRange: any number of bound constants, unbounded.
func (OperatorType) ParamRange() (min, max int) { return 0, -1 }

func (t OperatorType) Parameterize(params []bignum.Integer) (types.Variant, error) {
	bound := make([]bignum.Integer, len(params))
	copy(bound, params)
	return OperatorType{op: t.op, params: bound}, nil
}

func (t OperatorType) Execute(args []bignum.Integer, _ types.Runner) (types.Outcome, error) {
	all := make([]bignum.Integer, 0, len(args)+len(t.params))
	all = append(all, args...)
	all = append(all, t.params...)
	if len(all) < 1 {
		return types.Outcome{}, ErrTooFewArgs
	}
	acc := all[0]
	for _, v := range all[1:] {
		var err error
		switch t.op {
		case OpAdd:
			acc = acc.Add(v)
		case OpSub:
			acc = acc.Sub(v)
		case OpMul:
			acc = acc.Mul(v)
		case OpDiv:
			acc, err = acc.Div(v)
		case OpMod:
			acc, err = acc.Mod(v)
		case OpAnd:
			acc = acc.And(v)
		case OpOr:
			acc = acc.Or(v)
		case OpXor:
			acc = acc.Xor(v)
		default:
			return types.Outcome{}, ErrUnknownOperator
		}
		if err != nil {
			return types.Outcome{}, err
		}
	}
	return types.ValueOutcome(acc), nil
}
