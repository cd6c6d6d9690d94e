package optype

import (
	"fmt"

	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ScriptType is a junction over one or more in-edges whose firing condition
// is a compiled expr-lang expression rather than a fixed relational
// operator. In-edge values (parent order) are bound as a0, a1, ... A truthy
// or non-zero result produces VALUE(args[0]), mirroring the relational
// operators' convention of passing the first argument through on success; a
// falsy result produces DIE.
//
// Unlike the built-in operators, Script's "parameter" is the expression
// source itself, bound once at construction rather than through the
// Integer-valued Parameterizable protocol — there is no unparameterized
// form to reject at graph-construction time.
type ScriptType struct {
	source  string
	program *vm.Program
}

// NewScript compiles source once and binds it to a ScriptType. Compilation
// errors surface immediately, at registration time, rather than on first
// execution.
func NewScript(source string) (ScriptType, error) {
	program, err := expr.Compile(source)
	if err != nil {
		return ScriptType{}, err
	}
	return ScriptType{source: source, program: program}, nil
}

func (t ScriptType) Name() string { return "Script(" + t.source + ")" }

// JunctionRange: at least one parent, unbounded — the same shape as the
// arithmetic operators.
func (ScriptType) JunctionRange() (min, max int) { return 1, -1 }

func (t ScriptType) Execute(args []bignum.Integer, _ types.Runner) (types.Outcome, error) {
	if len(args) < 1 {
		return types.Outcome{}, ErrTooFewArgs
	}

	env := make(map[string]interface{}, len(args))
	for i, a := range args {
		n, ok := a.Int()
		if !ok {
			return types.Outcome{}, ErrScriptValueOutOfRange
		}
		env[fmt.Sprintf("a%d", i)] = n
	}

	out, err := expr.Run(t.program, env)
	if err != nil {
		return types.Outcome{}, err
	}

	truthy, err := scriptTruthy(out)
	if err != nil {
		return types.Outcome{}, err
	}
	if !truthy {
		return types.DieOutcome(), nil
	}
	return types.ValueOutcome(args[0]), nil
}

func scriptTruthy(v interface{}) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int:
		return x != 0, nil
	case float64:
		return x != 0, nil
	default:
		return false, ErrScriptNonBooleanResult
	}
}
