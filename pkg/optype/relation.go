package optype

import (
	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// Rel identifies one of the fixed relational operators.
type Rel int

const (
	RelEq Rel = iota
	RelNe
	RelLt
	RelLe
	RelGt
	RelGe
)

func (r Rel) String() string {
	switch r {
	case RelEq:
		return "="
	case RelNe:
		return "!="
	case RelLt:
		return "<"
	case RelLe:
		return "<="
	case RelGt:
		return ">"
	case RelGe:
		return ">="
	default:
		return "?"
	}
}

func (r Rel) holds(a, b bignum.Integer) bool {
	switch r {
	case RelEq:
		return a.Eq(b)
	case RelNe:
		return a.Ne(b)
	case RelLt:
		return a.Lt(b)
	case RelLe:
		return a.Le(b)
	case RelGt:
		return a.Gt(b)
	case RelGe:
		return a.Ge(b)
	default:
		return false
	}
}

// RelationType checks its relational operator pairwise, in order, across
// its runtime args followed by its bound parameters. If every consecutive
// pair satisfies the relation it produces VALUE(args[0]); otherwise the
// executor dies (DIE, not DIE_ALL).
type RelationType struct {
	rel    Rel
	params []bignum.Integer
}

// NewRelation builds an unparameterized RelationType for rel.
func NewRelation(rel Rel) RelationType {
	return RelationType{rel: rel}
}

func (t RelationType) Name() string { return t.rel.String() }

func (RelationType) JunctionRange() (min, max int) { return 1, -1 }

func (RelationType) ParamRange() (min, max int) { return 0, -1 }

func (t RelationType) Parameterize(params []bignum.Integer) (types.Variant, error) {
	bound := make([]bignum.Integer, len(params))
	copy(bound, params)
	return RelationType{rel: t.rel, params: bound}, nil
}

func (t RelationType) Execute(args []bignum.Integer, _ types.Runner) (types.Outcome, error) {
	if len(args) < 1 {
		return types.Outcome{}, ErrTooFewArgs
	}
	all := make([]bignum.Integer, 0, len(args)+len(t.params))
	all = append(all, args...)
	all = append(all, t.params...)
	for i := 1; i < len(all); i++ {
		if !t.rel.holds(all[i-1], all[i]) {
			return types.DieOutcome(), nil
		}
	}
	return types.ValueOutcome(args[0]), nil
}
