package optype

import (
	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// LiteralType ignores its input entirely and always produces the same
// constant: VALUE(k). It takes no parents in a well-formed graph, but
// Execute tolerates being called with zero args since Literal nodes are
// seeded directly by the scheduler.
type LiteralType struct {
	k bignum.Integer
}

// NewLiteral binds a Literal node type to the constant k.
func NewLiteral(k bignum.Integer) LiteralType {
	return LiteralType{k: k}
}

func (LiteralType) Name() string { return "Literal" }

func (l LiteralType) Value() bignum.Integer { return l.k }

func (l LiteralType) Execute(_ []bignum.Integer, _ types.Runner) (types.Outcome, error) {
	return types.ValueOutcome(l.k), nil
}
