package optype

import (
	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// DieType terminates the entire enclosing GraphInstance: DIE_ALL.
type DieType struct{}

// Die is the shared stateless Die instance.
var Die = DieType{}

func (DieType) Name() string { return "Die" }

func (DieType) Execute(_ []bignum.Integer, _ types.Runner) (types.Outcome, error) {
	return types.DieAllOutcome(), nil
}
