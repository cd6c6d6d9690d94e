package optype

import (
	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// NopType passes its single input through unchanged: VALUE(args[0]).
type NopType struct{}

// Nop is the shared stateless Nop instance; sharing is permitted, not
// required, since the variant carries no parameters.
var Nop = NopType{}

func (NopType) Name() string { return "Nop" }

func (NopType) Execute(args []bignum.Integer, _ types.Runner) (types.Outcome, error) {
	if len(args) < 1 {
		return types.Outcome{}, ErrTooFewArgs
	}
	return types.ValueOutcome(args[0]), nil
}
