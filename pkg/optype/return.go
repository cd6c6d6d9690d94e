package optype

import (
	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// ReturnType ends the enclosing GraphInstance with its single input:
// RETURN(args[0]).
type ReturnType struct{}

// ReturnNode is the shared stateless Return instance.
var ReturnNode = ReturnType{}

func (ReturnType) Name() string { return "Return" }

func (ReturnType) Execute(args []bignum.Integer, _ types.Runner) (types.Outcome, error) {
	if len(args) < 1 {
		return types.Outcome{}, ErrTooFewArgs
	}
	return types.ReturnOutcome(args[0]), nil
}
