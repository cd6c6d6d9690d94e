package optype

import (
	"io"

	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// OutType writes the low byte of its input (value mod 256) to an injected
// writer and passes the input through unchanged: VALUE(args[0]).
//
// Flushing to the host's actual stdout is the GraphInstance's job at the end
// of a step (§5); OutType itself only ever writes to the io.Writer it was
// built with, which lets tests and nested sub-graph runs redirect output.
type OutType struct {
	w io.Writer
}

// NewOut binds Out to the given writer. Passing nil discards all output.
func NewOut(w io.Writer) OutType {
	if w == nil {
		w = io.Discard
	}
	return OutType{w: w}
}

func (OutType) Name() string { return "Out" }

func (o OutType) Execute(args []bignum.Integer, _ types.Runner) (types.Outcome, error) {
	if len(args) < 1 {
		return types.Outcome{}, ErrTooFewArgs
	}
	if _, err := o.w.Write([]byte{args[0].Byte()}); err != nil {
		return types.Outcome{}, err
	}
	return types.ValueOutcome(args[0]), nil
}
