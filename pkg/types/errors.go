package types

import "errors"

// Sentinel errors for the graph data model. Load-time errors are wrapped
// with a *PositionError so diagnostics can report filename:line:column.
var (
	ErrNotJunction           = errors.New("node type is not a junction")
	ErrNotParameterizable    = errors.New("node type does not accept parameters")
	ErrArityOutOfRange       = errors.New("in-edge count outside junction's declared range")
	ErrParamCountOutOfRange  = errors.New("parameter count outside type's declared range")
	ErrUnparameterizedUse    = errors.New("type requires parameters before it can be used")
	ErrAsymmetricTopology    = errors.New("parent/child edge is not mirrored on both endpoints")
	ErrMissingMain           = errors.New("compilation unit has no graph named Main")
	ErrMainHasParameters     = errors.New("Main must take zero parameters")
	ErrMainTooManyArguments  = errors.New("Main must take zero or one argument")
	ErrRedeclaredType        = errors.New("type name declared twice in unit")
	ErrUndefinedType         = errors.New("node references an undeclared type")
	ErrCyclicImport          = errors.New("import chain revisits a compilation unit")
)

// PositionError pairs a load-time error with the source position that
// triggered it, per the diagnostic contract: filename:line:column: message.
type PositionError struct {
	Pos Position
	Err error
}

func (e *PositionError) Error() string {
	return e.Pos.String() + ": " + e.Err.Error()
}

func (e *PositionError) Unwrap() error { return e.Err }

// AtPosition wraps err with the given source position.
func AtPosition(pos Position, err error) error {
	if err == nil {
		return nil
	}
	return &PositionError{Pos: pos, Err: err}
}
