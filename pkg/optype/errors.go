package optype

import "errors"

// Sentinel errors for node-type execution and parameterization.
var (
	ErrTooFewArgs          = errors.New("node type received too few arguments")
	ErrUnparameterizedUse  = errors.New("Use must be parameterized with a selector index before execution")
	ErrUnknownOperator     = errors.New("unknown arithmetic operator")
	ErrUnknownRelation     = errors.New("unknown relational operator")
	ErrWrongParamCount     = errors.New("wrong number of parameters")
	ErrParamNotSelector    = errors.New("Use's parameter does not fit a selector index")
	ErrScriptValueOutOfRange = errors.New("Script argument does not fit in a native integer")
	ErrScriptNonBooleanResult = errors.New("Script expression did not evaluate to a boolean or numeric result")
)
