package bignum

import "errors"

// Sentinel errors for integer operations.
var (
	ErrDivideByZero = errors.New("integer divide by zero")
	ErrParse        = errors.New("invalid integer literal")
)
