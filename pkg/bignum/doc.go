// Package bignum provides the arbitrary-precision signed integer used as the
// sole scalar type in Directed programs: every accumulator, literal, and
// parameter value is an Integer.
//
// Integer wraps math/big.Int behind a small, value-typed API so the rest of
// the engine never touches *big.Int directly. Values are immutable: every
// arithmetic method returns a new Integer rather than mutating its receiver,
// which keeps the type safe to copy across forked executors.
package bignum
