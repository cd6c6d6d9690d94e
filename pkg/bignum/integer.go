package bignum

import (
	"math/big"
)

// Integer is an immutable arbitrary-precision signed integer. The zero value
// is a valid representation of zero.
type Integer struct {
	v *big.Int
}

// Zero is the additive identity.
var Zero = Integer{}

// FromInt64 builds an Integer from a small signed integer.
func FromInt64(n int64) Integer {
	return Integer{v: big.NewInt(n)}
}

// FromByte builds an Integer from a single unsigned byte, as used when a
// program's input is packed from a raw byte stream by its host.
func FromByte(b byte) Integer {
	return Integer{v: big.NewInt(int64(b))}
}

// FromString parses a decimal string, optionally signed, into an Integer.
func FromString(s string) (Integer, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, ErrParse
	}
	return Integer{v: v}, nil
}

// big returns the receiver's own underlying *big.Int (a fresh zero when the
// receiver is the zero Integer); callers read it and never mutate it.
func (a Integer) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Add returns a + b.
func (a Integer) Add(b Integer) Integer {
	return Integer{v: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a - b.
func (a Integer) Sub(b Integer) Integer {
	return Integer{v: new(big.Int).Sub(a.big(), b.big())}
}

// Mul returns a * b.
func (a Integer) Mul(b Integer) Integer {
	return Integer{v: new(big.Int).Mul(a.big(), b.big())}
}

// Div returns a / b truncated toward zero. Returns ErrDivideByZero if b is
// zero; the caller is expected to attach source position and abort the
// program, per the divide-by-zero contract in the language spec.
func (a Integer) Div(b Integer) (Integer, error) {
	if b.big().Sign() == 0 {
		return Integer{}, ErrDivideByZero
	}
	return Integer{v: new(big.Int).Quo(a.big(), b.big())}, nil
}

// Mod returns the remainder of a / b truncated toward zero, so the result's
// sign matches the dividend's. Returns ErrDivideByZero if b is zero.
func (a Integer) Mod(b Integer) (Integer, error) {
	if b.big().Sign() == 0 {
		return Integer{}, ErrDivideByZero
	}
	return Integer{v: new(big.Int).Rem(a.big(), b.big())}, nil
}

// And returns the bitwise AND of a and b (two's complement).
func (a Integer) And(b Integer) Integer {
	return Integer{v: new(big.Int).And(a.big(), b.big())}
}

// Or returns the bitwise OR of a and b (two's complement).
func (a Integer) Or(b Integer) Integer {
	return Integer{v: new(big.Int).Or(a.big(), b.big())}
}

// Xor returns the bitwise XOR of a and b (two's complement).
func (a Integer) Xor(b Integer) Integer {
	return Integer{v: new(big.Int).Xor(a.big(), b.big())}
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func (a Integer) Cmp(b Integer) int {
	return a.big().Cmp(b.big())
}

// Eq reports whether a == b.
func (a Integer) Eq(b Integer) bool { return a.Cmp(b) == 0 }

// Ne reports whether a != b.
func (a Integer) Ne(b Integer) bool { return a.Cmp(b) != 0 }

// Lt reports whether a < b.
func (a Integer) Lt(b Integer) bool { return a.Cmp(b) < 0 }

// Le reports whether a <= b.
func (a Integer) Le(b Integer) bool { return a.Cmp(b) <= 0 }

// Gt reports whether a > b.
func (a Integer) Gt(b Integer) bool { return a.Cmp(b) > 0 }

// Ge reports whether a >= b.
func (a Integer) Ge(b Integer) bool { return a.Cmp(b) >= 0 }

// Sign returns -1, 0, or +1 depending on the sign of a.
func (a Integer) Sign() int { return a.big().Sign() }

// Int converts a to a platform int, for use as a selector index. ok is false
// if a does not fit in an int.
func (a Integer) Int() (n int, ok bool) {
	if !a.big().IsInt64() {
		return 0, false
	}
	i64 := a.big().Int64()
	n = int(i64)
	return n, int64(n) == i64
}

// Byte returns a mod 256 interpreted as a single output byte, per the
// mod-256 interpretation mandated for Out nodes.
func (a Integer) Byte() byte {
	m := new(big.Int).Mod(a.big(), big.NewInt(256))
	return byte(m.Int64())
}

// String renders a in decimal.
func (a Integer) String() string {
	return a.big().String()
}
