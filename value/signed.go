// Package value implements the in-circuit data model for Cloak: signed
// quantities, flavor-tagged values, and the allocated/committed forms
// they take as they cross the boundary between plaintext and a
// constraint system.
package value

import (
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// SignedInteger represents a quantity in [-(2^64-1), 2^64-1]. Outputs
// of Cloak must be Positive and below 2^64, but intermediate sums
// produced while splitting a merged run can legitimately go negative
// before the rest of the circuit brings them back into range.
type SignedInteger struct {
	abs      uint64
	negative bool
}

// Zero is the additive identity, represented as a non-negative zero.
func Zero() SignedInteger {
	return SignedInteger{abs: 0, negative: false}
}

// Positive builds a non-negative signed integer.
func Positive(x uint64) SignedInteger {
	return SignedInteger{abs: x, negative: false}
}

// Negative builds a strictly-or-zero negative signed integer. Negative(0)
// is equivalent to Zero().
func Negative(x uint64) SignedInteger {
	return SignedInteger{abs: x, negative: x != 0}
}

// FromUint64 lifts an unsigned quantity, matching the Rust
// `From<u64> for SignedInteger` conversion.
func FromUint64(x uint64) SignedInteger {
	return Positive(x)
}

// IsNegative reports whether the value is strictly negative.
func (s SignedInteger) IsNegative() bool {
	return s.negative && s.abs != 0
}

// ToUint64 returns the absolute value and true when s is non-negative;
// it returns (0, false) for negative values, mirroring the Rust
// `to_u64` which returns `None` for `Negative`.
func (s SignedInteger) ToUint64() (uint64, bool) {
	if s.IsNegative() {
		return 0, false
	}
	return s.abs, true
}

// Sign returns 1 for non-negative values and 0 for negative ones,
// matching the Rust `sign()` helper used by witness computation.
func (s SignedInteger) Sign() uint8 {
	if s.IsNegative() {
		return 0
	}
	return 1
}

func (s SignedInteger) toI128() *big.Int {
	v := new(big.Int).SetUint64(s.abs)
	if s.IsNegative() {
		v.Neg(v)
	}
	return v
}

// Scalar converts s to a field element: positive maps to x, negative
// to the field negation of x, zero to the field zero.
func (s SignedInteger) Scalar() fr.Element {
	var z fr.Element
	z.SetUint64(s.abs)
	if s.IsNegative() {
		z.Neg(&z)
	}
	return z
}

// Add performs signed addition over a 128-bit intermediate and narrows
// back to 64 bits. Overflowing the [-(2^64-1), 2^64-1] band is a
// programming error: Add panics rather than returning an error.
func (s SignedInteger) Add(o SignedInteger) SignedInteger {
	sum := new(big.Int).Add(s.toI128(), o.toI128())
	neg := sum.Sign() < 0
	if neg {
		sum.Neg(sum)
	}
	if !sum.IsUint64() {
		panic(fmt.Sprintf("value: signed addition overflowed 64 bits: %s + %s", s, o))
	}
	return SignedInteger{abs: sum.Uint64(), negative: neg}
}

// Select returns a if choice == 1 and b if choice == 0, in constant
// time with respect to choice. Surrounding witness computation
// sometimes has to pick between a positive and negative candidate
// without leaking which one was real, which is why this exists
// instead of an ordinary branch.
func Select(choice int, a, b SignedInteger) SignedInteger {
	c := subtle.ConstantTimeByteEq(uint8(choice), 1)
	return SignedInteger{
		abs:      uint64(subtle.ConstantTimeSelect(c, int(a.abs), int(b.abs))),
		negative: subtle.ConstantTimeSelect(c, b2i(a.negative), b2i(b.negative)) == 1,
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// String renders s the way a test failure message wants to see it.
func (s SignedInteger) String() string {
	if s.IsNegative() {
		return fmt.Sprintf("-%d", s.abs)
	}
	return fmt.Sprintf("%d", s.abs)
}

// Equal reports exact value equality (distinguishing +0 from -0 is
// meaningless since Negative(0) already normalizes to non-negative).
func (s SignedInteger) Equal(o SignedInteger) bool {
	return s.abs == o.abs && s.IsNegative() == o.IsNegative()
}
