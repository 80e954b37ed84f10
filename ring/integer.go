package ring

import (
	"fmt"
	"math/big"
)

// Integers is the ring of integers with *big.Int scalars. It intentionally
// does not implement Divider: computations that must normalize leading
// coefficients (ideal completion) fail over Integers with
// ErrUnsupportedOperation instead of silently losing exactness.
type Integers struct{}

// ZZ is the integer coefficient ring.
var ZZ = Integers{}

// Int returns the integer scalar n.
func (Integers) Int(n int64) Scalar { return big.NewInt(n) }

// Zero returns the additive identity 0.
func (Integers) Zero() Scalar { return new(big.Int) }

// One returns the multiplicative identity 1.
func (Integers) One() Scalar { return big.NewInt(1) }

// Add returns a + b.
func (Integers) Add(a, b Scalar) Scalar { return new(big.Int).Add(intOf(a), intOf(b)) }

// Neg returns -a.
func (Integers) Neg(a Scalar) Scalar { return new(big.Int).Neg(intOf(a)) }

// Mul returns a * b.
func (Integers) Mul(a, b Scalar) Scalar { return new(big.Int).Mul(intOf(a), intOf(b)) }

// IsZero reports whether a == 0.
func (Integers) IsZero(a Scalar) bool { return intOf(a).Sign() == 0 }

// IsOne reports whether a == 1.
func (Integers) IsOne(a Scalar) bool { return intOf(a).Cmp(oneInt) == 0 }

// Eq reports whether a == b.
func (Integers) Eq(a, b Scalar) bool { return intOf(a).Cmp(intOf(b)) == 0 }

// Format renders a in decimal.
func (Integers) Format(a Scalar) string { return intOf(a).String() }

// intOf asserts the *big.Int payload; a foreign scalar is a programmer error.
func intOf(a Scalar) *big.Int {
	i, ok := a.(*big.Int)
	if !ok {
		panic(fmt.Sprintf("ring: Integers received foreign scalar %T", a))
	}

	return i
}
