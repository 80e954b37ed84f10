package ring

import (
	"fmt"
	"math/big"
)

// Rationals is the field of rational numbers with *big.Rat scalars.
// The zero value is ready to use; QQ is the shared instance.
type Rationals struct{}

// QQ is the rational coefficient field.
var QQ = Rationals{}

// Int returns the rational scalar n/1.
func (Rationals) Int(n int64) Scalar { return new(big.Rat).SetInt64(n) }

// Frac returns the rational scalar p/q. Panics if q is zero.
func (Rationals) Frac(p, q int64) Scalar {
	if q == 0 {
		panic(ErrDivisionByZero)
	}

	return new(big.Rat).SetFrac64(p, q)
}

// Zero returns the additive identity 0/1.
func (Rationals) Zero() Scalar { return new(big.Rat) }

// One returns the multiplicative identity 1/1.
func (Rationals) One() Scalar { return new(big.Rat).SetInt64(1) }

// Add returns a + b.
func (Rationals) Add(a, b Scalar) Scalar { return new(big.Rat).Add(ratOf(a), ratOf(b)) }

// Neg returns -a.
func (Rationals) Neg(a Scalar) Scalar { return new(big.Rat).Neg(ratOf(a)) }

// Mul returns a * b.
func (Rationals) Mul(a, b Scalar) Scalar { return new(big.Rat).Mul(ratOf(a), ratOf(b)) }

// IsZero reports whether a == 0.
func (Rationals) IsZero(a Scalar) bool { return ratOf(a).Sign() == 0 }

// IsOne reports whether a == 1.
func (Rationals) IsOne(a Scalar) bool {
	r := ratOf(a)

	return r.IsInt() && r.Num().Cmp(oneInt) == 0
}

// Eq reports whether a == b.
func (Rationals) Eq(a, b Scalar) bool { return ratOf(a).Cmp(ratOf(b)) == 0 }

// Div returns a / b exactly, or ErrDivisionByZero when b == 0.
func (Rationals) Div(a, b Scalar) (Scalar, error) {
	rb := ratOf(b)
	if rb.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Quo(ratOf(a), rb), nil
}

// Format renders a as "p" for integers and "p/q" otherwise.
func (Rationals) Format(a Scalar) string {
	r := ratOf(a)
	if r.IsInt() {
		return r.Num().String()
	}

	return r.RatString()
}

var oneInt = big.NewInt(1)

// ratOf asserts the *big.Rat payload; a foreign scalar is a programmer error.
func ratOf(a Scalar) *big.Rat {
	r, ok := a.(*big.Rat)
	if !ok {
		panic(fmt.Sprintf("ring: Rationals received foreign scalar %T", a))
	}

	return r
}
