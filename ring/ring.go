package ring

import "errors"

// Sentinel errors for ring operations.
var (
	// ErrUnsupportedOperation indicates the ring lacks an optional capability
	// (for example exact division) required by the calling computation.
	ErrUnsupportedOperation = errors.New("ring: required ring operation is not supported")
	// ErrDivisionByZero indicates an exact division by a zero scalar.
	ErrDivisionByZero = errors.New("ring: division by zero")
)

// Scalar is an opaque coefficient value. Only the Ring that produced a Scalar
// may interpret it; passing a Scalar to a foreign ring is a programmer error.
type Scalar any

// Ring is the capability interface for an exact commutative coefficient ring.
// Implementations must be pure: no method may mutate its operands, and equal
// inputs must always produce equal outputs.
type Ring interface {
	// Zero returns the additive identity.
	Zero() Scalar
	// One returns the multiplicative identity.
	One() Scalar
	// Add returns a + b.
	Add(a, b Scalar) Scalar
	// Neg returns -a.
	Neg(a Scalar) Scalar
	// Mul returns a * b.
	Mul(a, b Scalar) Scalar
	// IsZero reports whether a equals the additive identity.
	IsZero(a Scalar) bool
	// IsOne reports whether a equals the multiplicative identity.
	IsOne(a Scalar) bool
	// Eq reports whether a and b are equal ring values.
	Eq(a, b Scalar) bool
	// Format renders a deterministically for display.
	Format(a Scalar) string
}

// Divider is the optional exact-division capability. Rings that support it
// must return ErrDivisionByZero on a zero divisor and never approximate.
type Divider interface {
	// Div returns a / b exactly.
	Div(a, b Scalar) (Scalar, error)
}

// Sub returns a - b in r. Convenience over the minimal capability set.
func Sub(r Ring, a, b Scalar) Scalar { return r.Add(a, r.Neg(b)) }
