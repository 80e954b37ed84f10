package ideal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ncpoly/pbw"
	"github.com/katalvlaran/ncpoly/ring"
)

// Sidedness classifies an ideal by which multiplications it absorbs. It is
// fixed at construction and never transitions.
type Sidedness int

const (
	// Left ideals absorb multiplication by the algebra on the left.
	Left Sidedness = iota
	// Right ideals absorb multiplication by the algebra on the right.
	Right
	// TwoSided ideals absorb multiplication on both sides.
	TwoSided
)

// String returns the conventional name of the sidedness.
func (s Sidedness) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case TwoSided:
		return "two-sided"
	default:
		return fmt.Sprintf("Sidedness(%d)", int(s))
	}
}

// Sentinel errors for ideal operations.
var (
	// ErrMismatchedAlgebra indicates operands owned by different algebras.
	ErrMismatchedAlgebra = fmt.Errorf("ideal: %w", pbw.ErrMismatchedAlgebra)
	// ErrSidednessMismatch indicates incompatible Left/Right/TwoSided
	// operands; see SidednessError for the offending pair.
	ErrSidednessMismatch = errors.New("ideal: ideals have incompatible sidedness")
	// ErrUnsupportedRing indicates the coefficient ring lacks the exact
	// division required by completion and reduction.
	ErrUnsupportedRing = fmt.Errorf("ideal: completion requires exact division: %w", ring.ErrUnsupportedOperation)
	// ErrNoGenerators indicates an ideal was requested with no generators.
	ErrNoGenerators = errors.New("ideal: at least one generator is required")
	// ErrInvalidPower indicates a power exponent below 1.
	ErrInvalidPower = errors.New("ideal: power exponent must be at least 1")
)

// SidednessError reports an operation over ideals whose sidedness tags do
// not combine.
type SidednessError struct {
	Op   string
	A, B Sidedness
}

// Error renders the operation and both tags.
func (e *SidednessError) Error() string {
	return fmt.Sprintf("ideal: %s on %s and %s ideals", e.Op, e.A, e.B)
}

// Unwrap ties the typed error to the ErrSidednessMismatch sentinel.
func (e *SidednessError) Unwrap() error { return ErrSidednessMismatch }
