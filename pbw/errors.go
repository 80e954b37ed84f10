package pbw

import (
	"errors"
	"fmt"
)

// Sentinel errors for algebra construction and element arithmetic.
var (
	// ErrMismatchedAlgebra indicates operands owned by different algebras.
	// Element arithmetic panics with this value; it is a programmer error.
	ErrMismatchedAlgebra = errors.New("pbw: operands belong to different algebras")
	// ErrInconsistentRelations indicates the relation table failed validation;
	// see InconsistentRelationsError for the offending generators.
	ErrInconsistentRelations = errors.New("pbw: relation table failed confluence validation")
	// ErrInvalidIndex indicates a generator index or exponent vector outside
	// the algebra's arity, or a negative exponent.
	ErrInvalidIndex = errors.New("pbw: generator index out of range")
	// ErrOrderMismatch indicates the term order arity disagrees with the
	// generator count.
	ErrOrderMismatch = errors.New("pbw: term order arity does not match generator count")
	// ErrNoGenerators indicates an algebra was requested with no generators.
	ErrNoGenerators = errors.New("pbw: algebra requires at least one generator")
	// ErrZeroElement indicates an operation that needs a leading term was
	// applied to the zero element.
	ErrZeroElement = errors.New("pbw: zero element has no leading term")
)

// InconsistentRelationsError reports a relation-table validation failure.
// K == -1 marks a pairwise failure (the rewrite of x_J·x_I does not lead with
// x_I·x_J); otherwise the two rewrite paths of x_K·x_J·x_I disagree.
type InconsistentRelationsError struct {
	I, J, K int
	Reason  string
}

// Error renders the offending generator pair or triple.
func (e *InconsistentRelationsError) Error() string {
	if e.K < 0 {
		return fmt.Sprintf("pbw: relation for pair (%d,%d) rejected: %s", e.I, e.J, e.Reason)
	}

	return fmt.Sprintf("pbw: relations for triple (%d,%d,%d) rejected: %s", e.I, e.J, e.K, e.Reason)
}

// Unwrap ties the typed error to the ErrInconsistentRelations sentinel.
func (e *InconsistentRelationsError) Unwrap() error { return ErrInconsistentRelations }
