// Package ring defines the coefficient-ring capability interface consumed by
// the ncpoly algebra engine, plus exact implementations over math/big.
//
// What:
//
//   - Ring is the minimal capability set every coefficient ring must supply:
//     zero/one, addition, negation, multiplication, zero/one/equality tests,
//     and deterministic formatting.
//   - Divider is an optional capability for exact division; engines that need
//     it (ideal reduction normalizes leading coefficients) type-assert and
//     surface ErrUnsupportedOperation when it is absent.
//   - Rationals implements Ring and Divider over *big.Rat.
//   - Integers implements Ring (and deliberately not Divider) over *big.Int.
//
// Why:
//
//   - Algebra/Element/Ideal code stays agnostic of the concrete coefficient
//     type: scalars are opaque values interpreted only by their ring.
//   - Exact arithmetic is non-negotiable for normal-form computation; float
//     coefficients would break confluence.
//
// Errors:
//
//   - ErrUnsupportedOperation: a required optional capability is missing.
//   - ErrDivisionByZero: exact division by a zero scalar.
//
// Scalars must be treated as immutable: every operation allocates a fresh
// value and never mutates its operands.
package ring
