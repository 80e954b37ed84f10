// Package pbw implements Poincaré–Birkhoff–Witt algebras: noncommutative
// polynomial rings given by generator-swap relations, with canonical element
// representation and a rewriting multiplication engine.
//
// What:
//
//   - Algebra: immutable value built from a coefficient ring (package ring),
//     generator symbols, a relation table rewriting x_j·x_i for every pair
//     i < j, and an admissible term order (package order).
//   - Element: canonical sparse sum of coefficient·monomial terms; all
//     arithmetic returns new, fully reduced values.
//   - Builder: write-only term accumulator for assembling elements from many
//     contributions with a single renormalization.
//   - Opposite / OppositeMap: the anti-isomorphic algebra with reversed
//     multiplication, and the invertible generator-fixing map between the two.
//   - Factories: Weyl, QuantumPlane, Commutative.
//
// Why:
//
//   - Weyl algebras and their relatives are the home of algebraic D-module
//     and quantum-group computations; everything downstream (package ideal)
//     needs exactly one primitive done right: multiply two canonical
//     monomials and land back in canonical form.
//
// Validation:
//
//   - Construction checks that every relation leads with x_i·x_j and that
//     overlapping rewrites commute (the diamond condition on every generator
//     triple). WithoutCheck skips both checks; the algebra then carries no
//     associativity guarantee.
//
// Complexity:
//
//   - Monomial multiplication is exponential in the number of inversions in
//     the worst case; no stronger bound holds for noncommutative rewriting.
//
// Errors:
//
//   - ErrNoGenerators, ErrOrderMismatch, ErrInvalidIndex: malformed input.
//   - ErrInconsistentRelations (InconsistentRelationsError): validation failed.
//   - ErrMismatchedAlgebra: elements of different algebras combined (panic).
//   - ErrZeroElement: leading-term query on the zero element.
package pbw
