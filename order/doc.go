// Package order provides admissible term orders over exponent vectors, used
// by the ncpoly engine to canonicalize elements and to orient rewrite rules.
//
// What:
//
//   - Order compares two exponent vectors of a fixed arity and is total.
//   - Lex: pure lexicographic comparison, leftmost differing exponent wins.
//   - DegLex: total degree first, lexicographic tie-break.
//   - Elim: block order that makes a trailing block of elimination variables
//     dominate; any monomial touching the block outranks every block-free one.
//   - Mirror: the variable-reversed image of an order, used to order the
//     opposite algebra so that the canonical anti-isomorphism is monotone.
//
// Why:
//
//   - Rewriting x_j·x_i into lower monomials terminates exactly when every
//     rule strictly decreases under a well-founded multiplicative order.
//     All orders built here are admissible: the empty monomial is minimal and
//     u < v implies u+m < v+m componentwise.
//   - Elim is what turns a completed generating set into an intersection
//     computation: elements free of the elimination block sort below every
//     contaminated one, so they can be read off the completed set directly.
//
// Complexity: every comparison is O(n) in the arity.
//
// Errors:
//
//   - ErrUnknownKind: Make received an unrecognized order tag.
//
// Constructors panic on non-positive arity or nil inner orders; those are
// programmer errors, not data errors.
package order
