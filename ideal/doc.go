// Package ideal implements one- and two-sided ideals of PBW algebras:
// completion to a normal-form-complete generating set, membership, inclusion
// and equality, plus sum, product, power and intersection.
//
// What:
//
//   - Ideal: a sidedness tag (Left, Right, TwoSided), the verbatim generators
//     it was constructed from, and a lazily completed generating set.
//   - Completion: Buchberger-style saturation with left S-polynomials; two-
//     sided ideals additionally close under right multiplication by every
//     generator; right ideals reuse the left engine through the opposite
//     algebra and the canonical anti-isomorphism.
//   - Contains/Reduce: confluent reduction against the completed set.
//   - Sum, Product, Power, Intersect: derived ideals; intersection goes
//     through a central elimination variable and an elimination order.
//
// Why:
//
//   - Membership in a noncommutative ideal cannot be decided from the raw
//     generators; only a completed (Gröbner-type) set gives unique normal
//     forms. Every query here funnels through that one primitive.
//
// Concurrency:
//
//   - Ideals are immutable after construction. The completed set is the only
//     lazily computed state; it is guarded by a sync.Once, so racing callers
//     compute it at most once and always observe the same deterministic
//     result.
//
// Complexity:
//
//   - Completion can be very expensive (no polynomial bound exists); the
//     engine imposes no internal timeout. Callers needing bounded computation
//     must cap input degrees or sizes themselves.
//
// Errors:
//
//   - ErrMismatchedAlgebra: operands owned by different algebras.
//   - ErrSidednessMismatch (SidednessError): incompatible sidedness tags.
//   - ErrUnsupportedRing: the coefficient ring cannot divide exactly.
//   - ErrNoGenerators, ErrInvalidPower: malformed input.
package ideal
