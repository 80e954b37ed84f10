package pbw

import "github.com/katalvlaran/ncpoly/order"

// Opposite returns the opposite algebra of a: same generators, multiplication
// reversed. The opposite lists its generators in reverse, orders monomials by
// the mirror of a's order, and mirrors the relation table; under that choice
// the canonical anti-isomorphism is a plain exponent reversal (see
// OppositeMap). The opposite is built once and cached; the opposite of the
// opposite is a itself.
func (a *Algebra) Opposite() *Algebra {
	a.opOnce.Do(func() {
		n := len(a.symbols)
		syms := make([]string, n)
		for i, s := range a.symbols {
			syms[n-1-i] = s
		}
		op := &Algebra{
			coeff:   a.coeff,
			symbols: syms,
			ord:     order.Mirror(a.ord),
			checked: a.checked,
		}
		op.rel = make([][]Relation, n)
		for i := 0; i < n; i++ {
			op.rel[i] = make([]Relation, n)
		}
		// The ordered pair (i, j) of the opposite corresponds to the ordered
		// pair (n-1-j, n-1-i) of a with every monomial reversed. Reversal is
		// monotone under the mirror order, so term order is preserved and the
		// mirrored table is confluent whenever the source table is.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				src := a.rel[n-1-j][n-1-i]
				dst := make(Relation, len(src))
				for t, term := range src {
					exp := make([]int, n)
					for k, e := range term.Exp {
						exp[n-1-k] = e
					}
					dst[t] = Term{Coeff: term.Coeff, Exp: exp}
				}
				op.rel[i][j] = dst
			}
		}
		op.op = a
		op.opOnce.Do(func() {}) // opposite of the opposite resolves to a
		a.op = op
	})

	return a.op
}

// OppositeMap is the canonical anti-isomorphism M between an algebra and its
// opposite: the identity on generators, with M(u·v) = M(v)·M(u) on products.
// On canonical elements it acts by reversing every exponent vector.
type OppositeMap struct {
	src, dst *Algebra
}

// OppositeMap returns M : a → a.Opposite().
func (a *Algebra) OppositeMap() *OppositeMap {
	return &OppositeMap{src: a, dst: a.Opposite()}
}

// Domain returns the source algebra of the map.
func (m *OppositeMap) Domain() *Algebra { return m.src }

// Codomain returns the target algebra of the map.
func (m *OppositeMap) Codomain() *Algebra { return m.dst }

// Inverse returns M⁻¹, mapping the opposite back. Inverse(Apply(e)) == e.
func (m *OppositeMap) Inverse() *OppositeMap {
	return &OppositeMap{src: m.dst, dst: m.src}
}

// Apply maps an element of the domain into the codomain. Panics with
// ErrMismatchedAlgebra when e belongs to a different algebra.
func (m *OppositeMap) Apply(e *Element) *Element {
	if e.alg != m.src {
		panic(ErrMismatchedAlgebra)
	}
	n := len(m.src.symbols)
	// Exponent reversal is monotone between the two orders, so the term
	// slice stays sorted and no renormalization is needed.
	terms := make([]Term, len(e.terms))
	for i, t := range e.terms {
		exp := make([]int, n)
		for k, v := range t.Exp {
			exp[n-1-k] = v
		}
		terms[i] = Term{Coeff: t.Coeff, Exp: exp}
	}

	return &Element{alg: m.dst, terms: terms}
}
