package pbw

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/ncpoly/ring"
)

// Element is a canonical sparse algebra element: a sum of terms with nonzero
// coefficients and pairwise distinct ordered monomials, kept in strictly
// decreasing term order. Elements are immutable; every arithmetic method
// returns a new value. Combining elements of different algebras is a
// programmer error and panics with ErrMismatchedAlgebra.
type Element struct {
	alg   *Algebra
	terms []Term
}

// Algebra returns the owning algebra.
func (e *Element) Algebra() *Algebra { return e.alg }

// IsZero reports whether e is the zero element.
func (e *Element) IsZero() bool { return len(e.terms) == 0 }

// NumTerms returns the number of stored terms.
func (e *Element) NumTerms() int { return len(e.terms) }

// Terms returns a deep copy of the terms in decreasing term order.
func (e *Element) Terms() []Term {
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		out[i] = Term{Coeff: t.Coeff, Exp: append([]int(nil), t.Exp...)}
	}

	return out
}

// LeadingTerm returns the largest term under the algebra's order.
func (e *Element) LeadingTerm() (Term, error) {
	if len(e.terms) == 0 {
		return Term{}, ErrZeroElement
	}
	t := e.terms[0]

	return Term{Coeff: t.Coeff, Exp: append([]int(nil), t.Exp...)}, nil
}

// LeadingMonomial returns the exponent vector of the leading term.
func (e *Element) LeadingMonomial() ([]int, error) {
	if len(e.terms) == 0 {
		return nil, ErrZeroElement
	}

	return append([]int(nil), e.terms[0].Exp...), nil
}

// LeadingCoeff returns the coefficient of the leading term.
func (e *Element) LeadingCoeff() (ring.Scalar, error) {
	if len(e.terms) == 0 {
		return nil, ErrZeroElement
	}

	return e.terms[0].Coeff, nil
}

// Add returns e + f.
func (e *Element) Add(f *Element) *Element {
	e.mustShare(f)
	r, ord := e.alg.coeff, e.alg.ord
	out := make([]Term, 0, len(e.terms)+len(f.terms))
	i, j := 0, 0
	for i < len(e.terms) && j < len(f.terms) {
		switch c := ord.Compare(e.terms[i].Exp, f.terms[j].Exp); {
		case c > 0:
			out = append(out, e.terms[i])
			i++
		case c < 0:
			out = append(out, f.terms[j])
			j++
		default:
			if s := r.Add(e.terms[i].Coeff, f.terms[j].Coeff); !r.IsZero(s) {
				out = append(out, Term{Coeff: s, Exp: e.terms[i].Exp})
			}
			i++
			j++
		}
	}
	out = append(out, e.terms[i:]...)
	out = append(out, f.terms[j:]...)

	return &Element{alg: e.alg, terms: out}
}

// Sub returns e - f.
func (e *Element) Sub(f *Element) *Element { return e.Add(f.Neg()) }

// Neg returns -e.
func (e *Element) Neg() *Element {
	r := e.alg.coeff
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		out[i] = Term{Coeff: r.Neg(t.Coeff), Exp: t.Exp}
	}

	return &Element{alg: e.alg, terms: out}
}

// Scale returns c·e.
func (e *Element) Scale(c ring.Scalar) *Element {
	r := e.alg.coeff
	if r.IsZero(c) {
		return e.alg.Zero()
	}
	out := make([]Term, 0, len(e.terms))
	for _, t := range e.terms {
		if s := r.Mul(c, t.Coeff); !r.IsZero(s) {
			out = append(out, Term{Coeff: s, Exp: t.Exp})
		}
	}

	return &Element{alg: e.alg, terms: out}
}

// Mul returns e·f, distributing the monomial rewriting engine bilinearly
// over both operands and renormalizing once.
func (e *Element) Mul(f *Element) *Element {
	e.mustShare(f)
	r := e.alg.coeff
	acc := e.alg.NewBuilder()
	for _, ta := range e.terms {
		for _, tb := range f.terms {
			e.alg.mulMonomials(r.Mul(ta.Coeff, tb.Coeff), ta.Exp, tb.Exp, acc)
		}
	}

	return acc.Element()
}

// Equal reports whether e and f are the same canonical element.
func (e *Element) Equal(f *Element) bool {
	e.mustShare(f)
	if len(e.terms) != len(f.terms) {
		return false
	}
	r := e.alg.coeff
	for i := range e.terms {
		if !expEqual(e.terms[i].Exp, f.terms[i].Exp) || !r.Eq(e.terms[i].Coeff, f.terms[i].Coeff) {
			return false
		}
	}

	return true
}

// String renders e as a sum of coefficient·monomial terms in decreasing term
// order; the rendering is deterministic and meant for diagnostics only.
func (e *Element) String() string {
	if len(e.terms) == 0 {
		return "0"
	}
	r := e.alg.coeff
	var sb strings.Builder
	for i, t := range e.terms {
		cs := r.Format(t.Coeff)
		neg := strings.HasPrefix(cs, "-")
		if neg {
			cs = cs[1:]
		}
		switch {
		case i == 0 && neg:
			sb.WriteByte('-')
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		mono := e.alg.monoString(t.Exp)
		switch {
		case mono == "":
			sb.WriteString(cs)
		case cs == "1":
			sb.WriteString(mono)
		default:
			sb.WriteString(cs)
			sb.WriteByte('*')
			sb.WriteString(mono)
		}
	}

	return sb.String()
}

// monoString renders an exponent vector as x^2*y or "" for the unit monomial.
func (a *Algebra) monoString(exp []int) string {
	parts := make([]string, 0, len(exp))
	for i, e := range exp {
		switch {
		case e == 1:
			parts = append(parts, a.symbols[i])
		case e > 1:
			parts = append(parts, a.symbols[i]+"^"+strconv.Itoa(e))
		}
	}

	return strings.Join(parts, "*")
}

// mustShare panics with ErrMismatchedAlgebra unless e and f share an algebra.
func (e *Element) mustShare(f *Element) {
	if e.alg != f.alg {
		panic(ErrMismatchedAlgebra)
	}
}
