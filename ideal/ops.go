package ideal

import (
	"fmt"

	"github.com/katalvlaran/ncpoly/order"
	"github.com/katalvlaran/ncpoly/pbw"
)

// Sum returns the ideal generated by the union of both generator lists.
// Sidedness must match exactly; widening a one-sided ideal to two-sided is
// only available through the explicit ToTwoSided conversion.
func (id *Ideal) Sum(other *Ideal) (*Ideal, error) {
	if id.alg != other.alg {
		return nil, ErrMismatchedAlgebra
	}
	if id.side != other.side {
		return nil, &SidednessError{Op: "sum", A: id.side, B: other.side}
	}

	return New(id.side, append(id.Generators(), other.gens...)...)
}

// Product returns the ideal generated by all pairwise products g·h of the
// two generator lists. Matching strictly one-sided operands stay one-sided
// (Left·Left is Left, Right·Right is Right); every other combination yields
// the most general sidedness, TwoSided.
func (id *Ideal) Product(other *Ideal) (*Ideal, error) {
	if id.alg != other.alg {
		return nil, ErrMismatchedAlgebra
	}
	side := TwoSided
	if id.side == other.side && id.side != TwoSided {
		side = id.side
	}
	gens := make([]*pbw.Element, 0, len(id.gens)*len(other.gens))
	for _, g := range id.gens {
		for _, h := range other.gens {
			gens = append(gens, g.Mul(h))
		}
	}

	return New(side, gens...)
}

// Power returns the k-fold product of the ideal with itself, k >= 1.
func (id *Ideal) Power(k int) (*Ideal, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPower, k)
	}
	out := id
	for step := 1; step < k; step++ {
		next, err := out.Product(id)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}

// Intersect returns the intersection of two ideals of the same sidedness.
//
// Left and two-sided intersections use the central elimination variable t:
// the ideal generated by t·I and (1-t)·J in the extended algebra meets the
// base algebra exactly in I ∩ J, and under an elimination order the t-free
// members of the completed set generate that meet. Right intersections
// transport through the opposite algebra. Intersecting an ideal with itself
// returns it unchanged.
func (id *Ideal) Intersect(other *Ideal) (*Ideal, error) {
	if id == other {
		return id, nil
	}
	if id.alg != other.alg {
		return nil, ErrMismatchedAlgebra
	}
	if id.side != other.side {
		return nil, &SidednessError{Op: "intersection", A: id.side, B: other.side}
	}
	if id.side == Right {
		m := id.alg.OppositeMap()
		left1, err := New(Left, applyAll(m, id.gens)...)
		if err != nil {
			return nil, err
		}
		left2, err := New(Left, applyAll(m, other.gens)...)
		if err != nil {
			return nil, err
		}
		meet, err := left1.Intersect(left2)
		if err != nil {
			return nil, err
		}

		return New(Right, applyAll(m.Inverse(), meet.gens)...)
	}

	ext, err := extendAlgebra(id.alg)
	if err != nil {
		return nil, err
	}
	lifted := make([]*pbw.Element, 0, len(id.gens)+len(other.gens))
	for _, g := range id.gens {
		tg, err := liftTimesT(ext, g)
		if err != nil {
			return nil, err
		}
		lifted = append(lifted, tg)
	}
	for _, h := range other.gens {
		lh, err := lift(ext, h)
		if err != nil {
			return nil, err
		}
		th, err := liftTimesT(ext, h)
		if err != nil {
			return nil, err
		}
		lifted = append(lifted, lh.Sub(th))
	}

	var basis []*pbw.Element
	if id.side == TwoSided {
		basis, err = twoSidedBasis(ext, lifted)
	} else {
		basis, err = leftBasis(ext, lifted)
	}
	if err != nil {
		return nil, err
	}

	n := id.alg.NumGens()
	var gens []*pbw.Element
	for _, b := range basis {
		lm, err := b.LeadingMonomial()
		if err != nil {
			return nil, err
		}
		// Under the elimination order a t-free leading monomial implies a
		// fully t-free element.
		if lm[n] != 0 {
			continue
		}
		low, err := restrict(id.alg, b)
		if err != nil {
			return nil, err
		}
		gens = append(gens, low)
	}
	if len(gens) == 0 {
		gens = append(gens, id.alg.Zero())
	}

	return New(id.side, gens...)
}

// extendAlgebra appends one central elimination variable to the algebra,
// ordered so that any monomial containing it dominates every one without it.
func extendAlgebra(alg *pbw.Algebra) (*pbw.Algebra, error) {
	n := alg.NumGens()
	symbols := append(alg.Symbols(), "@t")
	rels := make(map[[2]int]pbw.Relation, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rel, err := alg.Relation(i, j)
			if err != nil {
				return nil, err
			}
			ext := make(pbw.Relation, len(rel))
			for t, term := range rel {
				ext[t] = pbw.Term{Coeff: term.Coeff, Exp: append(term.Exp, 0)}
			}
			rels[[2]int{i, j}] = ext
		}
	}
	// Pairs (i, n) are omitted: t gets the default commuting relation.
	ord := order.Elim(1, alg.Order())
	if !alg.Checked() {
		return pbw.New(alg.Ring(), symbols, rels, ord, pbw.WithoutCheck())
	}

	return pbw.New(alg.Ring(), symbols, rels, ord)
}

// lift re-expresses an element of the base algebra in the extension.
func lift(ext *pbw.Algebra, e *pbw.Element) (*pbw.Element, error) {
	terms := e.Terms()
	for i := range terms {
		terms[i].Exp = append(terms[i].Exp, 0)
	}

	return ext.Polynomial(terms...)
}

// liftTimesT lifts an element and multiplies it by the elimination variable.
func liftTimesT(ext *pbw.Algebra, e *pbw.Element) (*pbw.Element, error) {
	terms := e.Terms()
	for i := range terms {
		terms[i].Exp = append(terms[i].Exp, 1)
	}

	return ext.Polynomial(terms...)
}

// restrict maps a t-free element of the extension back to the base algebra.
func restrict(alg *pbw.Algebra, e *pbw.Element) (*pbw.Element, error) {
	terms := e.Terms()
	for i := range terms {
		terms[i].Exp = terms[i].Exp[:alg.NumGens()]
	}

	return alg.Polynomial(terms...)
}

// applyAll maps every element through the opposite-algebra bijection.
func applyAll(m *pbw.OppositeMap, gens []*pbw.Element) []*pbw.Element {
	out := make([]*pbw.Element, len(gens))
	for i, g := range gens {
		out[i] = m.Apply(g)
	}

	return out
}
