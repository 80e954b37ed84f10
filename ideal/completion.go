package ideal

import (
	"github.com/katalvlaran/ncpoly/pbw"
	"github.com/katalvlaran/ncpoly/ring"
)

// Completion: a Buchberger-style saturation producing a generating set whose
// reduction relation is confluent. Left ideals close under left
// S-polynomials; two-sided ideals additionally close under right
// multiplication by every generator; right ideals transport to the opposite
// algebra, complete there as left ideals, and transport back.
//
// Termination is structural: every new basis element has a leading monomial
// outside the staircase spanned so far, and exponent vectors admit no
// infinite antichain under componentwise division (Dickson), so only finitely
// many elements are ever added.

// completed computes the basis at most once and caches it.
func (id *Ideal) completed() (basis, opBasis []*pbw.Element, err error) {
	id.once.Do(func() {
		id.basis, id.opBasis, id.cerr = id.complete()
	})

	return id.basis, id.opBasis, id.cerr
}

func (id *Ideal) complete() (basis, opBasis []*pbw.Element, err error) {
	switch id.side {
	case Right:
		m := id.alg.OppositeMap()
		opGens := make([]*pbw.Element, len(id.gens))
		for i, g := range id.gens {
			opGens[i] = m.Apply(g)
		}
		opBasis, err = leftBasis(m.Codomain(), opGens)
		if err != nil {
			return nil, nil, err
		}
		inv := m.Inverse()
		basis = make([]*pbw.Element, len(opBasis))
		for i, b := range opBasis {
			basis[i] = inv.Apply(b)
		}

		return basis, opBasis, nil
	case TwoSided:
		basis, err = twoSidedBasis(id.alg, id.gens)

		return basis, nil, err
	default:
		basis, err = leftBasis(id.alg, id.gens)

		return basis, nil, err
	}
}

// divider extracts the exact-division capability of the algebra's ring.
func divider(alg *pbw.Algebra) (ring.Divider, error) {
	div, ok := alg.Ring().(ring.Divider)
	if !ok {
		return nil, ErrUnsupportedRing
	}

	return div, nil
}

// leftBasis saturates gens into a left normal-form-complete generating set.
func leftBasis(alg *pbw.Algebra, gens []*pbw.Element) ([]*pbw.Element, error) {
	div, err := divider(alg)
	if err != nil {
		return nil, err
	}

	var basis []*pbw.Element
	for _, g := range gens {
		r, err := leftReduce(g, basis, div)
		if err != nil {
			return nil, err
		}
		if r.IsZero() {
			continue
		}
		if r, err = monic(r, div); err != nil {
			return nil, err
		}
		basis = append(basis, r)
	}

	type pair struct{ i, j int }
	var queue []pair
	for i := 0; i < len(basis); i++ {
		for j := i + 1; j < len(basis); j++ {
			queue = append(queue, pair{i, j})
		}
	}
	// Every pair is processed: the disjoint-support shortcut of the
	// commutative Buchberger algorithm is unsound here (x and dx have
	// disjoint leading monomials, yet their S-polynomial is 1).
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		s, err := leftSPoly(alg, basis[p.i], basis[p.j])
		if err != nil {
			return nil, err
		}
		r, err := leftReduce(s, basis, div)
		if err != nil {
			return nil, err
		}
		if r.IsZero() {
			continue
		}
		if r, err = monic(r, div); err != nil {
			return nil, err
		}
		basis = append(basis, r)
		for i := 0; i < len(basis)-1; i++ {
			queue = append(queue, pair{i, len(basis) - 1})
		}
	}

	return basis, nil
}

// twoSidedBasis alternates left completion with closure under right
// multiplication by every generator until no new normal form appears.
func twoSidedBasis(alg *pbw.Algebra, gens []*pbw.Element) ([]*pbw.Element, error) {
	div, err := divider(alg)
	if err != nil {
		return nil, err
	}
	cur := gens
	for {
		basis, err := leftBasis(alg, cur)
		if err != nil {
			return nil, err
		}
		var fresh []*pbw.Element
		for _, g := range basis {
			for i := 0; i < alg.NumGens(); i++ {
				gen, err := alg.Gen(i)
				if err != nil {
					return nil, err
				}
				r, err := leftReduce(g.Mul(gen), basis, div)
				if err != nil {
					return nil, err
				}
				if r.IsZero() {
					continue
				}
				if r, err = monic(r, div); err != nil {
					return nil, err
				}
				fresh = append(fresh, r)
			}
		}
		if len(fresh) == 0 {
			return basis, nil
		}
		cur = append(basis, fresh...)
	}
}

// leftSPoly forms the left S-polynomial of f and g: both are left-multiplied
// up to the componentwise lcm of their leading monomials and cross-scaled so
// the leading terms cancel.
func leftSPoly(alg *pbw.Algebra, f, g *pbw.Element) (*pbw.Element, error) {
	lf, err := f.LeadingMonomial()
	if err != nil {
		return nil, err
	}
	lg, err := g.LeadingMonomial()
	if err != nil {
		return nil, err
	}
	gamma := make([]int, len(lf))
	mf := make([]int, len(lf))
	mg := make([]int, len(lf))
	for i := range lf {
		gamma[i] = lf[i]
		if lg[i] > gamma[i] {
			gamma[i] = lg[i]
		}
		mf[i] = gamma[i] - lf[i]
		mg[i] = gamma[i] - lg[i]
	}
	p, err := leftMultiple(alg, mf, f)
	if err != nil {
		return nil, err
	}
	q, err := leftMultiple(alg, mg, g)
	if err != nil {
		return nil, err
	}
	lcp, err := p.LeadingCoeff()
	if err != nil {
		return nil, err
	}
	lcq, err := q.LeadingCoeff()
	if err != nil {
		return nil, err
	}

	return p.Scale(lcq).Sub(q.Scale(lcp)), nil
}

// leftReduce computes the left normal form of e against basis: each step
// cancels the largest not-yet-settled term by a left multiple of a basis
// element whose leading monomial divides it componentwise.
func leftReduce(e *pbw.Element, basis []*pbw.Element, div ring.Divider) (*pbw.Element, error) {
	alg := e.Algebra()
	rem := alg.Zero()
	p := e
	for !p.IsZero() {
		lt, err := p.LeadingTerm()
		if err != nil {
			return nil, err
		}
		g := findDivisor(basis, lt.Exp)
		if g == nil {
			// Irreducible term: settle it. Later steps only produce
			// strictly smaller monomials, so it can never be revisited.
			head, err := alg.Monomial(lt.Coeff, lt.Exp)
			if err != nil {
				return nil, err
			}
			rem = rem.Add(head)
			p = p.Sub(head)

			continue
		}
		lg, err := g.LeadingMonomial()
		if err != nil {
			return nil, err
		}
		cof := make([]int, len(lt.Exp))
		for i := range cof {
			cof[i] = lt.Exp[i] - lg[i]
		}
		mg, err := leftMultiple(alg, cof, g)
		if err != nil {
			return nil, err
		}
		lc, err := mg.LeadingCoeff()
		if err != nil {
			return nil, err
		}
		c, err := div.Div(lt.Coeff, lc)
		if err != nil {
			return nil, err
		}
		p = p.Sub(mg.Scale(c))
	}

	return rem, nil
}

// leftMultiple returns x^cof · e.
func leftMultiple(alg *pbw.Algebra, cof []int, e *pbw.Element) (*pbw.Element, error) {
	mono, err := alg.Monomial(alg.Ring().One(), cof)
	if err != nil {
		return nil, err
	}

	return mono.Mul(e), nil
}

// findDivisor returns a basis element whose leading monomial divides exp
// componentwise, or nil.
func findDivisor(basis []*pbw.Element, exp []int) *pbw.Element {
	for _, g := range basis {
		lg, err := g.LeadingMonomial()
		if err != nil {
			continue
		}
		if divides(lg, exp) {
			return g
		}
	}

	return nil
}

func divides(a, b []int) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}

	return true
}

// monic scales e so its leading coefficient is one.
func monic(e *pbw.Element, div ring.Divider) (*pbw.Element, error) {
	lc, err := e.LeadingCoeff()
	if err != nil {
		return nil, err
	}
	r := e.Algebra().Ring()
	if r.IsOne(lc) {
		return e, nil
	}
	inv, err := div.Div(r.One(), lc)
	if err != nil {
		return nil, err
	}

	return e.Scale(inv), nil
}
