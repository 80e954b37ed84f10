package ideal

import "github.com/katalvlaran/ncpoly/pbw"

// Reduce returns the normal form of e modulo the ideal: left reduction for
// Left and TwoSided ideals (a two-sided completed set generates the same left
// ideal, so left reduction decides it), reduction in the opposite algebra for
// Right ideals. The completed set makes reduction confluent, so the result is
// independent of reduction order.
//
// Errors: ErrMismatchedAlgebra, ErrUnsupportedRing.
func (id *Ideal) Reduce(e *pbw.Element) (*pbw.Element, error) {
	if e.Algebra() != id.alg {
		return nil, ErrMismatchedAlgebra
	}
	basis, opBasis, err := id.completed()
	if err != nil {
		return nil, err
	}
	div, err := divider(id.alg)
	if err != nil {
		return nil, err
	}
	if id.side == Right {
		m := id.alg.OppositeMap()
		r, err := leftReduce(m.Apply(e), opBasis, div)
		if err != nil {
			return nil, err
		}

		return m.Inverse().Apply(r), nil
	}

	return leftReduce(e, basis, div)
}

// Contains reports whether e is a member of the ideal: its normal form
// modulo the completed generating set is zero.
func (id *Ideal) Contains(e *pbw.Element) (bool, error) {
	r, err := id.Reduce(e)
	if err != nil {
		return false, err
	}

	return r.IsZero(), nil
}

// Subset reports whether every generator of id reduces to zero modulo other.
// Both ideals must share algebra and sidedness.
func (id *Ideal) Subset(other *Ideal) (bool, error) {
	if id.alg != other.alg {
		return false, ErrMismatchedAlgebra
	}
	if id.side != other.side {
		return false, &SidednessError{Op: "inclusion", A: id.side, B: other.side}
	}
	for _, g := range id.gens {
		ok, err := other.Contains(g)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports mutual inclusion of the two ideals as completed ideals,
// independent of how either generator list is written.
func (id *Ideal) Equal(other *Ideal) (bool, error) {
	ok, err := id.Subset(other)
	if err != nil || !ok {
		return false, err
	}

	return other.Subset(id)
}
