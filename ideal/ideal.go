package ideal

import (
	"strings"
	"sync"

	"github.com/katalvlaran/ncpoly/pbw"
)

// Ideal is a one- or two-sided ideal of a PBW algebra, represented by the
// generators it was constructed from plus a lazily completed generating set
// sufficient for normal-form reduction. Ideals are immutable after
// construction; the completed set is computed at most once (sync.Once) and
// shared by every subsequent query, so concurrent readers are safe.
type Ideal struct {
	alg  *pbw.Algebra
	side Sidedness
	gens []*pbw.Element

	once    sync.Once
	basis   []*pbw.Element // completed set, elements of alg
	opBasis []*pbw.Element // Right only: the left basis in the opposite algebra
	cerr    error
}

// New constructs an ideal of the given sidedness from its generators.
// Generators are stored verbatim (zero elements included) for provenance;
// completion filters them. All generators must share one algebra.
//
// Errors: ErrNoGenerators, ErrMismatchedAlgebra.
func New(side Sidedness, gens ...*pbw.Element) (*Ideal, error) {
	if len(gens) == 0 {
		return nil, ErrNoGenerators
	}
	alg := gens[0].Algebra()
	for _, g := range gens[1:] {
		if g.Algebra() != alg {
			return nil, ErrMismatchedAlgebra
		}
	}

	return &Ideal{alg: alg, side: side, gens: append([]*pbw.Element(nil), gens...)}, nil
}

// Algebra returns the owning algebra.
func (id *Ideal) Algebra() *pbw.Algebra { return id.alg }

// Sidedness returns the fixed sidedness tag.
func (id *Ideal) Sidedness() Sidedness { return id.side }

// Generators returns the user-supplied generators, verbatim.
func (id *Ideal) Generators() []*pbw.Element {
	return append([]*pbw.Element(nil), id.gens...)
}

// ToTwoSided returns the two-sided ideal generated by the same elements.
// This is the explicit conversion required before mixing a one-sided ideal
// with a two-sided one; no implicit widening ever happens.
func (id *Ideal) ToTwoSided() *Ideal {
	if id.side == TwoSided {
		return id
	}
	out, err := New(TwoSided, id.gens...)
	if err != nil {
		panic(err) // unreachable: id was validly constructed
	}

	return out
}

// CompletedGenerators returns the completed generating set: reduction against
// it is confluent, so it decides membership. Computed on first use, cached.
func (id *Ideal) CompletedGenerators() ([]*pbw.Element, error) {
	basis, _, err := id.completed()
	if err != nil {
		return nil, err
	}

	return append([]*pbw.Element(nil), basis...), nil
}

// String renders the sidedness tag and the verbatim generator list.
func (id *Ideal) String() string {
	parts := make([]string, len(id.gens))
	for i, g := range id.gens {
		parts[i] = g.String()
	}

	return id.side.String() + " ideal (" + strings.Join(parts, ", ") + ")"
}
