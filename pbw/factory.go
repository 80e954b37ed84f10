package pbw

import (
	"github.com/katalvlaran/ncpoly/order"
	"github.com/katalvlaran/ncpoly/ring"
)

// Ready-made algebras over the generic constructor. Each factory is a pure
// function: no shared state beyond the returned value.

// Weyl builds the n-th Weyl algebra over r for the given coordinate names:
// generators x_1..x_n followed by the partials d<x_1>..d<x_n>, with
// d_i·x_i = 1 + x_i·d_i and all other pairs commuting, under degree-
// lexicographic order. Construction is validated.
func Weyl(r ring.Ring, names ...string) (*Algebra, error) {
	n := len(names)
	if n == 0 {
		return nil, ErrNoGenerators
	}
	symbols := make([]string, 0, 2*n)
	symbols = append(symbols, names...)
	for _, name := range names {
		symbols = append(symbols, "d"+name)
	}
	rels := make(map[[2]int]Relation, n)
	for i := 0; i < n; i++ {
		lead := make([]int, 2*n)
		lead[i], lead[n+i] = 1, 1
		rels[[2]int{i, n + i}] = Relation{
			{Coeff: r.One(), Exp: make([]int, 2*n)},
			{Coeff: r.One(), Exp: lead},
		}
	}

	return New(r, symbols, rels, order.DegLex(2*n))
}

// QuantumPlane builds the two-generator quantum plane over r: y·x = q·x·y
// under degree-lexicographic order. q must be a nonzero scalar of r.
func QuantumPlane(r ring.Ring, q ring.Scalar, xname, yname string) (*Algebra, error) {
	rels := map[[2]int]Relation{
		{0, 1}: {{Coeff: q, Exp: []int{1, 1}}},
	}

	return New(r, []string{xname, yname}, rels, order.DegLex(2))
}

// Commutative builds the ordinary (commutative) polynomial algebra over r in
// the given variables under degree-lexicographic order. Every generator pair
// carries the default commuting relation.
func Commutative(r ring.Ring, names ...string) (*Algebra, error) {
	if len(names) == 0 {
		return nil, ErrNoGenerators
	}

	return New(r, names, nil, order.DegLex(len(names)))
}
