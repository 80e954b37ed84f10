package pbw_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncpoly/pbw"
	"github.com/katalvlaran/ncpoly/ring"
)

func TestOpposite_AntiHomomorphismOnGenerators(t *testing.T) {
	a, err := pbw.Weyl(ring.QQ, "x", "y")
	require.NoError(t, err)
	m := a.OppositeMap()

	gens := make([]*pbw.Element, a.NumGens())
	for i := range gens {
		gens[i], err = a.Gen(i)
		require.NoError(t, err)
	}
	// M(g_i·g_j) == M(g_j)·M(g_i) for every ordered pair.
	for _, gi := range gens {
		for _, gj := range gens {
			lhs := m.Apply(gi.Mul(gj))
			rhs := m.Apply(gj).Mul(m.Apply(gi))
			require.True(t, lhs.Equal(rhs))
		}
	}
}

func TestOpposite_AntiHomomorphismOnComposites(t *testing.T) {
	a, err := pbw.QuantumPlane(ring.QQ, ring.QQ.Int(3), "x", "y")
	require.NoError(t, err)
	m := a.OppositeMap()
	x, _ := a.Gen(0)
	y, _ := a.Gen(1)

	u := y.Mul(x).Add(a.One())
	v := x.Mul(x).Sub(y)
	require.True(t, m.Apply(u.Mul(v)).Equal(m.Apply(v).Mul(m.Apply(u))))
}

func TestOpposite_Involution(t *testing.T) {
	a, err := pbw.Weyl(ring.QQ, "x")
	require.NoError(t, err)

	op := a.Opposite()
	require.NotSame(t, a, op)
	require.Same(t, a, op.Opposite())
	require.Same(t, op, a.Opposite())
	require.Equal(t, []string{"dx", "x"}, op.Symbols())
}

func TestOppositeMap_InverseRoundTrip(t *testing.T) {
	a, err := pbw.Weyl(ring.QQ, "x", "y")
	require.NoError(t, err)
	m := a.OppositeMap()
	x, _ := a.Gen(0)
	dx, _ := a.Gen(2)
	dy, _ := a.Gen(3)

	e := dx.Mul(x).Mul(dy).Sub(x.Scale(ring.QQ.Frac(2, 3)))
	require.True(t, m.Inverse().Apply(m.Apply(e)).Equal(e))
	require.Same(t, m.Domain(), m.Inverse().Codomain())

	foreign := a.Opposite().One()
	require.PanicsWithValue(t, pbw.ErrMismatchedAlgebra, func() { m.Apply(foreign) })
}

func TestOpposite_MultiplicationReversed(t *testing.T) {
	// The opposite of d·x = 1 + x·d reads x ⊙ d = 1 + d ⊙ x.
	a, err := pbw.Weyl(ring.QQ, "x")
	require.NoError(t, err)
	m := a.OppositeMap()
	x, _ := a.Gen(0)
	dx, _ := a.Gen(1)

	lhs := m.Apply(x).Mul(m.Apply(dx))
	rhs := m.Apply(dx.Mul(x))
	require.True(t, lhs.Equal(rhs))
}
