package ideal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ncpoly/ideal"
	"github.com/katalvlaran/ncpoly/pbw"
	"github.com/katalvlaran/ncpoly/ring"
)

// WeylIdealSuite runs the membership and sidedness fixtures over the second
// Weyl algebra with generators x, y, dx, dy.
type WeylIdealSuite struct {
	suite.Suite
	alg               *pbw.Algebra
	x, y, dx, dy, one *pbw.Element
}

func (s *WeylIdealSuite) SetupTest() {
	alg, err := pbw.Weyl(ring.QQ, "x", "y")
	require.NoError(s.T(), err)
	s.alg = alg
	s.x, _ = alg.Gen(0)
	s.y, _ = alg.Gen(1)
	s.dx, _ = alg.Gen(2)
	s.dy, _ = alg.Gen(3)
	s.one = alg.One()
}

func (s *WeylIdealSuite) contains(id *ideal.Ideal, e *pbw.Element) bool {
	ok, err := id.Contains(e)
	require.NoError(s.T(), err)

	return ok
}

// TestLeftMembership checks membership over I = Left(x^2, y^2).
func (s *WeylIdealSuite) TestLeftMembership() {
	x2 := s.x.Mul(s.x)
	y2 := s.y.Mul(s.y)
	left, err := ideal.New(ideal.Left, x2, y2)
	require.NoError(s.T(), err)

	require.True(s.T(), s.contains(left, x2.Sub(y2)))
	require.True(s.T(), s.contains(left, s.dy.Mul(y2)))
	require.False(s.T(), s.contains(left, s.x.Add(s.one)))
	require.False(s.T(), s.contains(left, s.x))
}

// TestSumReachesUnit: Left(x^2, y^2) + Left(dy^2) contains 1.
func (s *WeylIdealSuite) TestSumReachesUnit() {
	left, err := ideal.New(ideal.Left, s.x.Mul(s.x), s.y.Mul(s.y))
	require.NoError(s.T(), err)
	dysq, err := ideal.New(ideal.Left, s.dy.Mul(s.dy))
	require.NoError(s.T(), err)

	sum, err := left.Sum(dysq)
	require.NoError(s.T(), err)
	require.True(s.T(), s.contains(sum, s.one))
}

// TestSidednessAsymmetry: y·dy ∈ Left(dy) but dy·y ∉, and conversely on the
// right.
func (s *WeylIdealSuite) TestSidednessAsymmetry() {
	left, err := ideal.New(ideal.Left, s.dy)
	require.NoError(s.T(), err)
	right, err := ideal.New(ideal.Right, s.dy)
	require.NoError(s.T(), err)

	require.True(s.T(), s.contains(left, s.y.Mul(s.dy)))
	require.False(s.T(), s.contains(left, s.dy.Mul(s.y)))
	require.True(s.T(), s.contains(right, s.dy.Mul(s.y)))
	require.False(s.T(), s.contains(right, s.y.Mul(s.dy)))
}

// TestReduceNormalForm: dy·y mod Left(dy) leaves the constant 1.
func (s *WeylIdealSuite) TestReduceNormalForm() {
	left, err := ideal.New(ideal.Left, s.dy)
	require.NoError(s.T(), err)

	nf, err := left.Reduce(s.dy.Mul(s.y))
	require.NoError(s.T(), err)
	require.True(s.T(), nf.Equal(s.one))
}

// TestEqualIgnoresPresentation: completed-ideal equality does not depend on
// how the generator list is written.
func (s *WeylIdealSuite) TestEqualIgnoresPresentation() {
	a, err := ideal.New(ideal.Left, s.dy)
	require.NoError(s.T(), err)
	b, err := ideal.New(ideal.Left, s.dy, s.y.Mul(s.dy))
	require.NoError(s.T(), err)

	eq, err := a.Equal(b)
	require.NoError(s.T(), err)
	require.True(s.T(), eq)

	c, err := ideal.New(ideal.Left, s.dy, s.x)
	require.NoError(s.T(), err)
	eq, err = a.Equal(c)
	require.NoError(s.T(), err)
	require.False(s.T(), eq)

	sub, err := a.Subset(c)
	require.NoError(s.T(), err)
	require.True(s.T(), sub)
}

// TestTripleIntersection: x^2·dx·dy lies in Left(dx) ∩ Left(dy) ∩ Left(x),
// while no single generator does.
func (s *WeylIdealSuite) TestTripleIntersection() {
	i, err := ideal.New(ideal.Left, s.dx)
	require.NoError(s.T(), err)
	j, err := ideal.New(ideal.Left, s.dy)
	require.NoError(s.T(), err)
	k, err := ideal.New(ideal.Left, s.x)
	require.NoError(s.T(), err)

	meet, err := i.Intersect(j)
	require.NoError(s.T(), err)
	meet, err = meet.Intersect(k)
	require.NoError(s.T(), err)

	e := s.x.Mul(s.x).Mul(s.dx).Mul(s.dy)
	require.True(s.T(), s.contains(meet, e))
	for _, g := range []*pbw.Element{s.x, s.y, s.dx, s.dy} {
		require.False(s.T(), s.contains(meet, g))
	}
}

// TestSelfIntersection returns the ideal unchanged.
func (s *WeylIdealSuite) TestSelfIntersection() {
	i, err := ideal.New(ideal.Left, s.dx)
	require.NoError(s.T(), err)
	same, err := i.Intersect(i)
	require.NoError(s.T(), err)
	require.Same(s.T(), i, same)
}

// TestRightIntersection transports through the opposite algebra.
func (s *WeylIdealSuite) TestRightIntersection() {
	i, err := ideal.New(ideal.Right, s.dx)
	require.NoError(s.T(), err)
	j, err := ideal.New(ideal.Right, s.dy)
	require.NoError(s.T(), err)

	meet, err := i.Intersect(j)
	require.NoError(s.T(), err)
	require.Equal(s.T(), ideal.Right, meet.Sidedness())
	require.True(s.T(), s.contains(meet, s.dx.Mul(s.dy).Mul(s.x)))
	require.False(s.T(), s.contains(meet, s.dx))
}

// TestProductSidedness: sidedness composition rules of Product.
func (s *WeylIdealSuite) TestProductSidedness() {
	l, err := ideal.New(ideal.Left, s.x)
	require.NoError(s.T(), err)
	r, err := ideal.New(ideal.Right, s.dy)
	require.NoError(s.T(), err)

	lr, err := l.Product(r)
	require.NoError(s.T(), err)
	require.Equal(s.T(), ideal.TwoSided, lr.Sidedness())
	require.True(s.T(), s.contains(lr, s.y.Mul(s.x).Mul(s.dy).Mul(s.dx)))

	ll, err := l.Product(l)
	require.NoError(s.T(), err)
	require.Equal(s.T(), ideal.Left, ll.Sidedness())

	rr, err := r.Product(r)
	require.NoError(s.T(), err)
	require.Equal(s.T(), ideal.Right, rr.Sidedness())
}

func TestWeylIdealSuite(t *testing.T) {
	suite.Run(t, new(WeylIdealSuite))
}

func TestNew_Validation(t *testing.T) {
	alg, err := pbw.Weyl(ring.QQ, "x")
	require.NoError(t, err)
	other, err := pbw.Weyl(ring.QQ, "x")
	require.NoError(t, err)
	x, _ := alg.Gen(0)
	foreign, _ := other.Gen(0)

	_, err = ideal.New(ideal.Left)
	require.ErrorIs(t, err, ideal.ErrNoGenerators)

	_, err = ideal.New(ideal.Left, x, foreign)
	require.ErrorIs(t, err, ideal.ErrMismatchedAlgebra)
	require.True(t, errors.Is(err, pbw.ErrMismatchedAlgebra))

	i, err := ideal.New(ideal.Left, x)
	require.NoError(t, err)
	_, err = i.Contains(foreign)
	require.ErrorIs(t, err, ideal.ErrMismatchedAlgebra)
}

func TestZeroIdeal(t *testing.T) {
	alg, err := pbw.Weyl(ring.QQ, "x")
	require.NoError(t, err)
	x, _ := alg.Gen(0)

	z, err := ideal.New(ideal.Left, alg.Zero())
	require.NoError(t, err)
	ok, err := z.Contains(alg.Zero())
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = z.Contains(x)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUnsupportedRing(t *testing.T) {
	alg, err := pbw.Commutative(ring.ZZ, "u", "v")
	require.NoError(t, err)
	u, _ := alg.Gen(0)

	i, err := ideal.New(ideal.Left, u)
	require.NoError(t, err)
	_, err = i.Contains(u)
	require.ErrorIs(t, err, ideal.ErrUnsupportedRing)
	require.True(t, errors.Is(err, ring.ErrUnsupportedOperation))
}
