package ring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncpoly/ring"
)

func TestRationals_Arithmetic(t *testing.T) {
	q := ring.QQ
	half := q.Frac(1, 2)
	third := q.Frac(1, 3)

	require.True(t, q.Eq(q.Add(half, third), q.Frac(5, 6)))
	require.True(t, q.Eq(q.Mul(half, third), q.Frac(1, 6)))
	require.True(t, q.Eq(q.Neg(half), q.Frac(-1, 2)))
	require.True(t, q.IsZero(q.Add(half, q.Neg(half))))
	require.True(t, q.IsOne(q.Mul(half, q.Int(2))))
	require.True(t, q.Eq(ring.Sub(q, q.Int(1), half), half))
}

func TestRationals_Div(t *testing.T) {
	q := ring.QQ
	got, err := q.Div(q.Int(3), q.Int(4))
	require.NoError(t, err)
	require.True(t, q.Eq(got, q.Frac(3, 4)))

	_, err = q.Div(q.Int(1), q.Zero())
	require.ErrorIs(t, err, ring.ErrDivisionByZero)
}

func TestRationals_Format(t *testing.T) {
	q := ring.QQ
	require.Equal(t, "2", q.Format(q.Int(2)))
	require.Equal(t, "-1/2", q.Format(q.Frac(-1, 2)))
	require.Equal(t, "0", q.Format(q.Zero()))
}

func TestIntegers_Arithmetic(t *testing.T) {
	z := ring.ZZ
	require.True(t, z.Eq(z.Add(z.Int(2), z.Int(3)), z.Int(5)))
	require.True(t, z.Eq(z.Mul(z.Int(-2), z.Int(3)), z.Int(-6)))
	require.True(t, z.IsZero(z.Add(z.Int(7), z.Neg(z.Int(7)))))
	require.True(t, z.IsOne(z.One()))
	require.Equal(t, "-6", z.Format(z.Int(-6)))
}

func TestIntegers_NoDivision(t *testing.T) {
	// Integers must not satisfy the optional division capability; callers
	// detect this and surface ErrUnsupportedOperation.
	var r ring.Ring = ring.ZZ
	_, ok := r.(ring.Divider)
	require.False(t, ok)

	r = ring.QQ
	_, ok = r.(ring.Divider)
	require.True(t, ok)
}
