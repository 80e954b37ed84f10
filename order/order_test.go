package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncpoly/order"
)

func TestLex_Compare(t *testing.T) {
	o := order.Lex(3)
	require.Equal(t, 3, o.Vars())
	require.Equal(t, 0, o.Compare([]int{1, 2, 0}, []int{1, 2, 0}))
	require.Equal(t, 1, o.Compare([]int{2, 0, 0}, []int{1, 9, 9}))
	require.Equal(t, -1, o.Compare([]int{0, 5, 0}, []int{0, 5, 1}))
	// Lex ignores total degree: x > y^9.
	require.Equal(t, 1, o.Compare([]int{1, 0, 0}, []int{0, 9, 0}))
}

func TestDegLex_Compare(t *testing.T) {
	o := order.DegLex(3)
	// Degree decides first.
	require.Equal(t, -1, o.Compare([]int{1, 0, 0}, []int{0, 9, 0}))
	// Lexicographic tie-break on equal degrees.
	require.Equal(t, 1, o.Compare([]int{1, 1, 0}, []int{1, 0, 1}))
	require.Equal(t, 0, o.Compare([]int{2, 1, 1}, []int{2, 1, 1}))
}

func TestOrders_Admissible(t *testing.T) {
	// The unit monomial is minimal and comparison survives shifting by a
	// common monomial.
	vectors := [][]int{{0, 0, 0}, {1, 0, 0}, {0, 2, 1}, {3, 0, 2}, {1, 1, 1}}
	shift := []int{1, 2, 0}
	for _, o := range []order.Order{order.Lex(3), order.DegLex(3)} {
		for _, v := range vectors[1:] {
			require.Equal(t, -1, o.Compare(vectors[0], v))
		}
		for _, a := range vectors {
			for _, b := range vectors {
				sa := add(a, shift)
				sb := add(b, shift)
				require.Equal(t, o.Compare(a, b), o.Compare(sa, sb))
			}
		}
	}
}

func TestElim_BlockDominates(t *testing.T) {
	o := order.Elim(1, order.DegLex(2))
	require.Equal(t, 3, o.Vars())
	// Any monomial touching the elimination block outranks block-free ones.
	require.Equal(t, 1, o.Compare([]int{0, 0, 1}, []int{9, 9, 0}))
	// Block-free monomials fall back to the inner order.
	require.Equal(t, -1, o.Compare([]int{1, 0, 0}, []int{1, 1, 0}))
	// Equal block degree, equal inner part: block tie-break keeps totality.
	require.Equal(t, 0, o.Compare([]int{1, 0, 2}, []int{1, 0, 2}))
}

func TestMirror_ReversesVariables(t *testing.T) {
	o := order.Lex(3)
	m := order.Mirror(o)
	require.Equal(t, 3, m.Vars())
	require.Equal(t, o.Compare([]int{0, 0, 1}, []int{1, 0, 0}),
		m.Compare([]int{1, 0, 0}, []int{0, 0, 1}))
	// Mirror is an involution.
	require.Equal(t, o, order.Mirror(m))
}

func TestMake_Kinds(t *testing.T) {
	o, err := order.Make(order.KindLex, 2)
	require.NoError(t, err)
	require.Equal(t, 2, o.Vars())

	o, err = order.Make(order.KindDegLex, 4)
	require.NoError(t, err)
	require.Equal(t, 4, o.Vars())

	_, err = order.Make(order.Kind(99), 2)
	require.ErrorIs(t, err, order.ErrUnknownKind)

	require.Equal(t, "lex", order.KindLex.String())
	require.Equal(t, "deglex", order.KindDegLex.String())
}

func TestConstructors_PanicOnBadInput(t *testing.T) {
	require.Panics(t, func() { order.Lex(0) })
	require.Panics(t, func() { order.DegLex(-1) })
	require.Panics(t, func() { order.Elim(0, order.Lex(1)) })
	require.Panics(t, func() { order.Elim(1, nil) })
	require.Panics(t, func() { order.Mirror(nil) })
}

func add(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}
