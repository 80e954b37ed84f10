package order

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates Make received an unrecognized order tag.
var ErrUnknownKind = errors.New("order: unknown term order kind")

// Order is a total, admissible term order on exponent vectors of a fixed
// arity. Compare returns -1, 0 or +1; both arguments must have length Vars().
type Order interface {
	// Vars returns the arity the order was built for.
	Vars() int
	// Compare orders two exponent vectors: -1 if a < b, 0 if equal, +1 if a > b.
	Compare(a, b []int) int
}

// Kind tags the built-in order variants, for callers that select an order by
// name rather than by constructor.
type Kind int

const (
	// KindLex selects pure lexicographic comparison.
	KindLex Kind = iota
	// KindDegLex selects degree-then-lexicographic comparison.
	KindDegLex
)

// String returns the conventional short tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lex"
	case KindDegLex:
		return "deglex"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Make builds the built-in order named by k over n variables.
// Returns ErrUnknownKind for an unrecognized tag.
func Make(k Kind, n int) (Order, error) {
	switch k {
	case KindLex:
		return Lex(n), nil
	case KindDegLex:
		return DegLex(n), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// Lex returns the lexicographic order over n variables: the leftmost
// differing exponent decides. Panics if n < 1.
func Lex(n int) Order {
	mustArity(n)

	return lexOrder{n: n}
}

// DegLex returns the degree-lexicographic order over n variables: total
// degree decides first, lexicographic comparison breaks ties. Panics if n < 1.
func DegLex(n int) Order {
	mustArity(n)

	return degLexOrder{n: n}
}

type lexOrder struct{ n int }

func (o lexOrder) Vars() int { return o.n }

func (o lexOrder) Compare(a, b []int) int { return lexCompare(a, b) }

type degLexOrder struct{ n int }

func (o degLexOrder) Vars() int { return o.n }

func (o degLexOrder) Compare(a, b []int) int {
	if c := cmpInt(total(a), total(b)); c != 0 {
		return c
	}

	return lexCompare(a, b)
}

// Elim returns a block order over rest.Vars()+block variables in which the
// trailing block of elimination variables dominates: block degree decides
// first, then rest orders the leading part, then lexicographic comparison of
// the block itself for totality. Panics if block < 1 or rest is nil.
func Elim(block int, rest Order) Order {
	if block < 1 {
		panic("order: Elim requires at least one elimination variable")
	}
	if rest == nil {
		panic("order: Elim requires a non-nil inner order")
	}

	return elimOrder{block: block, rest: rest}
}

type elimOrder struct {
	block int
	rest  Order
}

func (o elimOrder) Vars() int { return o.rest.Vars() + o.block }

func (o elimOrder) Compare(a, b []int) int {
	cut := o.rest.Vars()
	if c := cmpInt(total(a[cut:]), total(b[cut:])); c != 0 {
		return c
	}
	if c := o.rest.Compare(a[:cut], b[:cut]); c != 0 {
		return c
	}

	return lexCompare(a[cut:], b[cut:])
}

// Mirror returns the variable-reversed image of o: Compare(a, b) equals
// o.Compare(reverse(a), reverse(b)). Mirroring preserves admissibility.
// Panics if o is nil.
func Mirror(o Order) Order {
	if o == nil {
		panic("order: Mirror requires a non-nil order")
	}
	if m, ok := o.(mirrorOrder); ok {
		return m.inner // mirror is an involution
	}

	return mirrorOrder{inner: o}
}

type mirrorOrder struct{ inner Order }

func (o mirrorOrder) Vars() int { return o.inner.Vars() }

func (o mirrorOrder) Compare(a, b []int) int {
	return o.inner.Compare(reversed(a), reversed(b))
}

func mustArity(n int) {
	if n < 1 {
		panic("order: arity must be at least 1")
	}
}

func lexCompare(a, b []int) int {
	for i := range a {
		if c := cmpInt(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}

func total(a []int) int {
	d := 0
	for _, e := range a {
		d += e
	}

	return d
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func reversed(a []int) []int {
	r := make([]int, len(a))
	for i, e := range a {
		r[len(a)-1-i] = e
	}

	return r
}
