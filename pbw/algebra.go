package pbw

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/ncpoly/order"
	"github.com/katalvlaran/ncpoly/ring"
)

// Term is one coefficient/exponent contribution to an element. Exp has one
// entry per generator; entry i is the power of generator i in the ordered
// monomial x_0^e0 · x_1^e1 · … · x_{n-1}^e{n-1}.
type Term struct {
	Coeff ring.Scalar
	Exp   []int
}

// Relation is the polynomial right-hand side of one rewrite rule
// x_j·x_i → P_ij (for a generator pair i < j), given as raw terms.
type Relation []Term

// Option configures algebra construction.
type Option func(*config)

type config struct{ check bool }

// WithoutCheck disables construction-time validation of the relation table
// (leading-term shape and confluence of overlapping rewrites). The resulting
// algebra is usable but multiplication is no longer guaranteed associative;
// correctness of arithmetic over such an algebra is the caller's
// responsibility. Runtime arithmetic errors are never suppressed by this.
func WithoutCheck() Option {
	return func(c *config) { c.check = false }
}

// Algebra is an immutable PBW algebra: a coefficient ring, n generators, a
// relation table rewriting every out-of-order generator pair, and an
// admissible term order. Elements and ideals hold a reference to their
// algebra; algebras are never copied and are safe for concurrent readers.
type Algebra struct {
	coeff   ring.Ring
	symbols []string
	ord     order.Order
	rel     [][]Relation // rel[i][j] populated for i < j, normalized
	checked bool

	opOnce sync.Once
	op     *Algebra
}

// New constructs a PBW algebra over ring r with the given generator symbols,
// relation table and term order. rels maps a generator pair {i, j} with
// i < j to the rewrite of x_j·x_i; unspecified pairs default to the
// commuting relation x_j·x_i → x_i·x_j.
//
// Unless WithoutCheck is supplied, construction validates that every
// relation leads with x_i·x_j under ord and that for every generator triple
// i < j < k the two rewrite paths of x_k·x_j·x_i agree; a violation is
// reported as an InconsistentRelationsError.
//
// Errors: ErrNoGenerators, ErrOrderMismatch, ErrInvalidIndex,
// ErrInconsistentRelations (via InconsistentRelationsError).
func New(r ring.Ring, symbols []string, rels map[[2]int]Relation, ord order.Order, opts ...Option) (*Algebra, error) {
	if r == nil {
		panic("pbw: New requires a non-nil coefficient ring")
	}
	if ord == nil {
		panic("pbw: New requires a non-nil term order")
	}
	n := len(symbols)
	if n == 0 {
		return nil, ErrNoGenerators
	}
	if ord.Vars() != n {
		return nil, fmt.Errorf("%w: order arity %d, %d generators", ErrOrderMismatch, ord.Vars(), n)
	}

	cfg := config{check: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Algebra{
		coeff:   r,
		symbols: append([]string(nil), symbols...),
		ord:     ord,
		checked: cfg.check,
	}
	if err := a.buildTable(rels); err != nil {
		return nil, err
	}
	if cfg.check {
		if err := a.validate(); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// buildTable normalizes the user relations and fills commuting defaults.
func (a *Algebra) buildTable(rels map[[2]int]Relation) error {
	n := len(a.symbols)
	a.rel = make([][]Relation, n)
	for i := 0; i < n; i++ {
		a.rel[i] = make([]Relation, n)
		for j := i + 1; j < n; j++ {
			exp := make([]int, n)
			exp[i]++
			exp[j]++
			a.rel[i][j] = Relation{{Coeff: a.coeff.One(), Exp: exp}}
		}
	}
	for pair, rel := range rels {
		i, j := pair[0], pair[1]
		if i < 0 || j >= n || i >= j {
			return fmt.Errorf("%w: relation pair (%d,%d)", ErrInvalidIndex, i, j)
		}
		norm, err := a.normalizeRelation(rel)
		if err != nil {
			return err
		}
		a.rel[i][j] = norm
	}

	return nil
}

// normalizeRelation validates exponent shapes, merges duplicate monomials and
// sorts the terms in strictly decreasing term order.
func (a *Algebra) normalizeRelation(rel Relation) (Relation, error) {
	b := a.NewBuilder()
	for _, t := range rel {
		if err := b.Add(t.Coeff, t.Exp); err != nil {
			return nil, err
		}
	}

	return b.Element().terms, nil
}

// validate enforces the leading-term shape of every relation and the diamond
// condition on every overlapping pair of rewrite rules.
func (a *Algebra) validate() error {
	n := len(a.symbols)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rel := a.rel[i][j]
			if len(rel) == 0 {
				return &InconsistentRelationsError{I: i, J: j, K: -1, Reason: "rewrite to zero"}
			}
			want := make([]int, n)
			want[i]++
			want[j]++
			if !expEqual(rel[0].Exp, want) {
				return &InconsistentRelationsError{
					I: i, J: j, K: -1,
					Reason: fmt.Sprintf("leading monomial is not %s*%s", a.symbols[i], a.symbols[j]),
				}
			}
		}
	}

	// Every overlap of two rewrite rules is a strictly decreasing word of
	// three generators; confluence of the whole system reduces to these.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				word := []int{k, j, i}
				left := a.rewriteOnce(word, 0)
				right := a.rewriteOnce(word, 1)
				if !left.Equal(right) {
					return &InconsistentRelationsError{
						I: i, J: j, K: k,
						Reason: "rewrite paths disagree",
					}
				}
			}
		}
	}

	return nil
}

// Ring returns the coefficient ring.
func (a *Algebra) Ring() ring.Ring { return a.coeff }

// Order returns the term order.
func (a *Algebra) Order() order.Order { return a.ord }

// NumGens returns the number of generators.
func (a *Algebra) NumGens() int { return len(a.symbols) }

// Symbols returns a copy of the generator display names.
func (a *Algebra) Symbols() []string { return append([]string(nil), a.symbols...) }

// Symbol returns the display name of generator i.
func (a *Algebra) Symbol(i int) (string, error) {
	if i < 0 || i >= len(a.symbols) {
		return "", fmt.Errorf("%w: generator %d of %d", ErrInvalidIndex, i, len(a.symbols))
	}

	return a.symbols[i], nil
}

// Relation returns a copy of the rewrite of x_j·x_i for the pair i < j.
func (a *Algebra) Relation(i, j int) (Relation, error) {
	if i < 0 || j >= len(a.symbols) || i >= j {
		return nil, fmt.Errorf("%w: relation pair (%d,%d)", ErrInvalidIndex, i, j)
	}
	rel := a.rel[i][j]
	out := make(Relation, len(rel))
	for t, term := range rel {
		out[t] = Term{Coeff: term.Coeff, Exp: append([]int(nil), term.Exp...)}
	}

	return out, nil
}

// Checked reports whether the relation table passed construction validation.
// A WithoutCheck algebra reports false and carries no associativity guarantee.
func (a *Algebra) Checked() bool { return a.checked }

// Zero returns the zero element.
func (a *Algebra) Zero() *Element { return &Element{alg: a} }

// One returns the multiplicative identity.
func (a *Algebra) One() *Element {
	return &Element{alg: a, terms: []Term{{Coeff: a.coeff.One(), Exp: make([]int, len(a.symbols))}}}
}

// Gen returns generator i as an element.
func (a *Algebra) Gen(i int) (*Element, error) {
	if i < 0 || i >= len(a.symbols) {
		return nil, fmt.Errorf("%w: generator %d of %d", ErrInvalidIndex, i, len(a.symbols))
	}
	exp := make([]int, len(a.symbols))
	exp[i]++

	return &Element{alg: a, terms: []Term{{Coeff: a.coeff.One(), Exp: exp}}}, nil
}

// Monomial returns the single-term element c·x^exp.
func (a *Algebra) Monomial(c ring.Scalar, exp []int) (*Element, error) {
	b := a.NewBuilder()
	if err := b.Add(c, exp); err != nil {
		return nil, err
	}

	return b.Element(), nil
}

// Polynomial assembles an element from raw terms, merging duplicates and
// dropping zero coefficients.
func (a *Algebra) Polynomial(terms ...Term) (*Element, error) {
	b := a.NewBuilder()
	for _, t := range terms {
		if err := b.Add(t.Coeff, t.Exp); err != nil {
			return nil, err
		}
	}

	return b.Element(), nil
}

// String renders the algebra as its generator list.
func (a *Algebra) String() string {
	return fmt.Sprintf("pbw algebra in %s", strings.Join(a.symbols, ", "))
}

func expEqual(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
