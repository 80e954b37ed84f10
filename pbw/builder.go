package pbw

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/ncpoly/ring"
)

// Builder accumulates (coefficient, exponent) contributions into a canonical
// element without renormalizing after every insertion. A Builder is write-only
// until Element is called; it may be reused afterwards. Builders are not safe
// for concurrent use.
type Builder struct {
	alg    *Algebra
	coeffs map[string]ring.Scalar
	exps   map[string][]int
}

// NewBuilder returns an empty accumulation builder over a.
func (a *Algebra) NewBuilder() *Builder {
	return &Builder{
		alg:    a,
		coeffs: make(map[string]ring.Scalar),
		exps:   make(map[string][]int),
	}
}

// Add accumulates c·x^exp. The exponent vector must have one non-negative
// entry per generator; violations return an ErrInvalidIndex-wrapped error.
func (b *Builder) Add(c ring.Scalar, exp []int) error {
	if len(exp) != b.alg.NumGens() {
		return fmt.Errorf("%w: exponent vector of length %d, want %d", ErrInvalidIndex, len(exp), b.alg.NumGens())
	}
	for i, e := range exp {
		if e < 0 {
			return fmt.Errorf("%w: negative exponent %d for generator %d", ErrInvalidIndex, e, i)
		}
	}
	b.add(c, append([]int(nil), exp...))

	return nil
}

// add accumulates a trusted contribution, taking ownership of exp.
func (b *Builder) add(c ring.Scalar, exp []int) {
	key := monoKey(exp)
	if prev, ok := b.coeffs[key]; ok {
		b.coeffs[key] = b.alg.coeff.Add(prev, c)

		return
	}
	b.coeffs[key] = c
	b.exps[key] = exp
}

// Element finalizes the accumulated terms into a canonical element: zero
// coefficients are dropped and the rest sorted in decreasing term order.
func (b *Builder) Element() *Element {
	terms := make([]Term, 0, len(b.coeffs))
	for key, c := range b.coeffs {
		if b.alg.coeff.IsZero(c) {
			continue
		}
		terms = append(terms, Term{Coeff: c, Exp: b.exps[key]})
	}
	ord := b.alg.ord
	sort.Slice(terms, func(i, j int) bool {
		return ord.Compare(terms[i].Exp, terms[j].Exp) > 0
	})

	return &Element{alg: b.alg, terms: terms}
}

// monoKey encodes an exponent vector as a map key.
func monoKey(exp []int) string {
	var sb strings.Builder
	for _, e := range exp {
		sb.WriteString(strconv.Itoa(e))
		sb.WriteByte(',')
	}

	return sb.String()
}
