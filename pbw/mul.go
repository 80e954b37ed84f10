package pbw

import "github.com/katalvlaran/ncpoly/ring"

// Monomial multiplication by rewriting.
//
// A canonical monomial is a non-decreasing word of generator indices, stored
// as an exponent vector. The product of two canonical monomials concatenates
// their words; if the junction is already ordered the product is a single
// monomial (fast path). Otherwise the leftmost inversion x_j·x_i (j > i) is
// replaced by the relation polynomial P_ij and every resulting word is
// re-reduced. Each replacement strictly decreases the word under the
// algebra's admissible order, so recursion terminates.

// mulMonomials accumulates c·(x^ea · x^eb) into acc in canonical form.
func (a *Algebra) mulMonomials(c ring.Scalar, ea, eb []int, acc *Builder) {
	if a.coeff.IsZero(c) {
		return
	}
	if highestGen(ea) <= lowestGen(eb) {
		// Ordered junction: the product is the combined exponent vector.
		sum := make([]int, len(ea))
		for i := range ea {
			sum[i] = ea[i] + eb[i]
		}
		acc.add(c, sum)

		return
	}
	w := appendWord(appendWord(make([]int, 0, wordLen(ea)+wordLen(eb)), ea), eb)
	a.reduceWord(c, w, acc)
}

// reduceWord accumulates the canonical form of c·w into acc, rewriting the
// leftmost inversion until every branch reaches an ordered word.
func (a *Algebra) reduceWord(c ring.Scalar, w []int, acc *Builder) {
	if a.coeff.IsZero(c) {
		return
	}
	pos := -1
	for k := 0; k+1 < len(w); k++ {
		if w[k] > w[k+1] {
			pos = k
			break
		}
	}
	if pos < 0 {
		acc.add(c, wordToExp(a.NumGens(), w))

		return
	}
	a.rewriteAt(c, w, pos, acc)
}

// rewriteAt replaces the inverted pair at pos by its relation polynomial and
// re-reduces every branch.
func (a *Algebra) rewriteAt(c ring.Scalar, w []int, pos int, acc *Builder) {
	i, j := w[pos+1], w[pos]
	for _, t := range a.rel[i][j] {
		nw := make([]int, 0, len(w)-2+wordLen(t.Exp))
		nw = append(nw, w[:pos]...)
		nw = appendWord(nw, t.Exp)
		nw = append(nw, w[pos+2:]...)
		a.reduceWord(a.coeff.Mul(c, t.Coeff), nw, acc)
	}
}

// rewriteOnce reduces the word w to canonical form after forcing the first
// rewrite to happen at pos. Used by construction validation to compare the
// two reduction paths of an overlap word.
func (a *Algebra) rewriteOnce(w []int, pos int) *Element {
	acc := a.NewBuilder()
	a.rewriteAt(a.coeff.One(), w, pos, acc)

	return acc.Element()
}

// highestGen returns the largest generator index occurring in exp, or -1.
func highestGen(exp []int) int {
	for i := len(exp) - 1; i >= 0; i-- {
		if exp[i] > 0 {
			return i
		}
	}

	return -1
}

// lowestGen returns the smallest generator index occurring in exp, or
// len(exp) when exp is the unit monomial.
func lowestGen(exp []int) int {
	for i, e := range exp {
		if e > 0 {
			return i
		}
	}

	return len(exp)
}

// wordLen returns the total degree of exp.
func wordLen(exp []int) int {
	d := 0
	for _, e := range exp {
		d += e
	}

	return d
}

// appendWord appends the non-decreasing generator word of exp to dst.
func appendWord(dst []int, exp []int) []int {
	for i, e := range exp {
		for k := 0; k < e; k++ {
			dst = append(dst, i)
		}
	}

	return dst
}

// wordToExp folds an ordered word back into an exponent vector.
func wordToExp(n int, w []int) []int {
	exp := make([]int, n)
	for _, i := range w {
		exp[i]++
	}

	return exp
}
