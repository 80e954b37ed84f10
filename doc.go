// Package ncpoly is a noncommutative polynomial arithmetic engine for PBW
// (Poincaré–Birkhoff–Witt) algebras — Weyl algebras, quantum planes and
// their relatives — with relation-based normal forms and one-/two-sided
// ideal computation.
//
// 🚀 What is ncpoly?
//
//	A deterministic, exact-arithmetic algebra kernel that brings together:
//		• Coefficient rings: capability interface + big.Rat / big.Int backends
//		• Term orders: lex, deglex, elimination blocks, mirrored orders
//		• PBW algebras: validated relation tables, canonical sparse elements,
//		  a rewriting multiplication engine, opposite algebras
//		• Ideals: Buchberger-style completion, membership, inclusion,
//		  equality, sum, product, power, intersection
//
// ✨ Why choose ncpoly?
//
//   - Exact by construction – no floats anywhere near a normal form
//   - Rock-solid guarantees – immutable values, confluence checked at
//     algebra construction, deterministic output
//   - Pure Go – no cgo, no hidden deps
//   - Narrow surface – rings and orders are small interfaces you can extend
//
// Everything is organized under four subpackages:
//
//	ring/  — coefficient-ring capability interface, Rationals, Integers
//	order/ — admissible term orders over exponent vectors
//	pbw/   — algebras, elements, multiplication, opposite algebras
//	ideal/ — one-/two-sided ideals and their completion engine
//
// Quick example (first Weyl algebra, d·x = 1 + x·d):
//
//	A, _ := pbw.Weyl(ring.QQ, "x")
//	x, _ := A.Gen(0)
//	d, _ := A.Gen(1)
//	fmt.Println(d.Mul(x)) // x*dx + 1
//
//	go get github.com/katalvlaran/ncpoly
package ncpoly
