// Package mathexpr compiles arithmetic expressions in one variable, x,
// into fplot evaluators.
//
// Expressions use the github.com/expr-lang/expr language with the
// constants pi and e and the usual real functions:
//
//	x^3 + x^2 - 2*x + 1
//	sin(x) / x
//	ln(abs(x))
//
// Full-width characters typed through an input method are folded to
// their ASCII forms, and the symbols ×, ÷, − and π are accepted.
package mathexpr
