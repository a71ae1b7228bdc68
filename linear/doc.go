// Package linear rewrites expression trees into exact linear forms and
// solves the single-variable case without iteration.
//
// 🚀 What is a linear form?
//
//	Σ coeff·var + constant
//
//	Extract walks a tree bottom-up, merging per-subtree partial forms:
//	  • Number      : constant c, no variables
//	  • Variable v  : coefficient 1 on v
//	  • f + g, f - g: merge term-wise
//	  • f * g       : one side must be a pure constant, it scales the other
//	  • f / g       : divisor must be a pure nonzero constant
//	  • f ^ g, sin/cos/log/sqrt: never linear
//
// Cancellation is exact and keeps its entry: extracting x - x yields a
// form with coefficient 0 on x, not an empty form. That distinction is
// what separates "no solution" from "holds for every value" downstream.
//
// ✨ Solving:
//
//	SolveSingle takes a form with at most one variable and returns the
//	exact root -constant/coeff. Degenerate forms report precisely:
//	  • coefficient 0, residual ≠ 0 : ErrNoSolution        (x - x = 5)
//	  • coefficient 0, residual = 0 : ErrInfiniteSolutions (x = x)
//	  • two or more distinct vars   : ErrTooManyVariables
//
// ⚙️ Usage:
//
//	form, err := linear.Extract(residual) // residual = lhs - rhs
//	if err != nil { ... }                 // ErrNonLinear and friends
//	name, val, err := linear.SolveSingle(form)
//
// Everything here is exact float64 arithmetic on coefficients; no
// tolerance, no iteration, no mutation of the input tree.
package linear
