// Package mathdsl is your in-memory toolkit for parsing, evaluating,
// differentiating and solving mathematical expressions and equations.
//
// 🚀 What is mathdsl?
//
//	A small, deterministic, pure-Go engine that brings together:
//		• Expression trees: numbers, variables, binary operators, sin/cos/log/sqrt
//		• Evaluation: exact IEEE-754 semantics with a precise error taxonomy
//		• Symbolic calculus: derivatives with product, quotient and chain rules
//		• Linear algebra (the 1-D kind): exact Σ coeff·var + constant extraction
//		• Numerical analysis: Newton–Raphson, bisection, multi-start root scans
//		• A tiny language: statements, assignments, equations, a REPL
//
// ✨ Why choose mathdsl?
//
//   - Predictable: same input, same roots, same errors, every run
//   - Honest: log(-1) is a DomainError, never a silent NaN
//   - Pure Go: no cgo, no hidden deps
//   - Composable: each layer (expr, derive, linear, rootfind, solve) stands alone
//
// Under the hood, everything is organized into focused subpackages:
//
//	expr/     — node model, environments, Evaluate, Clone, CollectVariables
//	derive/   — symbolic differentiation
//	linear/   — linear-form extraction & exact single-variable solving
//	rootfind/ — Newton–Raphson, bisection, interval scanning
//	solve/    — the equation-solving orchestrator (exact first, numeric after)
//	parse/    — lexer & recursive-descent parser for the statement grammar
//	interp/   — stateful sessions: assignments, evaluation, solving
//	vm/       — a stack bytecode backend, bit-identical with Evaluate
//
// Quick taste:
//
//	x^2 = 9;
//
//	solves to {x: 3, x_neg: -3} via the power shortcut, while
//
//	2*x + 3 = 7;
//
//	is recognized as linear and solved exactly to {x: 2}.
//
// Dive into the per-package docs for contracts, complexity notes and the
// full error taxonomy.
//
//	go get github.com/katalvlaran/mathdsl
package mathdsl
