// Package derive computes symbolic derivatives of expression trees.
//
// 🚀 What does it do?
//
//	Derivative(tree, "x") returns a NEW tree representing d(tree)/dx,
//	built purely symbolically. The result is an ordinary expr.Node: it
//	can be evaluated, rendered, or differentiated again.
//
// ✨ Rules:
//   - Number        ↦ 0
//   - Variable v    ↦ 1 if v is the target, else 0
//   - f + g, f - g  ↦ f' ± g'           (linearity)
//   - f * g         ↦ f'·g + f·g'       (product rule)
//   - f / g         ↦ (f'·g - f·g')/g²  (quotient rule)
//   - f ^ c         ↦ c·f^(c-1)·f'      (power + chain, c a literal Number)
//   - sin(f)        ↦ cos(f)·f'
//   - cos(f)        ↦ -sin(f)·f'
//   - log(f)        ↦ f'/f
//   - sqrt(f)       ↦ f'/(2·sqrt(f))
//   - lhs = rhs     ↦ lhs' = rhs'       (equations differentiate per side)
//
// A `^` whose exponent is not a literal Number (x^x, 2^x) fails with
// ErrUnsupportedDerivative: variable exponents are out of scope.
//
// Ownership: the input tree is never mutated, and no subtree of the
// input is aliased into the result. Every reuse of an input subtree
// goes through expr.Clone, so input and output stay fully independent.
//
// ⚙️ Usage:
//
//	d, err := derive.Derivative(tree, "x")
//	if err != nil { ... }
//	slope, err := expr.Evaluate(d, expr.Env{"x": 2})
//
// No simplification is performed: d(x^3)/dx comes back as 3·x^2·1, not
// 3·x^2. Evaluation, not prettiness, is the contract.
package derive
