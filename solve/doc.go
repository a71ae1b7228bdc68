// Package solve orchestrates equation solving: exact strategies first,
// numerical fallback after, one deterministic decision sequence.
//
// 🚀 The strategy ladder for lhs = rhs with one free variable v:
//
//	1. Power shortcut   v^N = c (either orientation, N and c literal)
//	                    solves closed-form: root = c^(1/N). An even
//	                    integer N adds the mirrored root v_neg = -root.
//	2. Exact linear     extract lhs - rhs as Σ coeff·v + constant and
//	                    divide. No iteration, no tolerance.
//	3. Numerical        f(x) = lhs(x) - rhs(x): Newton-Raphson from a
//	                    fixed seed ladder, de-duplicated; if no seed
//	                    converges (or f has no symbolic derivative),
//	                    a bisection scan of the search window.
//
// Failures of an early strategy fall through silently to the next; only
// exhaustion of all three surfaces as ErrNoRootsFound. Equations with
// two or more distinct variables fail immediately with
// ErrTooManyVariables; the count is syntactic, so a variable bound in
// the Env still counts as an unknown. Constant equations (no variables
// at all) are decided exactly: 3 = 3 holds for every value, 3 = 4 for
// none.
//
// ✨ Results:
//
//	A Solution is an ordered list of bindings: the first root is named
//	after the variable, later roots get _1, _2, ... suffixes in
//	discovery order, and the power shortcut's mirror root is v_neg.
//	Solutions are returned, never written anywhere: callers apply them
//	to an Environment explicitly via Solution.Apply.
//
// ⚙️ Options:
//
//	sol, err := solve.Equation(eq, env,
//	  solve.WithAllRoots(false),       // legacy first-root-only mode
//	  solve.WithSeeds(-3, 0, 3),       // custom Newton seed ladder
//	  solve.WithScanRange(-100, 100),  // wider bisection sweep
//	)
//
// The solver never mutates the caller's tree or Environment: numeric
// probing runs against cloned copies of both.
package solve
