// Package rootfind locates zeros of real-valued functions with
// Newton-Raphson iteration, bisection, and fixed-step interval scanning.
//
// 🚀 The three methods:
//
//	NewtonRaphson(f, df, guess) — quadratic convergence near a root via
//	  x ← x - f(x)/df(x). Needs the derivative and a decent seed.
//	FindAllRoots(f, start, end, step) — walks the interval in fixed
//	  steps, brackets every sign change, and refines each bracket with
//	  bisection. Needs no derivative.
//	Bisection(f, a, b) — the workhorse refiner: halves a sign-changing
//	  bracket until it is narrower than the tolerance.
//
// ✨ Guarantees:
//   - Deterministic: same function, same arguments, same options, same
//     result, every run.
//   - Honest failure: DerivativeNearZero, DidNotConverge, InvalidBracket
//     are matchable sentinels, never panics.
//   - NaN-tolerant: a probe returning NaN never satisfies a convergence
//     or bracket test, so scans pass safely over undefined regions
//     (log, sqrt) and Newton reports DidNotConverge instead of looping
//     on garbage.
//   - FindAllRoots swallows per-bracket bisection failures and keeps
//     scanning; it deduplicates candidates within RootSeparation,
//     preserving discovery order.
//
// ⚙️ Options (functional, validated at call time):
//
//	val, err := rootfind.NewtonRaphson(f, df, 1.0,
//	  rootfind.WithTolerance(1e-12),
//	  rootfind.WithMaxIterations(200),
//	)
//
// Defaults: Tolerance 1e-10, MaxIterations 100. Invalid option values
// surface as ErrOptionViolation from the call that received them.
//
// Complexity: Newton O(maxIter) probes; bisection O(log((b-a)/tol));
// scanning O((end-start)/step) probes plus one bisection per bracket.
package rootfind
