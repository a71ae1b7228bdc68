package solve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mathdsl/derive"
	"github.com/katalvlaran/mathdsl/expr"
	"github.com/katalvlaran/mathdsl/linear"
	"github.com/katalvlaran/mathdsl/rootfind"
)

// Equation solves eq for its single free variable and returns the
// ordered Solution.
//
// Strategy ladder (each failure falls through silently to the next):
//  1. power shortcut: v^N = c with literal N and c, either orientation;
//     root = c^(1/N), plus v_neg = -root when N is an even integer.
//     Non-real results stay NaN, they are not trapped.
//  2. exact linear: extract lhs - rhs as a linear form and divide.
//  3. numeric: f(x) = lhs(x) - rhs(x) against a snapshot of env;
//     Newton-Raphson over the seed ladder with deduplication, then a
//     bisection sweep of the scan window if no seed converged. The
//     symbolic derivative feeds Newton; if the residual has no
//     symbolic derivative the seeds are skipped and the sweep decides.
//
// Equations with no variables at all are decided exactly by evaluating
// both sides. env is read, snapshotted for probing, and never written;
// apply a returned Solution explicitly via Solution.Apply.
//
// Complexity: bounded by the numeric stage, O(seeds · MaxIterations)
// evaluations plus O(window/step) sweep probes.
//
// Errors: ErrNilEquation, ErrOptionViolation, ErrTooManyVariables,
// ErrNoRootsFound, linear.ErrNoSolution, linear.ErrInfiniteSolutions,
// plus evaluation errors propagated from a variable-free equation.
func Equation(eq *expr.Equation, env expr.Env, opts ...Option) (Solution, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, ErrNilEquation
	}

	vars := distinctNames(expr.CollectVariables(eq))
	if len(vars) > 1 {
		return nil, fmt.Errorf("%w: %v", ErrTooManyVariables, vars)
	}
	if len(vars) == 0 {
		return nil, constantVerdict(eq, env)
	}
	v := vars[0]

	// Stage 1: closed-form power equation.
	if sol, ok := powerShortcut(eq, v); ok {
		return sol, nil
	}

	// The residual lhs - rhs serves both remaining stages.
	residual := &expr.Binary{Op: expr.OpSub, Left: expr.Clone(eq.LHS), Right: expr.Clone(eq.RHS)}

	// Stage 2: exact linear solve; any failure falls through.
	if form, extractErr := linear.Extract(residual); extractErr == nil {
		if name, val, solveErr := linear.SolveSingle(form); solveErr == nil {
			return Solution{{Name: name, Value: val}}, nil
		}
	}

	// Stage 3: numeric fallback.
	return numericSolve(residual, v, env, o)
}

// distinctNames deduplicates variable occurrences, keeping first-seen
// order.
func distinctNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}

// constantVerdict decides a variable-free equation exactly by evaluating
// both sides. Evaluation errors propagate unchanged.
func constantVerdict(eq *expr.Equation, env expr.Env) error {
	lhs, err := expr.Evaluate(eq.LHS, env)
	if err != nil {
		return err
	}
	rhs, err := expr.Evaluate(eq.RHS, env)
	if err != nil {
		return err
	}

	if lhs == rhs {
		return fmt.Errorf("solve: constant equation: %w", linear.ErrInfiniteSolutions)
	}

	return fmt.Errorf("solve: constant equation %v = %v: %w", lhs, rhs, linear.ErrNoSolution)
}

// powerShortcut matches v^N = c in either orientation and solves it
// closed-form.
func powerShortcut(eq *expr.Equation, v string) (Solution, bool) {
	if sol, ok := matchPower(eq.LHS, eq.RHS, v); ok {
		return sol, true
	}

	return matchPower(eq.RHS, eq.LHS, v)
}

// matchPower requires side to be syntactically v ^ Number and other to
// be a bare Number.
func matchPower(side, other expr.Node, v string) (Solution, bool) {
	pow, ok := side.(*expr.Binary)
	if !ok || pow.Op != expr.OpPow {
		return nil, false
	}
	base, ok := pow.Left.(*expr.Variable)
	if !ok || base.Name != v {
		return nil, false
	}
	exp, ok := pow.Right.(*expr.Number)
	if !ok {
		return nil, false
	}
	c, ok := other.(*expr.Number)
	if !ok {
		return nil, false
	}

	root := math.Pow(c.Value, 1/exp.Value)
	sol := Solution{{Name: v, Value: root}}

	// even integer powers admit the mirrored real root
	if isEvenInteger(exp.Value) {
		sol = append(sol, Binding{Name: v + "_neg", Value: -root})
	}

	return sol, true
}

// isEvenInteger reports whether n is a finite even integer.
func isEvenInteger(n float64) bool {
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return false
	}

	return math.Mod(n, 2) == 0
}

// numericSolve drives stage 3 over the residual tree.
func numericSolve(residual expr.Node, v string, env expr.Env, o Options) (Solution, error) {
	// Probe against a snapshot; the caller's Env stays untouched.
	probe := env.Clone()
	f := func(x float64) float64 {
		probe[v] = x
		val, err := expr.Evaluate(residual, probe)
		if err != nil {
			// undefined probe points read as "no information"
			return math.NaN()
		}

		return val
	}

	// Newton wants the symbolic slope; without one (x^x and friends)
	// the seed stage is skipped entirely.
	var df rootfind.Func
	if dres, derr := derive.Derivative(residual, v); derr == nil {
		df = func(x float64) float64 {
			probe[v] = x
			val, err := expr.Evaluate(dres, probe)
			if err != nil {
				return math.NaN()
			}

			return val
		}
	}

	iterOpts := []rootfind.Option{
		rootfind.WithTolerance(o.Tolerance),
		rootfind.WithMaxIterations(o.MaxIterations),
	}

	var roots []float64
	if df != nil {
		for _, seed := range o.Seeds {
			root, nrErr := rootfind.NewtonRaphson(f, df, seed, iterOpts...)
			if nrErr != nil {
				// expected per-seed failure, try the next seed
				continue
			}
			if !nearAny(roots, root) {
				roots = append(roots, root)
				if !o.AllRoots {
					break
				}
			}
		}
	}

	if len(roots) == 0 {
		scanned, scanErr := rootfind.FindAllRoots(f, o.ScanStart, o.ScanEnd, o.ScanStep,
			rootfind.WithTolerance(o.Tolerance))
		if scanErr != nil {
			return nil, scanErr
		}
		roots = scanned
	}

	if len(roots) == 0 {
		return nil, fmt.Errorf("%w: %q over [%v, %v]", ErrNoRootsFound, v, o.ScanStart, o.ScanEnd)
	}
	if !o.AllRoots && len(roots) > 1 {
		roots = roots[:1]
	}

	return nameRoots(v, roots), nil
}

// nearAny reports whether candidate lies within rootfind.RootSeparation
// of an already-collected root.
func nearAny(roots []float64, candidate float64) bool {
	for _, r := range roots {
		if math.Abs(r-candidate) < rootfind.RootSeparation {
			return true
		}
	}

	return false
}

// nameRoots labels roots in discovery order: v, v_1, v_2, ...
func nameRoots(v string, roots []float64) Solution {
	sol := make(Solution, 0, len(roots))
	for i, r := range roots {
		name := v
		if i > 0 {
			name = fmt.Sprintf("%s_%d", v, i)
		}
		sol = append(sol, Binding{Name: name, Value: r})
	}

	return sol
}
