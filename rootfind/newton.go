package rootfind

import (
	"fmt"
	"math"
)

// NewtonRaphson iterates x ← x - f(x)/df(x) from guess until convergence.
//
// Convergence is declared when |f(x)| < tolerance, or when the update
// step itself shrinks below the tolerance (the step test runs after the
// update, so the returned x includes the final step).
//
// Stage order per iteration:
//  1. value test: |f(x)| < tol → done
//  2. slope guard: |df(x)| < tol → ErrDerivativeNearZero
//  3. update and step test: |f(x)/df(x)| < tol → done
//
// A NaN from f or df fails every comparison above, so iteration runs on
// and ends in ErrDidNotConverge rather than accepting a garbage root.
//
// Parameters:
//   - f:     the function whose zero is sought.
//   - df:    its derivative.
//   - guess: the seed point.
//   - opts:  WithTolerance, WithMaxIterations.
//
// Returns the converged abscissa.
//
// Complexity: at most MaxIterations evaluations of f and df.
//
// Errors: ErrNilFunction, ErrOptionViolation, ErrDerivativeNearZero,
// ErrDidNotConverge.
func NewtonRaphson(f, df Func, guess float64, opts ...Option) (float64, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return 0, err
	}
	if f == nil || df == nil {
		return 0, ErrNilFunction
	}

	x := guess
	for i := 0; i < o.MaxIterations; i++ {
		fx := f(x)
		if math.Abs(fx) < o.Tolerance {
			return x, nil
		}

		dfx := df(x)
		if math.Abs(dfx) < o.Tolerance {
			return 0, fmt.Errorf("%w: |f'(%v)| = %v", ErrDerivativeNearZero, x, math.Abs(dfx))
		}

		dx := fx / dfx
		x -= dx
		if math.Abs(dx) < o.Tolerance {
			return x, nil
		}
	}

	return 0, fmt.Errorf("%w: %d iterations from seed %v", ErrDidNotConverge, o.MaxIterations, guess)
}
