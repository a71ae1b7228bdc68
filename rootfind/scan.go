package rootfind

import (
	"fmt"
	"math"
)

// FindAllRoots walks [start, end] in fixed steps and refines every
// sign-changing sub-interval with bisection.
//
// At each step boundary where prev·curr ≤ 0 the sub-interval
// [x-step, x] is handed to bisection. Individual bisection failures are
// swallowed and the scan continues: a pathological bracket costs one
// candidate, never the whole scan. NaN probe values never satisfy the
// sign-change test, so undefined regions are skipped silently.
//
// Candidates within RootSeparation of an already-accepted root are
// dropped. Results keep discovery order, which for a forward scan is
// ascending.
//
// Parameters:
//   - f:     the function whose zeros are sought.
//   - start: left edge of the scan.
//   - end:   right edge of the scan; the last probe may overshoot it by
//     less than one step.
//   - step:  probe spacing, must be positive.
//   - opts:  WithTolerance (forwarded to the per-bracket bisection).
//
// Returns every accepted root, possibly none; an empty scan is not an
// error.
//
// Complexity: O((end-start)/step) probes plus one bisection per bracket.
//
// Errors: ErrNilFunction, ErrOptionViolation (also for a non-positive
// step).
func FindAllRoots(f Func, start, end, step float64, opts ...Option) ([]float64, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNilFunction
	}
	if !(step > 0) {
		return nil, fmt.Errorf("%w: step must be positive (%v)", ErrOptionViolation, step)
	}

	var roots []float64
	x := start
	prev := f(x)

	for x < end {
		x += step
		fx := f(x)

		if prev*fx <= 0 {
			root, bisectErr := bisect(f, x-step, x, o)
			if bisectErr == nil && !nearAny(roots, root) {
				roots = append(roots, root)
			}
		}

		prev = fx
	}

	return roots, nil
}

// nearAny reports whether candidate lies within RootSeparation of an
// already-accepted root.
func nearAny(roots []float64, candidate float64) bool {
	for _, r := range roots {
		if math.Abs(r-candidate) < RootSeparation {
			return true
		}
	}

	return false
}
