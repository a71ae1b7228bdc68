package rootfind

import (
	"fmt"
	"math"
)

// Bisection halves the bracket [a, b] until it is narrower than the
// tolerance, keeping a sign change inside at every step.
//
// The bracket is valid when f(a)·f(b) ≤ 0: the endpoint values have
// opposite signs, or one of them is already (numerically) zero. A NaN
// endpoint value fails the test and yields ErrInvalidBracket. Endpoints
// may be given in either order.
//
// A midpoint whose value satisfies |f(c)| < tolerance returns early;
// otherwise the final midpoint of the narrowed bracket is returned.
//
// Complexity: O(log((b-a)/tolerance)) evaluations of f.
//
// Errors: ErrNilFunction, ErrOptionViolation, ErrInvalidBracket.
func Bisection(f Func, a, b float64, opts ...Option) (float64, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return 0, err
	}
	if f == nil {
		return 0, ErrNilFunction
	}

	return bisect(f, a, b, o)
}

// bisect is the option-resolved core shared with the interval scanner.
func bisect(f Func, a, b float64, o Options) (float64, error) {
	if a > b {
		a, b = b, a
	}

	fa := f(a)
	fb := f(b)
	if !(fa*fb <= 0) {
		return 0, fmt.Errorf("%w: f(%v)=%v, f(%v)=%v", ErrInvalidBracket, a, fa, b, fb)
	}

	for b-a > o.Tolerance {
		c := (a + b) / 2
		fc := f(c)

		if math.Abs(fc) < o.Tolerance {
			return c, nil
		}

		// keep the half that still changes sign
		if fa*fc < 0 {
			b = c
		} else {
			a = c
			fa = fc
		}
	}

	return (a + b) / 2, nil
}
