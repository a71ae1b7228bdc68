package linear

import "fmt"

// SolveSingle solves f = 0 exactly for a form with at most one variable.
//
// The root of coeff·v + constant = 0 is -constant/coeff. When the
// coefficient is 0 (or the form has no variables at all), the form is a
// bare constant and the verdict is exact: a nonzero residual admits no
// solution, a zero residual holds for every value.
//
// Returns the variable name and its value.
//
// Errors: ErrTooManyVariables, ErrNoSolution, ErrInfiniteSolutions.
func SolveSingle(f Form) (string, float64, error) {
	if len(f.Vars) > 1 {
		return "", 0, fmt.Errorf("%w: %v", ErrTooManyVariables, f.Vars)
	}

	// bare-constant forms and cancelled single-variable forms share a verdict
	if len(f.Vars) == 0 {
		return "", 0, degenerate(f.Constant)
	}

	name := f.Vars[0]
	coeff := f.Coeffs[name]
	if coeff == 0 {
		return "", 0, degenerate(f.Constant)
	}

	return name, -f.Constant / coeff, nil
}

// degenerate reports the verdict for 0·v + residual = 0.
func degenerate(residual float64) error {
	if residual == 0 {
		return ErrInfiniteSolutions
	}

	return fmt.Errorf("%w: residual %v", ErrNoSolution, residual)
}
