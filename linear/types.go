package linear

import "errors"

// Sentinel errors for extraction and exact solving.
var (
	// ErrNonLinear is returned when a tree cannot be rewritten as
	// Σ coeff·var + constant: products or quotients of two variable
	// terms, any power term, any function call.
	ErrNonLinear = errors.New("linear: expression is not linear")

	// ErrNoSolution is returned when the form reduces to a nonzero
	// constant equated to zero: no value can satisfy it.
	ErrNoSolution = errors.New("linear: equation has no solution")

	// ErrInfiniteSolutions is returned when the form reduces to 0 = 0:
	// every value satisfies it.
	ErrInfiniteSolutions = errors.New("linear: equation holds for every value")

	// ErrTooManyVariables is returned when the form still carries two or
	// more distinct variables, cancelled-to-zero entries included.
	ErrTooManyVariables = errors.New("linear: more than one distinct variable")
)

// Form is a linear expression Σ Coeffs[v]·v + Constant.
//
// Vars lists the variables present in Coeffs in first-seen (left-to-right
// extraction) order, making iteration deterministic. A variable whose
// terms cancelled keeps its entry with coefficient 0.
type Form struct {
	Coeffs   map[string]float64
	Vars     []string
	Constant float64
}

// constant returns a variable-free form holding c.
func constant(c float64) Form {
	return Form{Coeffs: map[string]float64{}, Constant: c}
}

// single returns the form 1·name + 0.
func single(name string) Form {
	return Form{Coeffs: map[string]float64{name: 1}, Vars: []string{name}}
}

// isConstant reports whether the form carries no variable entries at all.
func (f Form) isConstant() bool { return len(f.Vars) == 0 }

// merge folds other into f term-wise, adding when sign is +1 and
// subtracting when sign is -1. First-seen variable order is preserved.
func (f *Form) merge(other Form, sign float64) {
	for _, name := range other.Vars {
		if _, seen := f.Coeffs[name]; !seen {
			f.Vars = append(f.Vars, name)
		}
		f.Coeffs[name] += sign * other.Coeffs[name]
	}
	f.Constant += sign * other.Constant
}

// scale multiplies every coefficient and the constant by c.
func (f *Form) scale(c float64) {
	for _, name := range f.Vars {
		f.Coeffs[name] *= c
	}
	f.Constant *= c
}

// divide applies a direct division to every coefficient and the
// constant, not a multiplication by the reciprocal.
func (f *Form) divide(c float64) {
	for _, name := range f.Vars {
		f.Coeffs[name] /= c
	}
	f.Constant /= c
}
