package rootfind

import (
	"errors"
	"fmt"
)

// Func is a real-valued function of one real variable. Implementations
// may return NaN to mark a point where the underlying expression is
// undefined; every method here treats NaN as "no information".
type Func func(x float64) float64

// Numerical defaults shared by all methods.
const (
	// DefaultTolerance bounds both convergence tests and bracket widths.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps Newton-Raphson updates per seed.
	DefaultMaxIterations = 100

	// RootSeparation is the absolute distance under which two candidate
	// roots are considered the same root during deduplication.
	RootSeparation = 1e-10
)

// Sentinel errors for root finding.
var (
	// ErrInvalidBracket is returned when f(a) and f(b) do not have
	// opposite signs (a NaN endpoint value never forms a bracket).
	ErrInvalidBracket = errors.New("rootfind: endpoint values do not bracket a root")

	// ErrDerivativeNearZero is returned when |df(x)| falls below the
	// tolerance before convergence; the Newton step would divide by ~0.
	ErrDerivativeNearZero = errors.New("rootfind: derivative too close to zero")

	// ErrDidNotConverge is returned when Newton-Raphson exhausts its
	// iteration budget without meeting a convergence criterion.
	ErrDidNotConverge = errors.New("rootfind: did not converge within the iteration limit")

	// ErrNilFunction is returned when a nil Func is supplied.
	ErrNilFunction = errors.New("rootfind: nil function")

	// ErrOptionViolation is returned when an invalid Option or scan
	// parameter is supplied.
	ErrOptionViolation = errors.New("rootfind: invalid option supplied")
)

// Option configures a root-finding call via functional arguments.
// An invalid value (e.g. non-positive tolerance) is recorded and
// surfaced as ErrOptionViolation when the method is invoked.
type Option func(*Options)

// Options holds the shared numerical knobs.
type Options struct {
	// Tolerance is the convergence threshold: |f(x)|, the Newton step
	// and the bisection bracket width are all compared against it.
	Tolerance float64

	// MaxIterations caps the Newton-Raphson loop.
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults:
// Tolerance 1e-10, MaxIterations 100.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		err:           nil,
	}
}

// WithTolerance sets the convergence threshold.
//
//	tol > 0: use tol
//	tol <= 0 or NaN: invalid option → ErrOptionViolation
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%v)", ErrOptionViolation, tol)

			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the Newton-Raphson iteration cap.
//
//	n > 0: use n
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}

// applyOptions folds opts over the defaults and reports any recorded
// violation.
func applyOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
