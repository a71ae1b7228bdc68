package solve

import (
	"fmt"

	"github.com/katalvlaran/mathdsl/rootfind"
)

// Option configures the solver via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation when Equation runs.
type Option func(*Options)

// Options holds the solver's numerical strategy knobs.
type Options struct {
	// AllRoots selects between reporting every distinct root found
	// (true, the default) and stopping at the first (false, the legacy
	// single-root behavior).
	AllRoots bool

	// Seeds is the Newton-Raphson seed ladder, tried in order.
	Seeds []float64

	// ScanStart and ScanEnd bound the bisection sweep used when no seed
	// converges.
	ScanStart, ScanEnd float64

	// ScanStep is the sweep's probe spacing.
	ScanStep float64

	// Tolerance and MaxIterations are forwarded to rootfind.
	Tolerance     float64
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults: all roots, seed
// ladder {-10, -5, -1, 0, 1, 5, 10}, scan window [-10, 10] with step
// 0.1, tolerance 1e-10, 100 Newton iterations.
func DefaultOptions() Options {
	return Options{
		AllRoots:      true,
		Seeds:         []float64{-10, -5, -1, 0, 1, 5, 10},
		ScanStart:     -10,
		ScanEnd:       10,
		ScanStep:      0.1,
		Tolerance:     rootfind.DefaultTolerance,
		MaxIterations: rootfind.DefaultMaxIterations,
		err:           nil,
	}
}

// WithAllRoots selects multi-root (true) or first-root-only (false)
// reporting.
func WithAllRoots(all bool) Option {
	return func(o *Options) {
		o.AllRoots = all
	}
}

// WithSeeds replaces the Newton seed ladder. At least one seed is
// required; the ladder is tried in the given order.
func WithSeeds(seeds ...float64) Option {
	return func(o *Options) {
		if len(seeds) == 0 {
			o.err = fmt.Errorf("%w: at least one seed required", ErrOptionViolation)

			return
		}
		o.Seeds = seeds
	}
}

// WithScanRange sets the bisection sweep window.
//
//	start < end: use the window
//	otherwise: invalid option → ErrOptionViolation
func WithScanRange(start, end float64) Option {
	return func(o *Options) {
		if !(start < end) {
			o.err = fmt.Errorf("%w: scan range [%v, %v] is empty", ErrOptionViolation, start, end)

			return
		}
		o.ScanStart, o.ScanEnd = start, end
	}
}

// WithScanStep sets the sweep's probe spacing.
//
//	step > 0: use step
//	otherwise: invalid option → ErrOptionViolation
func WithScanStep(step float64) Option {
	return func(o *Options) {
		if !(step > 0) {
			o.err = fmt.Errorf("%w: ScanStep must be positive (%v)", ErrOptionViolation, step)

			return
		}
		o.ScanStep = step
	}
}

// WithTolerance sets the convergence threshold forwarded to rootfind.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%v)", ErrOptionViolation, tol)

			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the per-seed Newton iteration cap.
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
