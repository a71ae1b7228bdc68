package solve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mathdsl/expr"
)

// Sentinel errors for equation solving.
var (
	// ErrNilEquation is returned when a nil equation pointer is passed.
	ErrNilEquation = errors.New("solve: equation is nil")

	// ErrTooManyVariables is returned when the equation contains two or
	// more distinct variables; only single-unknown equations are solvable.
	ErrTooManyVariables = errors.New("solve: more than one distinct variable")

	// ErrNoRootsFound is returned when every strategy, exact and
	// numerical, came up empty.
	ErrNoRootsFound = errors.New("solve: no roots found by any strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")
)

// Binding pairs a reported root name with its value.
type Binding struct {
	Name  string
	Value float64
}

// Solution is the ordered outcome of one solve: first root under the
// variable's own name, later roots suffixed _1, _2, ... in discovery
// order, the power shortcut's mirror root as <name>_neg.
type Solution []Binding

// Lookup returns the value bound under name.
func (s Solution) Lookup(name string) (float64, bool) {
	for _, b := range s {
		if b.Name == name {
			return b.Value, true
		}
	}

	return 0, false
}

// Names lists the binding names in order.
func (s Solution) Names() []string {
	names := make([]string, len(s))
	for i, b := range s {
		names[i] = b.Name
	}

	return names
}

// Apply writes every binding into env. Solvers never touch an
// Environment themselves; this is the caller's explicit commit step.
func (s Solution) Apply(env expr.Env) {
	for _, b := range s {
		env[b.Name] = b.Value
	}
}

// String renders the solution as {name: value, ...}.
func (s Solution) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %g", b.Name, b.Value)
	}
	sb.WriteByte('}')

	return sb.String()
}
