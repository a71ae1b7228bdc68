package interp

import (
	"strconv"

	"github.com/katalvlaran/mathdsl/solve"
)

// Outcome is the closed set of results a statement can produce. The
// concrete types are *Value, *Assigned and *Solved.
type Outcome interface {
	// String renders the outcome the way a front end prints it.
	String() string

	isOutcome()
}

// Value is the result of evaluating a bare expression statement.
type Value struct {
	Result float64
}

// Assigned echoes a completed assignment.
type Assigned struct {
	Name   string
	Result float64
}

// Solved carries the bindings of a completed equation solve.
type Solved struct {
	Solution solve.Solution
}

func (v *Value) String() string { return formatNum(v.Result) }

func (a *Assigned) String() string { return a.Name + " = " + formatNum(a.Result) }

func (s *Solved) String() string { return s.Solution.String() }

func (*Value) isOutcome()    {}
func (*Assigned) isOutcome() {}
func (*Solved) isOutcome()   {}

// formatNum renders values exactly as the expression printer does.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
