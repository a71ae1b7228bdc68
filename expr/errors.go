package expr

import "errors"

// Sentinel errors for expression evaluation. Callers match them with
// errors.Is; wrapped forms carry the offending name or value.
var (
	// ErrUndefinedVariable is returned when a Variable has no binding in the Env.
	ErrUndefinedVariable = errors.New("expr: undefined variable")

	// ErrDivisionByZero is returned when a divisor evaluates to exactly 0.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrDomain is returned for log of a non-positive value or sqrt of a
	// negative value. Domain violations never pass through as silent NaNs.
	ErrDomain = errors.New("expr: argument outside function domain")

	// ErrUnknownOperator is returned when a Binary carries an Op outside
	// the supported set.
	ErrUnknownOperator = errors.New("expr: unknown binary operator")

	// ErrUnknownFunction is returned when a Function carries a name outside
	// the built-in set.
	ErrUnknownFunction = errors.New("expr: unknown function")

	// ErrEquationOperand is returned when an Equation is evaluated as a
	// value. Equations are solved, not evaluated.
	ErrEquationOperand = errors.New("expr: equation used as a value")
)
