package parse

import (
	"errors"

	"github.com/katalvlaran/mathdsl/expr"
)

var (
	// ErrEmptyInput reports source text containing no statement at all.
	ErrEmptyInput = errors.New("parse: empty input")
	// ErrBadNumber reports a numeric literal strconv cannot digest.
	ErrBadNumber = errors.New("parse: malformed number literal")
	// ErrUnknownFunction reports a call to a name outside sin, cos, log, sqrt.
	ErrUnknownFunction = errors.New("parse: unknown function")
	// ErrUnexpectedToken reports a token the grammar does not allow here.
	ErrUnexpectedToken = errors.New("parse: unexpected token")
	// ErrUnexpectedEOF reports input that stops mid-statement.
	ErrUnexpectedEOF = errors.New("parse: unexpected end of input")
)

// Stmt is the closed set of executable units the grammar accepts.
// The concrete types are *Assign, *SolveEq and *Eval.
type Stmt interface {
	// String renders the statement in canonical source form, without
	// the trailing semicolon.
	String() string

	isStatement()
}

// Assign binds the value of an expression to a variable name.
type Assign struct {
	Name  string
	Value expr.Node
}

// SolveEq asks the solver for the roots of an equation.
type SolveEq struct {
	Eq *expr.Equation
}

// Eval computes the value of a bare expression.
type Eval struct {
	Expr expr.Node
}

func (a *Assign) String() string  { return a.Name + " = " + a.Value.String() }
func (s *SolveEq) String() string { return s.Eq.String() }
func (e *Eval) String() string    { return e.Expr.String() }

func (*Assign) isStatement()  {}
func (*SolveEq) isStatement() {}
func (*Eval) isStatement()    {}
