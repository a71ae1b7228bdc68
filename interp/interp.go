package interp

import (
	"fmt"

	"github.com/katalvlaran/mathdsl/expr"
	"github.com/katalvlaran/mathdsl/parse"
	"github.com/katalvlaran/mathdsl/solve"
	"github.com/katalvlaran/mathdsl/vm"
)

// Session executes statements against one persistent environment.
// A Session is not safe for concurrent use; run one per goroutine.
type Session struct {
	env        expr.Env
	solverOpts []solve.Option
	compiled   bool
}

// Option customizes a Session at construction time.
type Option func(*Session)

// WithSolverOptions forwards options to every equation solve the
// session performs.
func WithSolverOptions(opts ...solve.Option) Option {
	return func(s *Session) {
		s.solverOpts = append(s.solverOpts, opts...)
	}
}

// WithCompiledEval routes expression evaluation through compiled
// bytecode (package vm) instead of the tree walker. Results are
// identical either way; this only trades compile cost for replay speed.
func WithCompiledEval(enabled bool) Option {
	return func(s *Session) {
		s.compiled = enabled
	}
}

// WithEnv seeds the session with initial bindings, copied so the caller
// keeps ownership of its map.
func WithEnv(env expr.Env) Option {
	return func(s *Session) {
		for name, v := range env {
			s.env[name] = v
		}
	}
}

// NewSession returns an empty session ready to execute statements.
func NewSession(opts ...Option) *Session {
	s := &Session{env: expr.Env{}}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Env returns a snapshot of the current bindings. Mutating the returned
// map does not affect the session.
func (s *Session) Env() expr.Env {
	return s.env.Clone()
}

// ExecString parses exactly one statement and executes it.
//
// Parameters:
//   - src: one ";"-terminated statement.
//
// Returns the statement's Outcome. On any error, parse or execution,
// the environment is left unchanged.
func (s *Session) ExecString(src string) (Outcome, error) {
	stmt, err := parse.Statement(src)
	if err != nil {
		return nil, err
	}

	return s.Exec(stmt)
}

// ExecScript parses src as a whole script and executes statement by
// statement, stopping at the first failure.
//
// Returns the outcomes of the successfully executed prefix; when err is
// non-nil the environment reflects exactly that prefix.
func (s *Session) ExecScript(src string) ([]Outcome, error) {
	stmts, err := parse.Statements(src)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(stmts))
	for _, stmt := range stmts {
		out, err := s.Exec(stmt)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}

// Exec runs one parsed statement.
//
// Semantics per statement kind:
//   - *parse.Assign: evaluate the right-hand side, then bind the name.
//   - *parse.SolveEq: solve and apply every root binding on success.
//   - *parse.Eval: evaluate and report; no bindings change.
//
// Returns the Outcome, or an error with the environment untouched.
func (s *Session) Exec(stmt parse.Stmt) (Outcome, error) {
	switch t := stmt.(type) {
	case *parse.Assign:
		v, err := s.eval(t.Value)
		if err != nil {
			return nil, err
		}
		s.env[t.Name] = v

		return &Assigned{Name: t.Name, Result: v}, nil

	case *parse.SolveEq:
		sol, err := solve.Equation(t.Eq, s.env, s.solverOpts...)
		if err != nil {
			return nil, err
		}
		sol.Apply(s.env)

		return &Solved{Solution: sol}, nil

	case *parse.Eval:
		v, err := s.eval(t.Expr)
		if err != nil {
			return nil, err
		}

		return &Value{Result: v}, nil

	default:
		return nil, fmt.Errorf("interp: unhandled statement type %T", stmt)
	}
}

// eval dispatches between the tree walker and the bytecode path.
func (s *Session) eval(n expr.Node) (float64, error) {
	if !s.compiled {
		return expr.Evaluate(n, s.env)
	}

	prog, err := vm.Compile(n)
	if err != nil {
		return 0, err
	}

	return prog.Run(s.env)
}
