package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathdsl/expr"
	"github.com/katalvlaran/mathdsl/parse"
)

// evalStr parses src as a bare expression and evaluates it against env.
func evalStr(t *testing.T, src string, env expr.Env) float64 {
	t.Helper()

	n, err := parse.Expression(src)
	require.NoError(t, err, "parse %q", src)

	v, err := expr.Evaluate(n, env)
	require.NoError(t, err, "evaluate %q", src)

	return v
}

// TestStatement_Assign verifies that a bare identifier followed by "="
// parses as an assignment.
func TestStatement_Assign(t *testing.T) {
	stmt, err := parse.Statement("x = 2*3 + 1;")
	require.NoError(t, err)

	asg, ok := stmt.(*parse.Assign)
	require.True(t, ok, "IDENT = expr ; must parse as *Assign")

	assert.Equal(t, "x", asg.Name)
	assert.Equal(t, "x = 2 * 3 + 1", asg.String())

	v, err := expr.Evaluate(asg.Value, expr.Env{})
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

// TestStatement_SolveEq verifies that any non-assignment "=" parses as
// an equation to solve.
func TestStatement_SolveEq(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2*x + 3 = 7;", "2 * x + 3 = 7"},
		{"x^2 = 9;", "x ^ 2 = 9"},
		{"3 = x;", "3 = x"},
		{"x + 0 = 3;", "x + 0 = 3"},
	}
	for _, tc := range cases {
		stmt, err := parse.Statement(tc.src)
		require.NoError(t, err, "parse %q", tc.src)

		eq, ok := stmt.(*parse.SolveEq)
		require.True(t, ok, "%q must parse as *SolveEq", tc.src)
		assert.Equal(t, tc.want, eq.String())
	}
}

// TestStatement_Eval verifies that a bare expression statement parses
// as *Eval.
func TestStatement_Eval(t *testing.T) {
	stmt, err := parse.Statement("sin(0) + 1;")
	require.NoError(t, err)

	ev, ok := stmt.(*parse.Eval)
	require.True(t, ok)
	assert.Equal(t, "sin(0) + 1", ev.String())
}

// TestExpression_Precedence verifies operator binding and associativity
// by evaluating parsed constant expressions.
func TestExpression_Precedence(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"2 + 3*4", 14},
		{"2*3 + 4", 10},
		{"(2 + 3)*4", 20},
		{"2^3^2", 512},  // right-associative: 2^(3^2)
		{"-2^2", -4},    // unary minus binds looser than ^
		{"2^-3", 0.125}, // signed exponent
		{"10 - 4 - 3", 3},
		{"16/4/2", 2},
		{"-(2 + 3)", -5},
		{"--3", 3},
		{"2 - -3", 5},
		{".5 + 1.5", 2},
		{"1e3 + 1", 1001},
		{"1.5e-2", 1.5e-2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, evalStr(t, tc.src, expr.Env{}), "source %q", tc.src)
	}
}

// TestExpression_Variables verifies identifier lexing and environment
// resolution through the parser.
func TestExpression_Variables(t *testing.T) {
	env := expr.Env{"x_1": 2, "var2": 3}
	assert.Equal(t, 8.0, evalStr(t, "x_1 * var2 + x_1", env))
}

// TestExpression_FunctionCalls verifies the built-in call syntax and
// the unknown-callee rejection.
func TestExpression_FunctionCalls(t *testing.T) {
	assert.Equal(t, 4.0, evalStr(t, "sqrt(sin(0) + 16)", expr.Env{}))
	assert.Equal(t, 0.0, evalStr(t, "log(1)", expr.Env{}))

	_, err := parse.Expression("tan(1)")
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrUnknownFunction)
	assert.Contains(t, err.Error(), `"tan"`)
}

// TestExpression_RoundTrip verifies that rendering a parsed tree and
// parsing it back is a fixed point.
func TestExpression_RoundTrip(t *testing.T) {
	sources := []string{
		"2*x+3",
		"(1+x)*3",
		"x^2^3",
		"(x^2)^3",
		"x-(y-1)",
		"1/(2*x)",
		"sin(x+1)",
		"sqrt(x)/cos(y)",
	}
	for _, src := range sources {
		first, err := parse.Expression(src)
		require.NoError(t, err, "parse %q", src)

		second, err := parse.Expression(first.String())
		require.NoError(t, err, "reparse %q", first.String())

		assert.Equal(t, first.String(), second.String(), "source %q", src)
	}
}

// TestStatement_Errors verifies the error taxonomy and that messages
// carry a 1-based line:column position.
func TestStatement_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", parse.ErrEmptyInput},
		{"blank", "  \n\t ", parse.ErrEmptyInput},
		{"operand missing", "2 +;", parse.ErrUnexpectedToken},
		{"terminator missing", "2 + 3", parse.ErrUnexpectedEOF},
		{"paren unclosed at semi", "(2 + 3;", parse.ErrUnexpectedToken},
		{"paren unclosed at eof", "(2 + 3", parse.ErrUnexpectedEOF},
		{"double dot literal", "1.2.3;", parse.ErrBadNumber},
		{"dangling exponent", "2e;", parse.ErrBadNumber},
		{"unknown callee", "tan(1);", parse.ErrUnknownFunction},
		{"stray character", "2 @ 3;", parse.ErrUnexpectedToken},
		{"assignment without value", "x = ;", parse.ErrUnexpectedToken},
		{"chained equals", "1 = 2 = 3;", parse.ErrUnexpectedToken},
		{"trailing statement", "2; 3;", parse.ErrUnexpectedToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse.Statement(tc.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := parse.Statement("  @;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1:3", "position points at the offending byte")

	_, err = parse.Statement("x = 1;\n2 +;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2:", "line counter advances past newlines")
}

// TestStatements_Script verifies multi-statement parsing in source
// order.
func TestStatements_Script(t *testing.T) {
	stmts, err := parse.Statements("x = 1; y = x + 1;\nx + y = 3;")
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	assert.IsType(t, &parse.Assign{}, stmts[0])
	assert.IsType(t, &parse.Assign{}, stmts[1])
	assert.IsType(t, &parse.SolveEq{}, stmts[2])

	_, err = parse.Statements(" \n ")
	assert.ErrorIs(t, err, parse.ErrEmptyInput)
}

// TestStatement_TrailingGarbage verifies that the single-statement
// entry point rejects leftover input after the terminator.
func TestStatement_TrailingGarbage(t *testing.T) {
	_, err := parse.Statement("1 + 1; x")
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrUnexpectedToken)
	assert.Contains(t, err.Error(), "after statement")
}

// TestExpression_RejectsEquals verifies that "=" never appears inside a
// bare expression parse.
func TestExpression_RejectsEquals(t *testing.T) {
	_, err := parse.Expression("x = 3")
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrUnexpectedToken)
}
