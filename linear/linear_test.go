package linear_test

import (
	"testing"

	"github.com/katalvlaran/mathdsl/expr"
	"github.com/katalvlaran/mathdsl/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v float64) *expr.Number    { return &expr.Number{Value: v} }
func vr(name string) *expr.Variable { return &expr.Variable{Name: name} }
func bin(op expr.Op, l, r expr.Node) *expr.Binary {
	return &expr.Binary{Op: op, Left: l, Right: r}
}

// TestExtract_AffineBasics verifies extraction of a plain affine tree.
func TestExtract_AffineBasics(t *testing.T) {
	// 2*x + 3
	form, err := linear.Extract(bin(expr.OpAdd, bin(expr.OpMul, num(2), vr("x")), num(3)))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 2}, form.Coeffs)
	assert.Equal(t, []string{"x"}, form.Vars)
	assert.Equal(t, 3.0, form.Constant)
}

// TestExtract_ResidualRoundTrip covers the canonical round trip: the
// residual of 2*x + 3 = 7 extracts to coefficient 2 and constant -4,
// and solving yields x = 2.
func TestExtract_ResidualRoundTrip(t *testing.T) {
	lhs := bin(expr.OpAdd, bin(expr.OpMul, num(2), vr("x")), num(3))
	residual := bin(expr.OpSub, lhs, num(7))

	form, err := linear.Extract(residual)
	require.NoError(t, err)
	assert.Equal(t, 2.0, form.Coeffs["x"])
	assert.Equal(t, -4.0, form.Constant)

	name, val, err := linear.SolveSingle(form)
	require.NoError(t, err)
	assert.Equal(t, "x", name)
	assert.Equal(t, 2.0, val)
}

// TestExtract_FirstSeenOrder verifies Vars records variables in
// left-to-right discovery order with merged coefficients.
func TestExtract_FirstSeenOrder(t *testing.T) {
	// x + 2*y + x
	tree := bin(expr.OpAdd,
		bin(expr.OpAdd, vr("x"), bin(expr.OpMul, num(2), vr("y"))),
		vr("x"))

	form, err := linear.Extract(tree)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, form.Vars)
	assert.Equal(t, map[string]float64{"x": 2, "y": 2}, form.Coeffs)
}

// TestExtract_CancellationKeepsEntry ensures x - x extracts to an
// explicit zero coefficient, not an empty form.
func TestExtract_CancellationKeepsEntry(t *testing.T) {
	form, err := linear.Extract(bin(expr.OpSub, vr("x"), vr("x")))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, form.Vars, "cancelled variable keeps its slot")
	assert.Equal(t, 0.0, form.Coeffs["x"])
	assert.Equal(t, 0.0, form.Constant)
}

// TestExtract_ConstantScaling covers constant*linear in both operand
// orders and constant division.
func TestExtract_ConstantScaling(t *testing.T) {
	// 3 * (x + 1)
	form, err := linear.Extract(bin(expr.OpMul, num(3), bin(expr.OpAdd, vr("x"), num(1))))
	require.NoError(t, err)
	assert.Equal(t, 3.0, form.Coeffs["x"])
	assert.Equal(t, 3.0, form.Constant)

	// (x + 1) * 3
	form, err = linear.Extract(bin(expr.OpMul, bin(expr.OpAdd, vr("x"), num(1)), num(3)))
	require.NoError(t, err)
	assert.Equal(t, 3.0, form.Coeffs["x"])
	assert.Equal(t, 3.0, form.Constant)

	// (2*x + 4) / 2
	form, err = linear.Extract(bin(expr.OpDiv, bin(expr.OpAdd, bin(expr.OpMul, num(2), vr("x")), num(4)), num(2)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, form.Coeffs["x"])
	assert.Equal(t, 2.0, form.Constant)
}

// TestExtract_Nested verifies coefficient accumulation through nesting:
// 2*(3*x - 1) + x/2 = 6.5*x - 2.
func TestExtract_Nested(t *testing.T) {
	tree := bin(expr.OpAdd,
		bin(expr.OpMul, num(2), bin(expr.OpSub, bin(expr.OpMul, num(3), vr("x")), num(1))),
		bin(expr.OpDiv, vr("x"), num(2)))

	form, err := linear.Extract(tree)
	require.NoError(t, err)
	assert.Equal(t, 6.5, form.Coeffs["x"])
	assert.Equal(t, -2.0, form.Constant)
}

// TestExtract_NonLinearShapes enumerates the shapes that must fail with
// ErrNonLinear.
func TestExtract_NonLinearShapes(t *testing.T) {
	cases := []struct {
		name string
		tree expr.Node
	}{
		{"variable product", bin(expr.OpMul, vr("x"), vr("y"))},
		{"cancelled-left product", bin(expr.OpMul, bin(expr.OpSub, vr("x"), vr("x")), vr("y"))},
		{"variable divisor", bin(expr.OpDiv, num(1), vr("x"))},
		{"power term", bin(expr.OpPow, vr("x"), num(2))},
		{"function call", &expr.Function{Name: expr.FuncSin, Arg: vr("x")}},
		{"equation node", &expr.Equation{LHS: vr("x"), RHS: num(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := linear.Extract(tc.tree)
			assert.ErrorIs(t, err, linear.ErrNonLinear)
		})
	}
}

// TestExtract_DivisionByZeroConstant ensures dividing by a zero constant
// reports the evaluation taxonomy's division error, not ErrNonLinear.
func TestExtract_DivisionByZeroConstant(t *testing.T) {
	_, err := linear.Extract(bin(expr.OpDiv, vr("x"), num(0)))
	assert.ErrorIs(t, err, expr.ErrDivisionByZero)
	assert.NotErrorIs(t, err, linear.ErrNonLinear)
}

// TestSolveSingle_Verdicts covers the exact solve and all degenerate
// outcomes.
func TestSolveSingle_Verdicts(t *testing.T) {
	// 2x - 4 = 0 -> x = 2
	name, val, err := linear.SolveSingle(linear.Form{
		Coeffs: map[string]float64{"x": 2}, Vars: []string{"x"}, Constant: -4,
	})
	require.NoError(t, err)
	assert.Equal(t, "x", name)
	assert.Equal(t, 2.0, val)

	// 0x + 5 = 0 -> contradiction
	_, _, err = linear.SolveSingle(linear.Form{
		Coeffs: map[string]float64{"x": 0}, Vars: []string{"x"}, Constant: 5,
	})
	assert.ErrorIs(t, err, linear.ErrNoSolution)

	// 0x + 0 = 0 -> identity
	_, _, err = linear.SolveSingle(linear.Form{
		Coeffs: map[string]float64{"x": 0}, Vars: []string{"x"}, Constant: 0,
	})
	assert.ErrorIs(t, err, linear.ErrInfiniteSolutions)

	// bare constants behave the same
	_, _, err = linear.SolveSingle(linear.Form{Coeffs: map[string]float64{}, Constant: -1})
	assert.ErrorIs(t, err, linear.ErrNoSolution)
	_, _, err = linear.SolveSingle(linear.Form{Coeffs: map[string]float64{}})
	assert.ErrorIs(t, err, linear.ErrInfiniteSolutions)

	// two distinct variables
	_, _, err = linear.SolveSingle(linear.Form{
		Coeffs: map[string]float64{"x": 1, "y": 1}, Vars: []string{"x", "y"}, Constant: 1,
	})
	assert.ErrorIs(t, err, linear.ErrTooManyVariables)
}
