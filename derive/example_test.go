package derive_test

import (
	"fmt"

	"github.com/katalvlaran/mathdsl/derive"
	"github.com/katalvlaran/mathdsl/expr"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDerivative
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Differentiate x^3 with respect to x and evaluate the slope at x = 2.
//	No simplification is applied, so the symbolic form keeps its chain
//	factor: 3 * x ^ 2 * 1.
func ExampleDerivative() {
	cube := &expr.Binary{
		Op:    expr.OpPow,
		Left:  &expr.Variable{Name: "x"},
		Right: &expr.Number{Value: 3},
	}

	d, err := derive.Derivative(cube, "x")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	slope, _ := expr.Evaluate(d, expr.Env{"x": 2})
	fmt.Println(d)
	fmt.Println(slope)
	// Output:
	// 3 * x ^ 2 * 1
	// 12
}
