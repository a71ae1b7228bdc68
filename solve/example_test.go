package solve_test

import (
	"fmt"

	"github.com/katalvlaran/mathdsl/expr"
	"github.com/katalvlaran/mathdsl/solve"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEquation
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Solve x^2 = 9. The even exponent admits two real roots, reported
//	under x and x_neg.
//
// Complexity: O(1), closed-form shortcut
func ExampleEquation() {
	eq := &expr.Equation{
		LHS: &expr.Binary{
			Op:    expr.OpPow,
			Left:  &expr.Variable{Name: "x"},
			Right: &expr.Number{Value: 2},
		},
		RHS: &expr.Number{Value: 9},
	}

	sol, err := solve.Equation(eq, expr.Env{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sol)
	// Output:
	// {x: 3, x_neg: -3}
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEquation (linear)
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Solve 2*x + 3 = 7 exactly through the linear stage and feed the
//	binding back into an environment.
func ExampleEquation_linear() {
	eq := &expr.Equation{
		LHS: &expr.Binary{
			Op: expr.OpAdd,
			Left: &expr.Binary{
				Op:    expr.OpMul,
				Left:  &expr.Number{Value: 2},
				Right: &expr.Variable{Name: "x"},
			},
			Right: &expr.Number{Value: 3},
		},
		RHS: &expr.Number{Value: 7},
	}

	env := expr.Env{}
	sol, err := solve.Equation(eq, env)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	sol.Apply(env)

	fmt.Println(sol)
	fmt.Println("x =", env["x"])
	// Output:
	// {x: 2}
	// x = 2
}
