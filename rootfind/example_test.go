package rootfind_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mathdsl/rootfind"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewtonRaphson
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Find √2 as the zero of f(x) = x^2 - 2, seeded at 1.0. The quadratic
//	convergence of Newton-Raphson reaches the 1e-10 default tolerance in
//	a handful of iterations.
func ExampleNewtonRaphson() {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	root, err := rootfind.NewtonRaphson(f, df, 1.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.6f\n", root)
	// Output:
	// 1.414214
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBisection
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Refine the bracket [3, 4], where sin changes sign, down to π.
//	Bisection needs no derivative, only the sign change.
func ExampleBisection() {
	root, err := rootfind.Bisection(math.Sin, 3, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", root)
	// Output:
	// 3.1416
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFindAllRoots
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Sweep sin over [-7, 7] in steps of 0.1: five sign changes, five
//	roots, reported in ascending discovery order.
func ExampleFindAllRoots() {
	roots, err := rootfind.FindAllRoots(math.Sin, -7, 7, 0.1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("count=%d first=%.4f last=%.4f\n", len(roots), roots[0], roots[len(roots)-1])
	// Output:
	// count=5 first=-6.2832 last=6.2832
}
