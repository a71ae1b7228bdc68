package solve_test

import (
	"testing"

	"github.com/katalvlaran/mathdsl/expr"
	"github.com/katalvlaran/mathdsl/solve"
)

// benchmarkEquation runs the solver over a fixed equation and fails the
// benchmark on any solver error.
func benchmarkEquation(b *testing.B, eq *expr.Equation) {
	b.Helper()
	env := expr.Env{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.Equation(eq, env); err != nil {
			b.Fatalf("Equation failed: %v", err)
		}
	}
}

// BenchmarkEquation_PowerShortcut measures the closed-form stage.
func BenchmarkEquation_PowerShortcut(b *testing.B) {
	eq := &expr.Equation{
		LHS: &expr.Binary{
			Op:    expr.OpPow,
			Left:  &expr.Variable{Name: "x"},
			Right: &expr.Number{Value: 2},
		},
		RHS: &expr.Number{Value: 9},
	}
	benchmarkEquation(b, eq)
}

// BenchmarkEquation_Linear measures the exact linear stage.
func BenchmarkEquation_Linear(b *testing.B) {
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
	benchmarkEquation(b, eq)
}

// BenchmarkEquation_Newton measures the multi-seed numeric stage on
// x * x = 2, which evades both exact stages.
func BenchmarkEquation_Newton(b *testing.B) {
	eq := &expr.Equation{
		LHS: &expr.Binary{
			Op:    expr.OpMul,
			Left:  &expr.Variable{Name: "x"},
			Right: &expr.Variable{Name: "x"},
		},
		RHS: &expr.Number{Value: 2},
	}
	benchmarkEquation(b, eq)
}
