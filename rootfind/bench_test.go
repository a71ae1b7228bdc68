package rootfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathdsl/rootfind"
)

// BenchmarkNewtonRaphson_Sqrt2 measures a full convergence run to √2.
func BenchmarkNewtonRaphson_Sqrt2(b *testing.B) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	for i := 0; i < b.N; i++ {
		if _, err := rootfind.NewtonRaphson(f, df, 1.0); err != nil {
			b.Fatalf("NewtonRaphson failed: %v", err)
		}
	}
}

// BenchmarkBisection_Sqrt2 measures bracket refinement of [1, 2] to √2.
func BenchmarkBisection_Sqrt2(b *testing.B) {
	f := func(x float64) float64 { return x*x - 2 }

	for i := 0; i < b.N; i++ {
		if _, err := rootfind.Bisection(f, 1, 2); err != nil {
			b.Fatalf("Bisection failed: %v", err)
		}
	}
}

// BenchmarkFindAllRoots_Sine measures the five-root sweep of sin over
// [-7, 7] with step 0.1.
func BenchmarkFindAllRoots_Sine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.FindAllRoots(math.Sin, -7, 7, 0.1); err != nil {
			b.Fatalf("FindAllRoots failed: %v", err)
		}
	}
}
