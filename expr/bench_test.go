package expr_test

import (
	"testing"

	"github.com/katalvlaran/mathdsl/expr"
)

// buildChain returns ((x + 1) + 1) + ... with n additions, a deep
// left-leaning tree that stresses the recursive walkers.
func buildChain(n int) expr.Node {
	var tree expr.Node = &expr.Variable{Name: "x"}
	for i := 0; i < n; i++ {
		tree = &expr.Binary{Op: expr.OpAdd, Left: tree, Right: &expr.Number{Value: 1}}
	}

	return tree
}

// benchmarkEvaluate runs Evaluate over a chain of the given depth.
func benchmarkEvaluate(b *testing.B, depth int) {
	tree := buildChain(depth)
	env := expr.Env{"x": 1}

	b.ResetTimer() // ignore tree construction
	for i := 0; i < b.N; i++ {
		if _, err := expr.Evaluate(tree, env); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}

// BenchmarkEvaluate_Shallow evaluates a 10-node chain.
func BenchmarkEvaluate_Shallow(b *testing.B) { benchmarkEvaluate(b, 10) }

// BenchmarkEvaluate_Deep evaluates a 1000-node chain.
func BenchmarkEvaluate_Deep(b *testing.B) { benchmarkEvaluate(b, 1000) }

// BenchmarkClone_Deep deep-copies a 1000-node chain.
func BenchmarkClone_Deep(b *testing.B) {
	tree := buildChain(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = expr.Clone(tree)
	}
}

// BenchmarkCollectVariables_Deep walks a 1000-node chain.
func BenchmarkCollectVariables_Deep(b *testing.B) {
	tree := buildChain(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = expr.CollectVariables(tree)
	}
}
