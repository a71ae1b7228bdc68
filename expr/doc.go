// Package expr defines the expression tree at the heart of mathdsl:
// a closed set of node types plus the polymorphic operations that walk it.
//
// 🚀 What is an expression tree?
//
//	Every formula the engine touches is a tree of immutable-by-convention
//	nodes:
//	  • Number   : an IEEE-754 float64 literal
//	  • Variable : a named value resolved against an Env at evaluation time
//	  • Binary   : one of + - * / ^ applied to two subtrees
//	  • Function : sin, cos, log (natural) or sqrt applied to one subtree
//	  • Equation : lhs = rhs, only ever the root, never an operand
//
// ✨ Key operations:
//   - Evaluate(node, env): numeric value or a precise, matchable error
//   - CollectVariables(node): every variable occurrence, left to right
//   - Clone(node): a deep copy sharing no nodes with the original
//   - Node.String(): minimal-parenthesization rendering of the tree
//   - Dump(node): indented multi-line rendering for AST inspection
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathdsl/expr"
//
//	// 2*x + 3
//	tree := &expr.Binary{
//	  Op:   expr.OpAdd,
//	  Left: &expr.Binary{Op: expr.OpMul, Left: &expr.Number{Value: 2}, Right: &expr.Variable{Name: "x"}},
//	  Right: &expr.Number{Value: 3},
//	}
//	v, err := expr.Evaluate(tree, expr.Env{"x": 2}) // 7, nil
//
// Error taxonomy (all matchable with errors.Is):
//   - ErrUndefinedVariable : a Variable has no binding in the Env
//   - ErrDivisionByZero    : the divisor evaluated to exactly 0
//   - ErrDomain            : log of a non-positive value, sqrt of a negative
//   - ErrUnknownOperator   : a Binary carries an Op outside + - * / ^
//   - ErrUnknownFunction   : a Function carries a name outside the built-ins
//   - ErrEquationOperand   : an Equation was evaluated as if it were a value
//
// All of expr is deterministic and allocation-light; no operation mutates
// its input tree.
package expr
