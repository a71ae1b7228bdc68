package linear

import (
	"fmt"

	"github.com/katalvlaran/mathdsl/expr"
)

// Extract rewrites the tree rooted at n as a linear form, or reports why
// it cannot be rewritten.
//
// The walk is bottom-up: each subtree yields a partial form, and the
// binary cases merge or scale them. Multiplication is linear only when
// at least one operand's form is variable-free; division only when the
// divisor's form is a nonzero constant.
//
// Parameters:
//   - n: root of the tree to rewrite (never mutated).
//
// Returns the linear form with variables in first-seen order.
//
// Complexity: O(size of tree · distinct variables).
//
// Errors: ErrNonLinear (power terms, function calls, variable products
// or divisors), expr.ErrDivisionByZero (division by a zero constant),
// expr.ErrUnknownOperator (malformed nodes).
func Extract(n expr.Node) (Form, error) {
	switch t := n.(type) {
	case *expr.Number:
		return constant(t.Value), nil

	case *expr.Variable:
		return single(t.Name), nil

	case *expr.Binary:
		return extractBinary(t)

	case *expr.Function:
		return Form{}, fmt.Errorf("%w: %s(...)", ErrNonLinear, t.Name)

	case *expr.Equation:
		return Form{}, fmt.Errorf("%w: equation node is not an expression", ErrNonLinear)

	default:
		return Form{}, fmt.Errorf("linear: unhandled node type %T", n)
	}
}

func extractBinary(t *expr.Binary) (Form, error) {
	// Power terms are never linear; reject before recursing.
	if t.Op == expr.OpPow {
		return Form{}, fmt.Errorf("%w: power term", ErrNonLinear)
	}

	left, err := Extract(t.Left)
	if err != nil {
		return Form{}, err
	}
	right, err := Extract(t.Right)
	if err != nil {
		return Form{}, err
	}

	switch t.Op {
	case expr.OpAdd:
		left.merge(right, +1)

		return left, nil

	case expr.OpSub:
		left.merge(right, -1)

		return left, nil

	case expr.OpMul:
		// constant * linear stays linear, in either order
		if left.isConstant() {
			right.scale(left.Constant)

			return right, nil
		}
		if right.isConstant() {
			left.scale(right.Constant)

			return left, nil
		}

		return Form{}, fmt.Errorf("%w: product of two variable terms", ErrNonLinear)

	case expr.OpDiv:
		if !right.isConstant() {
			return Form{}, fmt.Errorf("%w: division by a variable term", ErrNonLinear)
		}
		if right.Constant == 0 {
			return Form{}, fmt.Errorf("%w in linear extraction", expr.ErrDivisionByZero)
		}
		left.divide(right.Constant)

		return left, nil

	default:
		return Form{}, fmt.Errorf("%w: %q in linear extraction", expr.ErrUnknownOperator, t.Op)
	}
}
