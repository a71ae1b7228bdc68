package derive

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mathdsl/expr"
)

// ErrUnsupportedDerivative is returned when a `^` node carries an
// exponent that is not a literal Number. The power rule handles f^c for
// constant c only; variable exponents are out of scope.
var ErrUnsupportedDerivative = errors.New("derive: power rule requires a literal numeric exponent")

// Derivative returns a new tree representing d(n)/d(v), built
// symbolically so the result can be evaluated or differentiated again.
//
// Parameters:
//   - n: root of the tree to differentiate (never mutated).
//   - v: name of the variable to differentiate with respect to.
//
// Returns the derivative tree. It shares no nodes with n: every input
// subtree reused by a rule is deep-cloned first.
//
// Complexity: O(size of tree) node visits; product/quotient/power rules
// clone their operands, so the result can be larger than the input.
//
// Errors: ErrUnsupportedDerivative, plus expr.ErrUnknownOperator and
// expr.ErrUnknownFunction for malformed nodes.
func Derivative(n expr.Node, v string) (expr.Node, error) {
	switch t := n.(type) {
	case *expr.Number:
		return &expr.Number{Value: 0}, nil

	case *expr.Variable:
		if t.Name == v {
			return &expr.Number{Value: 1}, nil
		}

		return &expr.Number{Value: 0}, nil

	case *expr.Binary:
		return binaryRule(t, v)

	case *expr.Function:
		return functionRule(t, v)

	case *expr.Equation:
		dl, err := Derivative(t.LHS, v)
		if err != nil {
			return nil, err
		}
		dr, err := Derivative(t.RHS, v)
		if err != nil {
			return nil, err
		}

		return &expr.Equation{LHS: dl, RHS: dr}, nil

	default:
		return nil, fmt.Errorf("derive: unhandled node type %T", n)
	}
}

// binaryRule dispatches the sum, difference, product, quotient and
// power rules.
func binaryRule(t *expr.Binary, v string) (expr.Node, error) {
	// The power rule inspects the raw exponent before differentiating it.
	if t.Op == expr.OpPow {
		return powerRule(t, v)
	}

	dl, err := Derivative(t.Left, v)
	if err != nil {
		return nil, err
	}
	dr, err := Derivative(t.Right, v)
	if err != nil {
		return nil, err
	}

	switch t.Op {
	case expr.OpAdd, expr.OpSub:
		return &expr.Binary{Op: t.Op, Left: dl, Right: dr}, nil

	case expr.OpMul:
		// (f*g)' = f'*g + f*g'
		return &expr.Binary{
			Op:    expr.OpAdd,
			Left:  &expr.Binary{Op: expr.OpMul, Left: dl, Right: expr.Clone(t.Right)},
			Right: &expr.Binary{Op: expr.OpMul, Left: expr.Clone(t.Left), Right: dr},
		}, nil

	case expr.OpDiv:
		// (f/g)' = (f'*g - f*g') / g^2
		numerator := &expr.Binary{
			Op:    expr.OpSub,
			Left:  &expr.Binary{Op: expr.OpMul, Left: dl, Right: expr.Clone(t.Right)},
			Right: &expr.Binary{Op: expr.OpMul, Left: expr.Clone(t.Left), Right: dr},
		}
		denominator := &expr.Binary{
			Op:    expr.OpPow,
			Left:  expr.Clone(t.Right),
			Right: &expr.Number{Value: 2},
		}

		return &expr.Binary{Op: expr.OpDiv, Left: numerator, Right: denominator}, nil

	default:
		return nil, fmt.Errorf("%w: %q in derivative", expr.ErrUnknownOperator, t.Op)
	}
}

// powerRule handles f^c for a literal exponent c:
// (f^c)' = c * f^(c-1) * f'.
func powerRule(t *expr.Binary, v string) (expr.Node, error) {
	exp, ok := t.Right.(*expr.Number)
	if !ok {
		return nil, fmt.Errorf("%w: exponent %s", ErrUnsupportedDerivative, t.Right)
	}

	dbase, err := Derivative(t.Left, v)
	if err != nil {
		return nil, err
	}

	scaled := &expr.Binary{
		Op:   expr.OpMul,
		Left: &expr.Number{Value: exp.Value},
		Right: &expr.Binary{
			Op:    expr.OpPow,
			Left:  expr.Clone(t.Left),
			Right: &expr.Number{Value: exp.Value - 1},
		},
	}

	return &expr.Binary{Op: expr.OpMul, Left: scaled, Right: dbase}, nil
}

// functionRule applies the chain rule through the four built-ins.
func functionRule(t *expr.Function, v string) (expr.Node, error) {
	darg, err := Derivative(t.Arg, v)
	if err != nil {
		return nil, err
	}

	switch t.Name {
	case expr.FuncSin:
		// cos(f) * f'
		return &expr.Binary{
			Op:    expr.OpMul,
			Left:  &expr.Function{Name: expr.FuncCos, Arg: expr.Clone(t.Arg)},
			Right: darg,
		}, nil

	case expr.FuncCos:
		// -1 * sin(f) * f'
		negSin := &expr.Binary{
			Op:    expr.OpMul,
			Left:  &expr.Number{Value: -1},
			Right: &expr.Function{Name: expr.FuncSin, Arg: expr.Clone(t.Arg)},
		}

		return &expr.Binary{Op: expr.OpMul, Left: negSin, Right: darg}, nil

	case expr.FuncLog:
		// f' / f
		return &expr.Binary{Op: expr.OpDiv, Left: darg, Right: expr.Clone(t.Arg)}, nil

	case expr.FuncSqrt:
		// f' / (2 * sqrt(f))
		twice := &expr.Binary{
			Op:    expr.OpMul,
			Left:  &expr.Number{Value: 2},
			Right: &expr.Function{Name: expr.FuncSqrt, Arg: expr.Clone(t.Arg)},
		}

		return &expr.Binary{Op: expr.OpDiv, Left: darg, Right: twice}, nil

	default:
		return nil, fmt.Errorf("%w: %q in derivative", expr.ErrUnknownFunction, string(t.Name))
	}
}
