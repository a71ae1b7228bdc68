package expr

import (
	"fmt"
	"math"
)

// Evaluate computes the numeric value of the tree rooted at n, resolving
// variables through env.
//
// Semantics:
//   - Arithmetic follows IEEE-754 float64 exactly; no rounding or
//     simplification is applied.
//   - `^` is math.Pow. Results such as (-8)^(1/3) = NaN propagate as
//     values, they are not errors.
//   - Division checks the divisor against exactly 0; log and sqrt check
//     their domains before calling math.
//
// Parameters:
//   - n:   root of the tree to evaluate (must be non-nil).
//   - env: variable bindings; a nil Env resolves nothing.
//
// Returns the value, or the first error encountered in a depth-first,
// left-to-right walk.
//
// Complexity: O(size of tree) time, O(depth) stack.
//
// Errors: ErrUndefinedVariable, ErrDivisionByZero, ErrDomain,
// ErrUnknownOperator, ErrUnknownFunction, ErrEquationOperand.
func Evaluate(n Node, env Env) (float64, error) {
	switch t := n.(type) {
	case *Number:
		return t.Value, nil

	case *Variable:
		val, ok := env[t.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUndefinedVariable, t.Name)
		}

		return val, nil

	case *Binary:
		left, err := Evaluate(t.Left, env)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(t.Right, env)
		if err != nil {
			return 0, err
		}

		return applyOp(t.Op, left, right)

	case *Function:
		arg, err := Evaluate(t.Arg, env)
		if err != nil {
			return 0, err
		}

		return applyFunc(t.Name, arg)

	case *Equation:
		return 0, ErrEquationOperand

	default:
		return 0, fmt.Errorf("expr: unhandled node type %T", n)
	}
}

// applyOp folds two evaluated operands under op.
func applyOp(op Op, left, right float64) (float64, error) {
	switch op {
	case OpAdd:
		return left + right, nil
	case OpSub:
		return left - right, nil
	case OpMul:
		return left * right, nil
	case OpDiv:
		if right == 0 {
			return 0, ErrDivisionByZero
		}

		return left / right, nil
	case OpPow:
		return math.Pow(left, right), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}

// applyFunc folds an evaluated argument under the built-in fn.
func applyFunc(fn FuncName, arg float64) (float64, error) {
	switch fn {
	case FuncSin:
		return math.Sin(arg), nil
	case FuncCos:
		return math.Cos(arg), nil
	case FuncLog:
		if arg <= 0 {
			return 0, fmt.Errorf("%w: log(%v)", ErrDomain, arg)
		}

		return math.Log(arg), nil
	case FuncSqrt:
		if arg < 0 {
			return 0, fmt.Errorf("%w: sqrt(%v)", ErrDomain, arg)
		}

		return math.Sqrt(arg), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, string(fn))
	}
}
