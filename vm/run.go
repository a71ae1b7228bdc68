package vm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/mathdsl/expr"
)

// Run replays the program against env and returns the value the tree
// walker would have produced, bit for bit, including NaN propagation
// through pow.
//
// Parameters:
//   - env: variable bindings; a nil Env resolves nothing.
//
// Returns the value, or the first error in instruction order, which is
// the evaluator's depth-first, left-to-right order.
//
// Complexity: O(len program) time, one stack allocation.
//
// Errors: expr.ErrUndefinedVariable, expr.ErrDivisionByZero,
// expr.ErrDomain; wrapped exactly as expr.Evaluate wraps them.
func (p *Program) Run(env expr.Env) (float64, error) {
	stack := make([]float64, 0, p.maxStack)

	for _, ins := range p.code {
		switch ins.op {
		case opConst:
			stack = append(stack, ins.val)

		case opLoad:
			v, ok := env[ins.name]
			if !ok {
				return 0, fmt.Errorf("%w: %q", expr.ErrUndefinedVariable, ins.name)
			}
			stack = append(stack, v)

		case opAdd, opSub, opMul, opDiv, opPow:
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-1]

			r, err := arith(ins.op, left, right)
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = r

		case opSin, opCos, opLog, opSqrt:
			r, err := unary(ins.op, stack[len(stack)-1])
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = r

		default:
			return 0, fmt.Errorf("vm: corrupted program: opcode %d", ins.op)
		}
	}

	return stack[0], nil
}

// arith folds one binary instruction.
func arith(op opcode, left, right float64) (float64, error) {
	switch op {
	case opAdd:
		return left + right, nil
	case opSub:
		return left - right, nil
	case opMul:
		return left * right, nil
	case opDiv:
		if right == 0 {
			return 0, expr.ErrDivisionByZero
		}

		return left / right, nil
	default: // opPow
		return math.Pow(left, right), nil
	}
}

// unary folds one function instruction.
func unary(op opcode, arg float64) (float64, error) {
	switch op {
	case opSin:
		return math.Sin(arg), nil
	case opCos:
		return math.Cos(arg), nil
	case opLog:
		if arg <= 0 {
			return 0, fmt.Errorf("%w: log(%v)", expr.ErrDomain, arg)
		}

		return math.Log(arg), nil
	default: // opSqrt
		if arg < 0 {
			return 0, fmt.Errorf("%w: sqrt(%v)", expr.ErrDomain, arg)
		}

		return math.Sqrt(arg), nil
	}
}

// Disassemble renders the program one instruction per line, for tests
// and debugging.
func (p *Program) Disassemble() string {
	var sb strings.Builder
	for i, ins := range p.code {
		fmt.Fprintf(&sb, "%04d %s", i, mnemonics[ins.op])
		switch ins.op {
		case opConst:
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(ins.val, 'g', -1, 64))
		case opLoad:
			sb.WriteByte(' ')
			sb.WriteString(ins.name)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
