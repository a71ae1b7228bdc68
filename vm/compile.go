package vm

import (
	"fmt"

	"github.com/katalvlaran/mathdsl/expr"
)

// binaryOps maps tree operators to their instruction.
var binaryOps = map[expr.Op]opcode{
	expr.OpAdd: opAdd,
	expr.OpSub: opSub,
	expr.OpMul: opMul,
	expr.OpDiv: opDiv,
	expr.OpPow: opPow,
}

// functionOps maps built-in functions to their instruction.
var functionOps = map[expr.FuncName]opcode{
	expr.FuncSin:  opSin,
	expr.FuncCos:  opCos,
	expr.FuncLog:  opLog,
	expr.FuncSqrt: opSqrt,
}

// Compile flattens n into a Program, emitting instructions in
// post-order so every operator finds its operands on the stack.
//
// Parameters:
//   - n: the tree to compile; the tree is only read.
//
// Returns:
//   - a Program replayable any number of times against any Env.
//
// Complexity: O(n) nodes, single pass.
//
// Errors: ErrNotCompilable for Equation nodes anywhere in the tree,
// expr.ErrUnknownOperator / expr.ErrUnknownFunction for trees the
// evaluator would also reject.
func Compile(n expr.Node) (*Program, error) {
	c := &compiler{}
	if err := c.emit(n); err != nil {
		return nil, err
	}

	return &Program{code: c.code, maxStack: c.maxDepth}, nil
}

// compiler accumulates instructions and tracks the worst-case stack
// depth so Run can allocate exactly once.
type compiler struct {
	code     []instr
	depth    int
	maxDepth int
}

// push records the stack effect of an instruction that grows the stack.
func (c *compiler) push(ins instr) {
	c.code = append(c.code, ins)
	c.depth++
	if c.depth > c.maxDepth {
		c.maxDepth = c.depth
	}
}

// emit appends the instructions for n, children first.
func (c *compiler) emit(n expr.Node) error {
	switch t := n.(type) {
	case *expr.Number:
		c.push(instr{op: opConst, val: t.Value})

		return nil

	case *expr.Variable:
		c.push(instr{op: opLoad, name: t.Name})

		return nil

	case *expr.Binary:
		op, ok := binaryOps[t.Op]
		if !ok {
			return fmt.Errorf("%w: %q", expr.ErrUnknownOperator, t.Op.String())
		}
		if err := c.emit(t.Left); err != nil {
			return err
		}
		if err := c.emit(t.Right); err != nil {
			return err
		}
		c.code = append(c.code, instr{op: op})
		c.depth-- // two operands popped, one result pushed

		return nil

	case *expr.Function:
		op, ok := functionOps[t.Name]
		if !ok {
			return fmt.Errorf("%w: %q", expr.ErrUnknownFunction, string(t.Name))
		}
		if err := c.emit(t.Arg); err != nil {
			return err
		}
		c.code = append(c.code, instr{op: op})

		return nil

	case *expr.Equation:
		return ErrNotCompilable

	default:
		return fmt.Errorf("vm: unhandled node type %T", n)
	}
}
