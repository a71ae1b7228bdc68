package vm

import "errors"

// ErrNotCompilable reports a tree the bytecode form cannot express;
// today that is exactly the Equation node.
var ErrNotCompilable = errors.New("vm: equation nodes are solved, not compiled")

// opcode enumerates the instruction set.
type opcode uint8

const (
	opConst opcode = iota // push instr.val
	opLoad                // push env[instr.name]
	opAdd
	opSub
	opMul
	opDiv
	opPow
	opSin
	opCos
	opLog
	opSqrt
)

// mnemonics drives Disassemble; indexed by opcode.
var mnemonics = [...]string{
	opConst: "const",
	opLoad:  "load",
	opAdd:   "add",
	opSub:   "sub",
	opMul:   "mul",
	opDiv:   "div",
	opPow:   "pow",
	opSin:   "sin",
	opCos:   "cos",
	opLog:   "log",
	opSqrt:  "sqrt",
}

// instr is one instruction; val and name are meaningful only for
// opConst and opLoad respectively.
type instr struct {
	op   opcode
	val  float64
	name string
}

// Program is an immutable compiled expression. The zero value is not
// usable; obtain one from Compile.
type Program struct {
	code     []instr
	maxStack int
}
