// Package vm compiles expression trees to a compact stack bytecode and
// re-evaluates them without walking the tree.
//
// 🚀 Why compile?
//
//	A solver probing one residual tree thousands of times pays the tree
//	walk on every probe. Compile flattens the tree once, post-order,
//	into a linear instruction slice; Run then replays it on a value
//	stack whose depth is known at compile time, so the hot loop never
//	allocates.
//
// ✨ The contract:
//
//	Run is a performance substitute for expr.Evaluate, nothing more:
//	for every compilable tree and every environment, both produce the
//	same float64 bit for bit and fail with the same error taxonomy
//	(expr.ErrUndefinedVariable, expr.ErrDivisionByZero, expr.ErrDomain).
//	No instruction adds semantics the tree walker does not have.
//
// ⚙️ Instruction set:
//
//	const <v>   push a literal
//	load  <x>   push a variable binding
//	add sub mul div pow   pop two, push one
//	sin cos log sqrt      replace the top of stack
//
// Equations are solved, never compiled: Compile rejects them with
// ErrNotCompilable.
//
// Usage:
//
//	prog, err := vm.Compile(tree)   // once
//	v, err := prog.Run(env)         // many times
//	fmt.Print(prog.Disassemble())   // debugging
package vm
