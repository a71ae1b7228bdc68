// Package interp executes parsed statements against a persistent
// variable environment, the way a REPL or script runner needs it.
//
// 🚀 A Session owns one expr.Env and runs statements against it:
//
//	assignment  x = 2*3;     evaluates, binds x, echoes the value
//	equation    x^2 = 9;     solves, applies every root binding
//	expression  x + 1;       evaluates and reports the value
//
// ✨ Guarantees:
//   - A failed statement leaves the environment exactly as it was;
//     bindings are written only after the whole statement succeeded.
//   - A successful solve applies all of its bindings (x, x_neg, x_1, …),
//     so later statements can refer to them.
//   - Sessions are independent; each owns its environment.
//
// ⚙️ Usage:
//
//	s := interp.NewSession()
//	out, err := s.ExecString("2*x + 3 = 7;") // Solved{x: 2}
//	out, err = s.ExecString("x * 10;")       // Value 20
//
// Outcome is a small closed union (*Value, *Assigned, *Solved); its
// String method renders what a front end prints.
//
// WithCompiledEval routes plain evaluation through the vm bytecode
// instead of the tree walker; results are identical by the vm parity
// contract.
package interp
