// Package parse turns DSL source text into expr trees and statements.
//
// 🚀 Grammar (precedence climbing, loosest to tightest):
//
//	statement = IDENT "=" expr ";"        → Assign
//	          | expr "=" expr ";"         → SolveEq (an *expr.Equation)
//	          | expr ";"                  → Eval
//	expr      = term  { ("+" | "-") term }
//	term      = unary { ("*" | "/") unary }
//	unary     = "-" unary | power
//	power     = atom  [ "^" unary ]       (right-associative)
//	atom      = NUMBER | IDENT | IDENT "(" expr ")" | "(" expr ")"
//
// An assignment target is a bare identifier directly followed by "=";
// any other shape on the left of "=" makes the statement an equation
// to solve. Unary minus lowers to 0 - operand, so the tree never
// carries a dedicated negation node.
//
// ✨ Entry points:
//   - Statement(src): exactly one ";"-terminated statement
//   - Statements(src): a whole script, statement by statement
//   - Expression(src): a bare expression, no terminator
//
// ⚙️ Usage:
//
//	stmt, err := parse.Statement("2*x + 3 = 7;")
//	eq := stmt.(*parse.SolveEq).Eq // *expr.Equation
//
// Errors carry the 1-based line:column of the offending input and are
// matchable with errors.Is: ErrEmptyInput, ErrBadNumber,
// ErrUnknownFunction, ErrUnexpectedToken, ErrUnexpectedEOF.
package parse
