package parse

import (
	"fmt"

	"github.com/katalvlaran/mathdsl/expr"
)

// functions restricts call syntax to the built-in function set.
var functions = map[string]expr.FuncName{
	"sin":  expr.FuncSin,
	"cos":  expr.FuncCos,
	"log":  expr.FuncLog,
	"sqrt": expr.FuncSqrt,
}

// Statement parses exactly one ";"-terminated statement and requires
// the input to end there.
//
// Parameters:
//   - src: source text of a single statement.
//
// Returns:
//   - the parsed *Assign, *SolveEq or *Eval.
//
// Errors: ErrEmptyInput, ErrBadNumber, ErrUnknownFunction,
// ErrUnexpectedToken (also for trailing text), ErrUnexpectedEOF.
func Statement(src string) (Stmt, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if t := p.cur(); t.kind != tokEOF {
		return nil, fmt.Errorf("%w: %q after statement at %d:%d", ErrUnexpectedToken, t.text, t.line, t.col)
	}

	return stmt, nil
}

// Statements parses a whole script: one or more ";"-terminated
// statements in source order.
//
// Parameters:
//   - src: the script text.
//
// Returns:
//   - the parsed statements, in order.
//
// Errors: same set as Statement; the first offending statement aborts
// the whole parse.
func Statements(src string) ([]Stmt, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}

	var stmts []Stmt
	for p.cur().kind != tokEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// Expression parses a bare expression with no ";" terminator, consuming
// the whole input.
//
// Parameters:
//   - src: the expression text.
//
// Returns:
//   - the parsed tree.
//
// Errors: same set as Statement; "=" is not part of an expression and
// reports ErrUnexpectedToken.
func Expression(src string) (expr.Node, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}

	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.cur(); t.kind != tokEOF {
		return nil, fmt.Errorf("%w: %q after expression at %d:%d", ErrUnexpectedToken, t.text, t.line, t.col)
	}

	return n, nil
}

// parser walks the token slice produced by scan. toks always ends with
// tokEOF, so cur never runs off the end.
type parser struct {
	toks []token
	pos  int
}

// newParser lexes src and rejects blank input.
func newParser(src string) (*parser, error) {
	toks, err := scan(src)
	if err != nil {
		return nil, err
	}
	if toks[0].kind == tokEOF {
		return nil, ErrEmptyInput
	}

	return &parser{toks: toks}, nil
}

func (p *parser) cur() token { return p.toks[p.pos] }

// peek looks one token ahead without consuming.
func (p *parser) peek() token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}

	return p.toks[len(p.toks)-1]
}

// expect consumes the current token if it matches kind, otherwise it
// reports what the grammar wanted at this position.
func (p *parser) expect(kind tokKind, what string) error {
	t := p.cur()
	if t.kind == kind {
		p.pos++

		return nil
	}
	if t.kind == tokEOF {
		return fmt.Errorf("%w: expected %q at %d:%d", ErrUnexpectedEOF, what, t.line, t.col)
	}

	return fmt.Errorf("%w: expected %q, found %q at %d:%d", ErrUnexpectedToken, what, t.text, t.line, t.col)
}

// parseStatement dispatches on the statement head: a bare identifier
// directly followed by "=" starts an assignment, anything else is an
// expression that may continue into an equation.
func (p *parser) parseStatement() (Stmt, error) {
	if p.cur().kind == tokIdent && p.peek().kind == tokEquals {
		name := p.cur().text
		p.pos += 2 // IDENT "="

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tokSemi, ";"); err != nil {
			return nil, err
		}

		return &Assign{Name: name, Value: value}, nil
	}

	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.cur().kind == tokEquals {
		p.pos++
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tokSemi, ";"); err != nil {
			return nil, err
		}

		return &SolveEq{Eq: &expr.Equation{LHS: lhs, RHS: rhs}}, nil
	}

	if err = p.expect(tokSemi, ";"); err != nil {
		return nil, err
	}

	return &Eval{Expr: lhs}, nil
}

// parseExpr handles the loosest level: term {(+|-) term}.
func (p *parser) parseExpr() (expr.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		var op expr.Op
		switch p.cur().kind {
		case tokPlus:
			op = expr.OpAdd
		case tokMinus:
			op = expr.OpSub
		default:
			return left, nil
		}
		p.pos++

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &expr.Binary{Op: op, Left: left, Right: right}
	}
}

// parseTerm handles unary {(*|/) unary}.
func (p *parser) parseTerm() (expr.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		var op expr.Op
		switch p.cur().kind {
		case tokStar:
			op = expr.OpMul
		case tokSlash:
			op = expr.OpDiv
		default:
			return left, nil
		}
		p.pos++

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &expr.Binary{Op: op, Left: left, Right: right}
	}
}

// parseUnary lowers a leading minus to 0 - operand.
func (p *parser) parseUnary() (expr.Node, error) {
	if p.cur().kind == tokMinus {
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &expr.Binary{Op: expr.OpSub, Left: &expr.Number{Value: 0}, Right: operand}, nil
	}

	return p.parsePower()
}

// parsePower handles atom [^ unary], recursing on the right so "^"
// associates rightward and exponents may carry their own sign.
func (p *parser) parsePower() (expr.Node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	if p.cur().kind == tokCaret {
		p.pos++
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &expr.Binary{Op: expr.OpPow, Left: base, Right: exp}, nil
	}

	return base, nil
}

// parseAtom handles literals, variables, function calls and
// parenthesized groups.
func (p *parser) parseAtom() (expr.Node, error) {
	t := p.cur()
	switch t.kind {
	case tokNumber:
		p.pos++

		return &expr.Number{Value: t.val}, nil

	case tokIdent:
		p.pos++
		if p.cur().kind != tokLParen {
			return &expr.Variable{Name: t.text}, nil
		}

		fn, ok := functions[t.text]
		if !ok {
			return nil, fmt.Errorf("%w: %q at %d:%d", ErrUnknownFunction, t.text, t.line, t.col)
		}
		p.pos++ // "("

		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tokRParen, ")"); err != nil {
			return nil, err
		}

		return &expr.Function{Name: fn, Arg: arg}, nil

	case tokLParen:
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tokRParen, ")"); err != nil {
			return nil, err
		}

		return inner, nil

	case tokEOF:
		return nil, fmt.Errorf("%w: expected an operand at %d:%d", ErrUnexpectedEOF, t.line, t.col)

	default:
		return nil, fmt.Errorf("%w: %q at %d:%d", ErrUnexpectedToken, t.text, t.line, t.col)
	}
}
