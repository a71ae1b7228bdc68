package parse

import (
	"fmt"
	"strconv"
)

// tokKind enumerates the lexical categories of the grammar.
type tokKind uint8

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokEquals
	tokSemi
)

// operators maps single-character tokens to their kind.
var operators = map[byte]tokKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'^': tokCaret,
	'(': tokLParen,
	')': tokRParen,
	'=': tokEquals,
	';': tokSemi,
}

// token is one lexical unit with its 1-based source position.
type token struct {
	kind tokKind
	text string
	val  float64 // set for tokNumber only
	line int
	col  int
}

// scan tokenizes src in a single left-to-right pass. The returned slice
// always ends with a tokEOF carrying the position just past the input.
func scan(src string) ([]token, error) {
	var toks []token
	line, col := 1, 1

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\n':
			line++
			col = 1
			i++
		case c == ' ' || c == '\t' || c == '\r':
			col++
			i++
		case isDigit(c) || c == '.':
			start, startCol := i, col
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				i++
			}
			// exponent suffix: e or E, optional sign, digits
			if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
				i++
				if i < len(src) && (src[i] == '+' || src[i] == '-') {
					i++
				}
				for i < len(src) && isDigit(src[i]) {
					i++
				}
			}
			text := src[start:i]
			val, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at %d:%d", ErrBadNumber, text, line, startCol)
			}
			toks = append(toks, token{kind: tokNumber, text: text, val: val, line: line, col: startCol})
			col += i - start
		case isIdentStart(c):
			start, startCol := i, col
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], line: line, col: startCol})
			col += i - start
		default:
			kind, ok := operators[c]
			if !ok {
				return nil, fmt.Errorf("%w: %q at %d:%d", ErrUnexpectedToken, string(c), line, col)
			}
			toks = append(toks, token{kind: kind, text: string(c), line: line, col: col})
			col++
			i++
		}
	}
	toks = append(toks, token{kind: tokEOF, line: line, col: col})

	return toks, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
