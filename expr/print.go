package expr

import (
	"math"
	"strconv"
	"strings"
)

// precedence orders the tree shapes from loosest to tightest binding.
// Rendering compares a child's level against its parent's to decide
// whether parentheses are required for a faithful reading.
type precedence int

const (
	precEquation precedence = iota // lhs = rhs
	precAddSub                     // + and -, also negative literals
	precMulDiv                     // * and /
	precPow                        // ^, right-associative
	precAtom                       // literals, variables, calls
)

// precOf reports the binding level of the node's top construct.
func precOf(n Node) precedence {
	switch t := n.(type) {
	case *Number:
		if math.Signbit(t.Value) {
			// a negative literal reads like a subtraction, keep it bracketed
			return precAddSub
		}

		return precAtom
	case *Variable, *Function:
		return precAtom
	case *Binary:
		switch t.Op {
		case OpAdd, OpSub:
			return precAddSub
		case OpMul, OpDiv:
			return precMulDiv
		case OpPow:
			return precPow
		default:
			return precAtom
		}
	case *Equation:
		return precEquation
	default:
		return precAtom
	}
}

func (n *Number) String() string   { return render(n) }
func (n *Variable) String() string { return render(n) }
func (n *Binary) String() string   { return render(n) }
func (n *Function) String() string { return render(n) }
func (n *Equation) String() string { return render(n) }

// render writes the whole tree into one builder pass.
func render(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)

	return sb.String()
}

func writeNode(sb *strings.Builder, n Node) {
	switch t := n.(type) {
	case *Number:
		sb.WriteString(strconv.FormatFloat(t.Value, 'g', -1, 64))
	case *Variable:
		sb.WriteString(t.Name)
	case *Binary:
		own := precOf(t)
		writeChild(sb, t.Left, own, t.Op, false)
		sb.WriteByte(' ')
		sb.WriteByte(byte(t.Op))
		sb.WriteByte(' ')
		writeChild(sb, t.Right, own, t.Op, true)
	case *Function:
		sb.WriteString(string(t.Name))
		sb.WriteByte('(')
		writeNode(sb, t.Arg)
		sb.WriteByte(')')
	case *Equation:
		writeNode(sb, t.LHS)
		sb.WriteString(" = ")
		writeNode(sb, t.RHS)
	}
}

// writeChild renders a Binary operand, inserting parentheses whenever a
// re-parse of the flat text would regroup the operand.
//
// Left-associative operators (+ - * /) bracket a right operand of equal
// level, so a - (b - c) keeps its grouping. The right-associative ^
// mirrors that: (a ^ b) ^ c brackets its left operand instead.
func writeChild(sb *strings.Builder, child Node, parent precedence, op Op, right bool) {
	childPrec := precOf(child)

	var need bool
	if op == OpPow {
		if right {
			need = childPrec < parent
		} else {
			need = childPrec <= parent
		}
	} else {
		if right {
			need = childPrec <= parent
		} else {
			need = childPrec < parent
		}
	}

	if need {
		sb.WriteByte('(')
		writeNode(sb, child)
		sb.WriteByte(')')

		return
	}
	writeNode(sb, child)
}
