package expr

import (
	"strconv"
	"strings"
)

// Dump renders n as an indented multi-line tree, one node per line,
// children indented two spaces below their parent. Intended for
// debugging and AST inspection; the compact form is String.
//
// Parameters:
//   - n: root of the tree to render; nil yields an empty string.
//
// Returns:
//   - the rendered tree, terminated by a newline when non-empty.
//
// Complexity: O(n) over the node count.
func Dump(n Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	dumpInto(&sb, n, 0)

	return sb.String()
}

// dumpInto appends one node line at the given depth and recurses into
// the children.
func dumpInto(sb *strings.Builder, n Node, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}

	switch t := n.(type) {
	case *Number:
		sb.WriteString("Number(")
		sb.WriteString(strconv.FormatFloat(t.Value, 'g', -1, 64))
		sb.WriteString(")\n")
	case *Variable:
		sb.WriteString("Variable(")
		sb.WriteString(t.Name)
		sb.WriteString(")\n")
	case *Binary:
		sb.WriteString("Binary(")
		sb.WriteString(t.Op.String())
		sb.WriteString(")\n")
		dumpInto(sb, t.Left, depth+1)
		dumpInto(sb, t.Right, depth+1)
	case *Function:
		sb.WriteString("Function(")
		sb.WriteString(string(t.Name))
		sb.WriteString(")\n")
		dumpInto(sb, t.Arg, depth+1)
	case *Equation:
		sb.WriteString("Equation(=)\n")
		dumpInto(sb, t.LHS, depth+1)
		dumpInto(sb, t.RHS, depth+1)
	}
}
