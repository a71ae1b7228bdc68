package expr

// CollectVariables returns the name of every Variable occurrence in the
// tree, in depth-first left-to-right order. Duplicates are kept: callers
// that need the distinct set (solvers, linearity checks) deduplicate on
// their side, while callers that need occurrence counts get them for free.
//
// Complexity: O(size of tree).
func CollectVariables(n Node) []string {
	var names []string
	collectInto(n, &names)

	return names
}

func collectInto(n Node, out *[]string) {
	switch t := n.(type) {
	case *Number:
		// literals bind nothing
	case *Variable:
		*out = append(*out, t.Name)
	case *Binary:
		collectInto(t.Left, out)
		collectInto(t.Right, out)
	case *Function:
		collectInto(t.Arg, out)
	case *Equation:
		collectInto(t.LHS, out)
		collectInto(t.RHS, out)
	}
}

// Clone returns a deep copy of the tree: structurally identical, sharing
// no nodes with the original. Mutating either tree afterwards never
// affects the other. Clone of nil is nil.
//
// Complexity: O(size of tree).
func Clone(n Node) Node {
	switch t := n.(type) {
	case *Number:
		return &Number{Value: t.Value}
	case *Variable:
		return &Variable{Name: t.Name}
	case *Binary:
		return &Binary{Op: t.Op, Left: Clone(t.Left), Right: Clone(t.Right)}
	case *Function:
		return &Function{Name: t.Name, Arg: Clone(t.Arg)}
	case *Equation:
		return &Equation{LHS: Clone(t.LHS), RHS: Clone(t.RHS)}
	default:
		return nil
	}
}
