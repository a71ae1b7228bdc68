package expr

// Op identifies a binary operator. The values are the operator glyphs
// themselves, so an Op prints naturally and converts to the source form
// without a lookup table.
type Op byte

// Supported binary operators.
const (
	OpAdd Op = '+' // addition
	OpSub Op = '-' // subtraction
	OpMul Op = '*' // multiplication
	OpDiv Op = '/' // division (divisor 0 is ErrDivisionByZero)
	OpPow Op = '^' // exponentiation via math.Pow
)

// String returns the operator glyph, e.g. "+".
func (o Op) String() string { return string(rune(o)) }

// FuncName identifies a built-in unary function.
type FuncName string

// Supported built-in functions.
const (
	FuncSin  FuncName = "sin"  // sine, radians
	FuncCos  FuncName = "cos"  // cosine, radians
	FuncLog  FuncName = "log"  // natural logarithm, argument must be > 0
	FuncSqrt FuncName = "sqrt" // square root, argument must be >= 0
)

// Node is the closed interface over all expression tree shapes.
// The unexported marker method seals the set: only the five types in
// this package satisfy it, so switches over Node are exhaustive.
type Node interface {
	// String renders the subtree with minimal parenthesization.
	String() string

	isNode()
}

// Number is a float64 literal.
type Number struct {
	Value float64
}

// Variable is a named value, resolved against an Env at evaluation time.
type Variable struct {
	Name string
}

// Binary applies Op to two operand subtrees.
type Binary struct {
	Op          Op
	Left, Right Node
}

// Function applies one of the built-in functions to a single argument.
type Function struct {
	Name FuncName
	Arg  Node
}

// Equation relates two subtrees by equality. It appears only at the
// root of a tree handed to a solver; evaluating it as a value yields
// ErrEquationOperand.
type Equation struct {
	LHS, RHS Node
}

func (*Number) isNode()   {}
func (*Variable) isNode() {}
func (*Binary) isNode()   {}
func (*Function) isNode() {}
func (*Equation) isNode() {}
