package ast

import "fmt"

// Node is the closed set of AST shapes: Number, Identifier, BinaryOp,
// UnaryOp. Every consumer (evaluator, printer, TAC generator, optimizer)
// switches exhaustively over these four types. The unexported marker
// keeps the set closed to this package.
type Node interface {
	fmt.Stringer
	exprNode()
}

// Binary operator characters. Assignment only ever appears at the root
// of a parsed tree (or as the right child of another assignment, since
// assignment is right-associative); the type itself does not forbid
// nesting.
const (
	OpAdd    = '+'
	OpSub    = '-'
	OpMul    = '*'
	OpDiv    = '/'
	OpPow    = '^'
	OpAssign = '='
)

// SqrtOp is the only unary operator name the parser produces.
const SqrtOp = "sqrt"

// Number is a floating-point literal.
type Number struct {
	Value float64
}

// Identifier is a variable reference. Index is the identifier table
// index assigned by the lexer.
type Identifier struct {
	Name  string
	Index int
}

// BinaryOp applies Op to two operands.
type BinaryOp struct {
	Op    rune
	Left  Node
	Right Node
}

// UnaryOp applies a named function-style operator to a single operand.
type UnaryOp struct {
	Op string
	X  Node
}

func (n *Number) exprNode()     {}
func (n *Identifier) exprNode() {}
func (n *BinaryOp) exprNode()   {}
func (n *UnaryOp) exprNode()    {}
