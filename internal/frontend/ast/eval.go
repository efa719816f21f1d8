package ast

import "math"

// HasVariables reports whether any Identifier node occurs in the tree.
// Pre-order, short-circuiting.
func HasVariables(n Node) bool {
	switch node := n.(type) {
	case *Number:
		return false
	case *Identifier:
		return true
	case *BinaryOp:
		return HasVariables(node.Left) || HasVariables(node.Right)
	case *UnaryOp:
		return HasVariables(node.X)
	default:
		return false
	}
}

// Evaluate folds the tree to a single float64. It is pure and total:
// identifiers evaluate to 0 (a placeholder, not an error), division by
// zero yields IEEE infinity/NaN, and assignment evaluates to its right
// operand's value.
func Evaluate(n Node) float64 {
	switch node := n.(type) {
	case *Number:
		return node.Value
	case *Identifier:
		return 0.0
	case *BinaryOp:
		l := Evaluate(node.Left)
		r := Evaluate(node.Right)
		switch node.Op {
		case OpAdd:
			return l + r
		case OpSub:
			return l - r
		case OpMul:
			return l * r
		case OpDiv:
			return l / r
		case OpPow:
			return math.Pow(l, r)
		case OpAssign:
			return r
		default:
			return 0.0
		}
	case *UnaryOp:
		val := Evaluate(node.X)
		if node.Op == SqrtOp {
			return math.Sqrt(val)
		}
		return val
	default:
		return 0.0
	}
}
