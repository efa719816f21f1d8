// Package optimizer rewrites expression trees by constant folding and
// algebraic simplification. It always returns a fresh tree; the input
// tree is never mutated, so the original stays independently
// inspectable alongside the optimized one.
package optimizer

import (
	"math"

	"github.com/M4hbod/MLang-Compiler/internal/frontend/ast"
)

// Optimize applies the rewrite bottom-up: children first, then the node
// itself. Nodes matching no rewrite are reconstructed with their
// already-optimized children.
func Optimize(n ast.Node) ast.Node {
	switch node := n.(type) {
	case *ast.Number:
		return &ast.Number{Value: node.Value}
	case *ast.Identifier:
		return &ast.Identifier{Name: node.Name, Index: node.Index}
	case *ast.BinaryOp:
		left := Optimize(node.Left)
		right := Optimize(node.Right)

		if folded, ok := foldConstants(node.Op, left, right); ok {
			return folded
		}

		if simplified, ok := simplify(node.Op, left, right); ok {
			return simplified
		}

		return &ast.BinaryOp{Op: node.Op, Left: left, Right: right}
	case *ast.UnaryOp:
		operand := Optimize(node.X)
		if num, ok := operand.(*ast.Number); ok && node.Op == ast.SqrtOp {
			return &ast.Number{Value: math.Sqrt(num.Value)}
		}
		return &ast.UnaryOp{Op: node.Op, X: operand}
	default:
		return n
	}
}

// foldConstants collapses a binary node whose optimized operands are
// both literals. Division by a literal zero is deliberately left
// unfolded to avoid baking an undefined value into the tree; assignment
// is never folded.
func foldConstants(op rune, left, right ast.Node) (ast.Node, bool) {
	l, lok := left.(*ast.Number)
	r, rok := right.(*ast.Number)
	if !lok || !rok {
		return nil, false
	}

	switch op {
	case ast.OpAdd:
		return &ast.Number{Value: l.Value + r.Value}, true
	case ast.OpSub:
		return &ast.Number{Value: l.Value - r.Value}, true
	case ast.OpMul:
		return &ast.Number{Value: l.Value * r.Value}, true
	case ast.OpDiv:
		if r.Value != 0.0 {
			return &ast.Number{Value: l.Value / r.Value}, true
		}
		return nil, false
	case ast.OpPow:
		return &ast.Number{Value: math.Pow(l.Value, r.Value)}, true
	default:
		return nil, false
	}
}

// simplify applies the exact algebraic identities: x+0, 0+x, x-0, x*0,
// 0*x, x*1, 1*x, x/1, x^0, x^1. Structural rewrites on the optimized
// children, applied only when constant folding did not.
func simplify(op rune, left, right ast.Node) (ast.Node, bool) {
	switch op {
	case ast.OpAdd:
		if isLiteral(right, 0.0) {
			return left, true
		}
		if isLiteral(left, 0.0) {
			return right, true
		}
	case ast.OpSub:
		if isLiteral(right, 0.0) {
			return left, true
		}
	case ast.OpMul:
		if isLiteral(right, 0.0) || isLiteral(left, 0.0) {
			return &ast.Number{Value: 0.0}, true
		}
		if isLiteral(right, 1.0) {
			return left, true
		}
		if isLiteral(left, 1.0) {
			return right, true
		}
	case ast.OpDiv:
		if isLiteral(right, 1.0) {
			return left, true
		}
	case ast.OpPow:
		if isLiteral(right, 0.0) {
			return &ast.Number{Value: 1.0}, true
		}
		if isLiteral(right, 1.0) {
			return left, true
		}
	}
	return nil, false
}

func isLiteral(n ast.Node, v float64) bool {
	num, ok := n.(*ast.Number)
	return ok && num.Value == v
}
