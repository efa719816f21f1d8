// Package tac linearizes an AST into three-address code: an ordered
// sequence of lines of the form "dest = value", "dest = lhs op rhs", or
// "dest = func(arg)". Destinations are synthesized temporaries (t1, t2,
// ...) or identifier references (id1, id2, ...); each destination is
// assigned exactly once by construction.
package tac

import (
	"fmt"

	"github.com/M4hbod/MLang-Compiler/internal/frontend/ast"
	"github.com/M4hbod/MLang-Compiler/internal/utils/numeric"
)

// Generator holds the temporary-naming counter for one generation pass.
// The counter is scoped to the generator, never global, so repeated
// generations in the same process (original vs. optimized tree) each
// start from t1.
type Generator struct {
	nextTemp int
}

// NewGenerator creates a generator whose first temporary is t1.
func NewGenerator() *Generator {
	return &Generator{nextTemp: 1}
}

// Generate emits code for the whole tree and returns the lines plus the
// operand naming the tree's result.
func (g *Generator) Generate(n ast.Node) ([]string, string) {
	switch node := n.(type) {
	case *ast.Number:
		return nil, numeric.FormatFloat(node.Value)
	case *ast.Identifier:
		return nil, fmt.Sprintf("id%d", node.Index)
	case *ast.BinaryOp:
		leftCode, leftResult := g.Generate(node.Left)
		rightCode, rightResult := g.Generate(node.Right)

		code := append(leftCode, rightCode...)

		// Assignment's value is the destination itself, matching the
		// evaluator's semantics for '='. No temporary is consumed.
		if node.Op == ast.OpAssign {
			code = append(code, fmt.Sprintf("%s = %s", leftResult, rightResult))
			return code, leftResult
		}

		temp := g.newTemp()
		code = append(code, fmt.Sprintf("%s = %s %c %s", temp, leftResult, node.Op, rightResult))
		return code, temp
	case *ast.UnaryOp:
		operandCode, operandResult := g.Generate(node.X)
		temp := g.newTemp()
		operandCode = append(operandCode, fmt.Sprintf("%s = %s(%s)", temp, node.Op, operandResult))
		return operandCode, temp
	default:
		return nil, ""
	}
}

func (g *Generator) newTemp() string {
	temp := fmt.Sprintf("t%d", g.nextTemp)
	g.nextTemp++
	return temp
}

// GenerateCode is the common single-tree entry point: fresh counter,
// lines only. A tree that reduces to a single leaf still yields one
// line materializing the result, so fully folded expressions like "5"
// produce "t1 = 5" rather than an empty sequence.
func GenerateCode(root ast.Node) []string {
	g := NewGenerator()
	code, result := g.Generate(root)
	if len(code) == 0 {
		code = append(code, fmt.Sprintf("%s = %s", g.newTemp(), result))
	}
	return code
}
