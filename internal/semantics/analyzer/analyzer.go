package analyzer

import (
	"math"

	"github.com/M4hbod/MLang-Compiler/internal/diagnostics"
	"github.com/M4hbod/MLang-Compiler/internal/frontend/ast"
)

const (
	divisionByZeroMsg = "Warning: Division by zero detected"
	complexResultMsg  = "Warning: Negative base with fractional exponent may produce complex numbers"
)

// Analyze walks the AST read-only and adds advisory warnings to the
// bag. Pre-order: a node's own warnings are recorded before its
// children are visited, left subtree before right. Never produces a
// hard error.
func Analyze(root ast.Node, bag *diagnostics.DiagnosticBag) {
	check(root, bag)
}

// Check is a convenience wrapper returning just the warning messages.
func Check(root ast.Node) []string {
	bag := diagnostics.NewDiagnosticBag()
	Analyze(root, bag)
	return bag.Warnings()
}

func check(n ast.Node, bag *diagnostics.DiagnosticBag) {
	switch node := n.(type) {
	case *ast.BinaryOp:
		if node.Op == ast.OpDiv {
			if num, ok := node.Right.(*ast.Number); ok && num.Value == 0.0 {
				bag.Add(diagnostics.NewWarning(divisionByZeroMsg))
			}
		}

		if node.Op == ast.OpPow {
			base, baseOK := node.Left.(*ast.Number)
			exp, expOK := node.Right.(*ast.Number)
			if baseOK && expOK && base.Value < 0.0 && frac(exp.Value) != 0.0 {
				bag.Add(diagnostics.NewWarning(complexResultMsg))
			}
		}

		check(node.Left, bag)
		check(node.Right, bag)
	case *ast.UnaryOp:
		check(node.X, bag)
	}
}

func frac(v float64) float64 {
	return v - math.Trunc(v)
}
