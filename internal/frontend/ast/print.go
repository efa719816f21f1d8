package ast

import (
	"fmt"
	"strings"

	"github.com/M4hbod/MLang-Compiler/internal/utils/numeric"
)

// String renders the literal value: 5, 0.5, 3.14.
func (n *Number) String() string {
	return numeric.FormatFloat(n.Value)
}

// String renders the table reference, not the spelling: id1, id2, ...
func (n *Identifier) String() string {
	return fmt.Sprintf("id%d", n.Index)
}

// String renders the node fully parenthesized: (left op right).
func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s %c %s)", n.Left, n.Op, n.Right)
}

// String renders function-call style: sqrt(operand).
func (n *UnaryOp) String() string {
	return fmt.Sprintf("%s(%s)", n.Op, n.X)
}

// TreeString renders the tree one node per line, children indented under
// their parent. Identifiers show their source spelling here since the
// output is meant for humans.
func TreeString(n Node) string {
	var sb strings.Builder
	writeTree(&sb, n, 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch node := n.(type) {
	case *Number:
		fmt.Fprintf(sb, "%s%s\n", indent, numeric.FormatFloat(node.Value))
	case *Identifier:
		fmt.Fprintf(sb, "%s%s (id%d)\n", indent, node.Name, node.Index)
	case *BinaryOp:
		fmt.Fprintf(sb, "%s%c\n", indent, node.Op)
		writeTree(sb, node.Left, depth+1)
		writeTree(sb, node.Right, depth+1)
	case *UnaryOp:
		fmt.Fprintf(sb, "%s%s\n", indent, node.Op)
		writeTree(sb, node.X, depth+1)
	}
}
