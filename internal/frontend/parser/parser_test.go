package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M4hbod/MLang-Compiler/internal/diagnostics"
	"github.com/M4hbod/MLang-Compiler/internal/frontend/ast"
	"github.com/M4hbod/MLang-Compiler/internal/frontend/lexer"
)

func parseString(t *testing.T, input string) (ast.Node, error) {
	t.Helper()
	toks, err := lexer.New(input).Tokenize()
	require.NoError(t, err)
	return Parse(toks)
}

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"multiplication binds tighter than addition", "2+3*4", "(2 + (3 * 4))"},
		{"left-to-right addition", "1-2+3", "((1 - 2) + 3)"},
		{"left-to-right multiplication", "8/4/2", "((8 / 4) / 2)"},
		{"power binds tighter than multiplication", "2*3^4", "(2 * (3 ^ 4))"},
		{"power is right-associative", "2^3^2", "(2 ^ (3 ^ 2))"},
		{"parentheses override precedence", "(2+3)*4", "((2 + 3) * 4)"},
		{"assignment is lowest precedence", "a = 1 + 2", "(id1 = (1 + 2))"},
		{"assignment is right-associative", "a = b = 3", "(id1 = (id2 = 3))"},
		{"sqrt takes a single primary", "sqrt 2+3", "(sqrt(2) + 3)"},
		{"sqrt with parenthesized argument", "sqrt(2+3)", "sqrt((2 + 3))"},
		{"nested parentheses", "((1))", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parseString(t, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, root.String())
		})
	}
}

// A missing closing parenthesis is tolerated rather than rejected. The
// behavior is deliberate permissiveness carried over from the original
// grammar; this test pins it so any tightening is a conscious choice.
func TestParseToleratesMissingClosingParen(t *testing.T) {
	root, err := parseString(t, "(1+2")
	require.NoError(t, err)
	assert.Equal(t, "(1 + 2)", root.String())

	root, err = parseString(t, "sqrt(16")
	require.NoError(t, err)
	assert.Equal(t, "sqrt(16)", root.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind diagnostics.ErrorKind
	}{
		{"dangling operator", "1+", diagnostics.UnexpectedEndOfInput},
		{"lone sqrt", "sqrt", diagnostics.UnexpectedEndOfInput},
		{"operator where primary expected", "1 + * 2", diagnostics.UnexpectedToken},
		{"leading closing paren", ")", diagnostics.UnexpectedToken},
		{"dangling assignment", "a =", diagnostics.UnexpectedEndOfInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parseString(t, tt.input)
			require.Error(t, err)
			assert.Nil(t, root)

			var cerr *diagnostics.CompileError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantKind, cerr.Kind)
		})
	}
}

func TestParseEmptyTokenStream(t *testing.T) {
	root, err := Parse(nil)
	require.Error(t, err)
	assert.Nil(t, root)

	var cerr *diagnostics.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, diagnostics.UnexpectedEndOfInput, cerr.Kind)
}

func TestParseUnexpectedTokenCarriesDisplayForm(t *testing.T) {
	_, err := parseString(t, "1 + * 2")
	require.Error(t, err)
	assert.Equal(t, "Unexpected token: MUL", err.Error())
}

func TestParseBuildsUnaryNodeForSqrt(t *testing.T) {
	root, err := parseString(t, "sqrt(16)")
	require.NoError(t, err)

	unary, ok := root.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.SqrtOp, unary.Op)
}

func TestParseAssignmentOnlyAtRoot(t *testing.T) {
	root, err := parseString(t, "A = B + C")
	require.NoError(t, err)

	top, ok := root.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, rune(ast.OpAssign), top.Op)

	_, ok = top.Left.(*ast.Identifier)
	assert.True(t, ok)

	right, ok := top.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, rune(ast.OpAdd), right.Op)
}
