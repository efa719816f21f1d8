package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M4hbod/MLang-Compiler/internal/diagnostics"
)

func TestCompile(t *testing.T) {
	result, err := Compile(&Options{Expression: "A = B + C"})
	require.NoError(t, err)

	assert.Equal(t, "(id1 = (id2 + id3))", result.AST.String())
	assert.Equal(t, []string{"id1 = id2 + id3"}, result.OptimizedThreeAddressCode)
}

func TestCompileErrorKeepsCause(t *testing.T) {
	tests := []struct {
		input string
		kind  diagnostics.ErrorKind
	}{
		{"1 @ 2", diagnostics.InvalidToken},
		{"3.1.4", diagnostics.InvalidNumber},
		{"(*)", diagnostics.UnexpectedToken},
		{"1+", diagnostics.UnexpectedEndOfInput},
		{"", diagnostics.UnexpectedEndOfInput},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := Compile(&Options{Expression: tt.input})
			require.Error(t, err)
			assert.Nil(t, result)

			var cerr *diagnostics.CompileError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.kind, cerr.Kind)
		})
	}
}

func TestCompileErrorMentionsExpression(t *testing.T) {
	_, err := Compile(&Options{Expression: " 1 @ 2 "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to compile "1 @ 2"`)
	assert.Contains(t, err.Error(), "Invalid token: @")
}
