package tac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeephole(t *testing.T) {
	tests := []struct {
		name string
		code []string
		want []string
	}{
		{
			name: "single-use temp copy collapses",
			code: []string{"t1 = a - 10", "id1 = t1"},
			want: []string{"id1 = a - 10"},
		},
		{
			name: "multiply-used temp is kept",
			code: []string{"t1 = a - 10", "id1 = t1", "t2 = t1 + 1"},
			want: []string{"t1 = a - 10", "id1 = t1", "t2 = t1 + 1"},
		},
		{
			name: "non-copy right-hand side passes through",
			code: []string{"t1 = 2 + 3", "t2 = t1 * 4"},
			want: []string{"t1 = 2 + 3", "t2 = t1 * 4"},
		},
		{
			name: "use inside a function call counts as a use",
			code: []string{"t1 = 2 + 3", "t2 = sqrt(t1)"},
			want: []string{"t1 = 2 + 3", "t2 = sqrt(t1)"},
		},
		{
			name: "assignment chain from generated code",
			code: []string{"t1 = id2 + id3", "id1 = t1"},
			want: []string{"id1 = id2 + id3"},
		},
		{
			name: "identifier copy is not a temp and stays",
			code: []string{"id2 = 3", "id1 = id2"},
			want: []string{"id2 = 3", "id1 = id2"},
		},
		{
			name: "literal line passes through",
			code: []string{"t1 = 5"},
			want: []string{"t1 = 5"},
		},
		{
			name: "empty sequence",
			code: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Peephole(tt.code))
		})
	}
}

func TestPeepholeDoesNotMutateInput(t *testing.T) {
	code := []string{"t1 = a - 10", "id1 = t1"}
	_ = Peephole(code)
	assert.Equal(t, []string{"t1 = a - 10", "id1 = t1"}, code)
}
