package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{5.0, "5"},
		{0.5, "0.5"},
		{3.14, "3.14"},
		{-2.0, "-2"},
		{0.0, "0"},
		{14.0, "14"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.value))
		})
	}
}

func TestParseFloatRejectsMalformedLiterals(t *testing.T) {
	_, err := ParseFloat("3.1.4")
	assert.Error(t, err)

	_, err = ParseFloat("3.14")
	assert.NoError(t, err)
}
