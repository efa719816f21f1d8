package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagCountsBySeverity(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(NewError("bad"))
	bag.Add(NewWarning("iffy"))
	bag.Add(NewWarning("also iffy"))

	assert.True(t, bag.HasErrors())
	assert.Equal(t, 1, bag.ErrorCount())
	assert.Equal(t, 2, bag.WarningCount())
}

func TestWarningsPreserveInsertionOrder(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(NewWarning("first"))
	bag.Add(NewError("not a warning"))
	bag.Add(NewWarning("second"))

	assert.Equal(t, []string{"first", "second"}, bag.Warnings())
}

func TestClear(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(NewError("bad"))
	bag.Clear()

	assert.False(t, bag.HasErrors())
	assert.Empty(t, bag.Diagnostics())
}

func TestEmitAllWritesSummary(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(NewWarning("iffy").WithNote("look here"))

	var buf bytes.Buffer
	bag.EmitAll(&buf)

	out := buf.String()
	assert.Contains(t, out, "iffy")
	assert.Contains(t, out, "look here")
	assert.Contains(t, out, "succeeded with 1 warning(s)")
}
