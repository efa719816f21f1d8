package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternAssignsIndicesInFirstOccurrenceOrder(t *testing.T) {
	tbl := NewIdentifierTable()

	assert.Equal(t, 1, tbl.Intern("A"))
	assert.Equal(t, 2, tbl.Intern("B"))
	assert.Equal(t, 3, tbl.Intern("C"))

	// Re-interning never reassigns
	assert.Equal(t, 1, tbl.Intern("A"))
	assert.Equal(t, 3, tbl.Intern("C"))
	assert.Equal(t, 3, tbl.Len())
}

func TestEntriesSortedByIndex(t *testing.T) {
	tbl := NewIdentifierTable()
	for _, name := range []string{"gamma", "alpha", "beta"} {
		tbl.Intern(name)
	}

	entries := tbl.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Name: "gamma", Index: 1}, entries[0])
	assert.Equal(t, Entry{Name: "alpha", Index: 2}, entries[1])
	assert.Equal(t, Entry{Name: "beta", Index: 3}, entries[2])
}

func TestLookup(t *testing.T) {
	tbl := NewIdentifierTable()
	tbl.Intern("x")

	idx, ok := tbl.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = tbl.Lookup("y")
	assert.False(t, ok)
}
