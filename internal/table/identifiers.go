package table

import "sort"

// IdentifierTable maps identifier names to stable positive indices,
// assigned in first-occurrence order starting at 1. The lexer owns and
// mutates the table during its run; downstream stages only see the
// immutable Entries snapshot.
type IdentifierTable struct {
	indices map[string]int
	nextID  int
}

// Entry is one (name, index) pair of the table.
type Entry struct {
	Name  string
	Index int
}

// NewIdentifierTable creates an empty table.
func NewIdentifierTable() *IdentifierTable {
	return &IdentifierTable{
		indices: make(map[string]int),
		nextID:  1,
	}
}

// Intern returns the index for name, assigning the next free index on
// first occurrence. The same name always maps to the same index within
// one compilation; indices are never reused.
func (t *IdentifierTable) Intern(name string) int {
	if idx, ok := t.indices[name]; ok {
		return idx
	}
	idx := t.nextID
	t.nextID++
	t.indices[name] = idx
	return idx
}

// Lookup finds the index for a previously interned name.
func (t *IdentifierTable) Lookup(name string) (int, bool) {
	idx, ok := t.indices[name]
	return idx, ok
}

// Len returns the number of distinct identifiers interned so far.
func (t *IdentifierTable) Len() int {
	return len(t.indices)
}

// Entries returns the (name, index) pairs sorted by index. The slice is
// a fresh copy; mutating it does not affect the table.
func (t *IdentifierTable) Entries() []Entry {
	entries := make([]Entry, 0, len(t.indices))
	for name, idx := range t.indices {
		entries = append(entries, Entry{Name: name, Index: idx})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Index < entries[j].Index
	})
	return entries
}
