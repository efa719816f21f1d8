package source

// Position represents a specific location in the input expression with line, column, and index information.
type Position struct {
	Line   int // Line number in the input.
	Column int // Column number in the input.
	Index  int // Byte index in the input.
}

// NewPosition returns a Position pointing at the start of an input.
func NewPosition() Position {
	return Position{Line: 1, Column: 1, Index: 0}
}

// Advance updates the Position by advancing it over the bytes of the provided string.
// It increments the line number for newline bytes and the column number for other bytes.
func (p *Position) Advance(toSkip string) *Position {
	for _, char := range toSkip {
		switch char {
		case '\n':
			p.Line++
			p.Column = 1
			p.Index++
		default:
			p.Column++
			p.Index += len(string(char))
		}
	}
	return p
}
