package diagnostics

import "fmt"

// ErrorKind classifies the hard failures a compilation can end with.
// Semantic issues never appear here; they surface as warnings on an
// otherwise successful result.
type ErrorKind int

const (
	InvalidToken ErrorKind = iota
	InvalidNumber
	UnexpectedToken
	UnexpectedEndOfInput
)

// CompileError is the typed failure returned by the lexer and parser.
// A failed compile yields no partial result; the error carries enough
// context to render a human-readable message and nothing else.
type CompileError struct {
	Kind ErrorKind
	Text string
}

func (e *CompileError) Error() string {
	switch e.Kind {
	case InvalidToken:
		return fmt.Sprintf("Invalid token: %s", e.Text)
	case InvalidNumber:
		return fmt.Sprintf("Invalid number: %s", e.Text)
	case UnexpectedToken:
		return fmt.Sprintf("Unexpected token: %s", e.Text)
	case UnexpectedEndOfInput:
		return "Unexpected end of input"
	default:
		return "Unknown error"
	}
}

// NewInvalidToken reports a character the lexer cannot start a lexeme with.
func NewInvalidToken(ch rune) *CompileError {
	return &CompileError{Kind: InvalidToken, Text: string(ch)}
}

// NewInvalidNumber reports a digits-and-dots run that is not a valid float.
func NewInvalidNumber(text string) *CompileError {
	return &CompileError{Kind: InvalidNumber, Text: text}
}

// NewUnexpectedToken reports a token found where a primary was expected.
func NewUnexpectedToken(text string) *CompileError {
	return &CompileError{Kind: UnexpectedToken, Text: text}
}

// NewUnexpectedEndOfInput reports input ending while more tokens were expected.
func NewUnexpectedEndOfInput() *CompileError {
	return &CompileError{Kind: UnexpectedEndOfInput}
}
