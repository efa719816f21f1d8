package tokens

import (
	"fmt"
	"os"

	"github.com/M4hbod/MLang-Compiler/colors"
	"github.com/M4hbod/MLang-Compiler/internal/source"
	"github.com/M4hbod/MLang-Compiler/internal/utils/numeric"
)

type TOKEN string

const (
	NUMBER_TOKEN     TOKEN = "numeric literal"
	IDENTIFIER_TOKEN TOKEN = "identifier"

	//arithmetic operators
	PLUS_TOKEN  TOKEN = "+"
	MINUS_TOKEN TOKEN = "-"
	MUL_TOKEN   TOKEN = "*"
	DIV_TOKEN   TOKEN = "/"
	POW_TOKEN   TOKEN = "^"

	//assignment
	EQUALS_TOKEN TOKEN = "="

	//delimiters
	OPEN_PAREN  TOKEN = "("
	CLOSE_PAREN TOKEN = ")"

	//builtin functions
	SQRT_TOKEN TOKEN = "sqrt"
)

// Token is one lexeme of the input expression. Number carries the parsed
// value for NUMBER_TOKEN; Index carries the identifier table index for
// IDENTIFIER_TOKEN. Both are zero otherwise.
type Token struct {
	Kind   TOKEN
	Value  string
	Number float64
	Index  int
	Start  source.Position
	End    source.Position
}

// String renders the token in the fixed display form the rest of the
// compiler (and its tests) key on: NUMBER(5), id1, PLUS, ...
func (t Token) String() string {
	switch t.Kind {
	case NUMBER_TOKEN:
		return fmt.Sprintf("NUMBER(%s)", numeric.FormatFloat(t.Number))
	case IDENTIFIER_TOKEN:
		return fmt.Sprintf("id%d", t.Index)
	case PLUS_TOKEN:
		return "PLUS"
	case MINUS_TOKEN:
		return "MINUS"
	case MUL_TOKEN:
		return "MUL"
	case DIV_TOKEN:
		return "DIV"
	case POW_TOKEN:
		return "POW"
	case OPEN_PAREN:
		return "LPAREN"
	case CLOSE_PAREN:
		return "RPAREN"
	case SQRT_TOKEN:
		return "SQRT"
	case EQUALS_TOKEN:
		return "ASSIGN"
	default:
		return string(t.Kind)
	}
}

func (t *Token) Debug() {
	colors.GREY.Fprintf(os.Stderr, "%d:%d ", t.Start.Line, t.Start.Column)
	if t.Value == string(t.Kind) {
		fmt.Fprintf(os.Stderr, "%q\n", t.Value)
	} else {
		fmt.Fprintf(os.Stderr, "%q ('%v')\n", t.Value, t.Kind)
	}
}

func NewToken(kind TOKEN, value string, start source.Position, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}
