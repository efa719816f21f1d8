package lexer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/M4hbod/MLang-Compiler/internal/diagnostics"
	"github.com/M4hbod/MLang-Compiler/internal/source"
	"github.com/M4hbod/MLang-Compiler/internal/table"
	"github.com/M4hbod/MLang-Compiler/internal/tokens"
	"github.com/M4hbod/MLang-Compiler/internal/utils/numeric"
)

type regexHandler func(lex *Lexer, regex *regexp.Regexp)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

// Lexer scans one expression into tokens, interning identifier names
// into its table as it goes. A hard error aborts the scan; no partial
// token stream is returned.
type Lexer struct {
	Tokens     []tokens.Token
	Position   source.Position
	sourceCode []byte
	patterns   []regexPattern
	idents     *table.IdentifierTable
	err        *diagnostics.CompileError
}

func (lex *Lexer) advance(match string) {
	lex.Position.Advance(match)
}

func (lex *Lexer) push(token tokens.Token) {
	lex.Tokens = append(lex.Tokens, token)
}

func (lex *Lexer) remainder() string {
	return string(lex.sourceCode)[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

func (lex *Lexer) fail(err *diagnostics.CompileError) {
	if lex.err == nil {
		lex.err = err
	}
}

func New(content string) *Lexer {
	lex := &Lexer{
		sourceCode: []byte(content),
		Tokens:     make([]tokens.Token, 0),
		Position:   source.NewPosition(),
		idents:     table.NewIdentifierTable(),

		patterns: []regexPattern{
			{regexp.MustCompile(`\s+`), skipHandler},                          // whitespace
			{regexp.MustCompile(`[0-9][0-9.]*`), numberHandler},               // numeric literals (maximal digits-and-dots run)
			{regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_]*`), identifierHandler}, // identifiers and the sqrt keyword
			{regexp.MustCompile(`\+`), defaultHandler(tokens.PLUS_TOKEN)},
			{regexp.MustCompile(`\-`), defaultHandler(tokens.MINUS_TOKEN)},
			{regexp.MustCompile(`\*`), defaultHandler(tokens.MUL_TOKEN)},
			{regexp.MustCompile(`/`), defaultHandler(tokens.DIV_TOKEN)},
			{regexp.MustCompile(`\^`), defaultHandler(tokens.POW_TOKEN)},
			{regexp.MustCompile(`\(`), defaultHandler(tokens.OPEN_PAREN)},
			{regexp.MustCompile(`\)`), defaultHandler(tokens.CLOSE_PAREN)},
			{regexp.MustCompile(`=`), defaultHandler(tokens.EQUALS_TOKEN)},
		},
	}
	return lex
}

func defaultHandler(token tokens.TOKEN) regexHandler {
	return func(lex *Lexer, _ *regexp.Regexp) {
		start := lex.Position
		lex.advance(string(token))
		end := lex.Position

		lex.push(tokens.NewToken(token, string(token), start, end))
	}
}

func identifierHandler(lex *Lexer, regex *regexp.Regexp) {
	identifier := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(identifier)
	end := lex.Position

	// "sqrt" (any casing) is reserved and never enters the identifier table
	if strings.ToLower(identifier) == "sqrt" {
		lex.push(tokens.NewToken(tokens.SQRT_TOKEN, identifier, start, end))
		return
	}

	tok := tokens.NewToken(tokens.IDENTIFIER_TOKEN, identifier, start, end)
	tok.Index = lex.idents.Intern(identifier)
	lex.push(tok)
}

func numberHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position

	value, err := numeric.ParseFloat(match)
	if err != nil {
		lex.fail(diagnostics.NewInvalidNumber(match))
		return
	}

	tok := tokens.NewToken(tokens.NUMBER_TOKEN, match, start, end)
	tok.Number = value
	lex.push(tok)
}

// skipHandler processes a lexeme that should be skipped by the lexer.
func skipHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	lex.advance(match)
}

// Tokenize scans the whole input. Any character that starts no lexeme
// fails the entire scan with an InvalidToken error.
func (lex *Lexer) Tokenize() ([]tokens.Token, error) {
	for !lex.atEOF() && lex.err == nil {
		matched := false

		for _, pattern := range lex.patterns {
			loc := pattern.regex.FindStringIndex(lex.remainder())

			if loc != nil && loc[0] == 0 {
				pattern.handler(lex, pattern.regex)
				matched = true
				break
			}
		}

		if !matched {
			ch, _ := utf8.DecodeRuneInString(lex.remainder())
			lex.fail(diagnostics.NewInvalidToken(ch))
		}
	}

	if lex.err != nil {
		return nil, lex.err
	}

	return lex.Tokens, nil
}

// IdentifierTable returns the interned (name, index) pairs in index
// order. Valid once Tokenize has returned; the lexer no longer mutates
// the table after that.
func (lex *Lexer) IdentifierTable() []table.Entry {
	return lex.idents.Entries()
}
