// Package pipeline coordinates one compilation: lexing, parsing,
// semantic analysis, three-address-code generation, and optimization.
// A compilation runs to completion or failure before any result is
// observed; every structure in the result is exclusively owned by the
// call that produced it.
package pipeline

import (
	"github.com/sirupsen/logrus"

	"github.com/M4hbod/MLang-Compiler/internal/diagnostics"
	"github.com/M4hbod/MLang-Compiler/internal/frontend/ast"
	"github.com/M4hbod/MLang-Compiler/internal/frontend/lexer"
	"github.com/M4hbod/MLang-Compiler/internal/frontend/parser"
	"github.com/M4hbod/MLang-Compiler/internal/optimizer"
	"github.com/M4hbod/MLang-Compiler/internal/semantics/analyzer"
	"github.com/M4hbod/MLang-Compiler/internal/table"
	"github.com/M4hbod/MLang-Compiler/internal/tac"
	"github.com/M4hbod/MLang-Compiler/internal/tokens"
)

// CompilationResult is the aggregate output of one successful
// compilation. Constructed once per input, immutable thereafter, and
// rebuilt wholesale on the next input.
type CompilationResult struct {
	Input                     string
	Tokens                    []tokens.Token
	Identifiers               []table.Entry
	AST                       ast.Node
	Warnings                  []string
	ThreeAddressCode          []string
	OptimizedAST              ast.Node
	OptimizedThreeAddressCode []string
}

// Pipeline runs the compilation phases in order.
type Pipeline struct {
	diagnostics *diagnostics.DiagnosticBag
}

// New creates a new compilation pipeline.
func New() *Pipeline {
	return &Pipeline{
		diagnostics: diagnostics.NewDiagnosticBag(),
	}
}

// Diagnostics returns the bag that collected this run's warnings.
func (p *Pipeline) Diagnostics() *diagnostics.DiagnosticBag {
	return p.diagnostics
}

// Run executes the full pipeline on one input expression. Lexical and
// syntactic errors abort the whole compilation; semantic findings are
// advisory warnings attached to the result.
func (p *Pipeline) Run(input string) (*CompilationResult, error) {
	logrus.WithField("phase", "lex").Debug("tokenizing input")

	lex := lexer.New(input)
	toks, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}

	// The lexer itself accepts empty input; the pipeline rejects it.
	if len(toks) == 0 {
		return nil, diagnostics.NewUnexpectedEndOfInput()
	}

	identifiers := lex.IdentifierTable()
	logrus.WithField("phase", "lex").Debugf("%d token(s), %d identifier(s)", len(toks), len(identifiers))

	logrus.WithField("phase", "parse").Debug("building AST")
	root, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}

	logrus.WithField("phase", "semantics").Debug("checking AST")
	analyzer.Analyze(root, p.diagnostics)
	warnings := p.diagnostics.Warnings()

	logrus.WithField("phase", "tac").Debug("generating three-address code")
	code := tac.GenerateCode(root)

	logrus.WithField("phase", "optimize").Debug("folding constants and simplifying")
	optimized := optimizer.Optimize(root)

	logrus.WithField("phase", "peephole").Debug("eliminating single-use temporaries")
	optimizedCode := tac.Peephole(tac.GenerateCode(optimized))

	return &CompilationResult{
		Input:                     input,
		Tokens:                    toks,
		Identifiers:               identifiers,
		AST:                       root,
		Warnings:                  warnings,
		ThreeAddressCode:          code,
		OptimizedAST:              optimized,
		OptimizedThreeAddressCode: optimizedCode,
	}, nil
}

// Compile is the plain one-shot entry point used by the compiler facade
// and tests.
func Compile(input string) (*CompilationResult, error) {
	return New().Run(input)
}
