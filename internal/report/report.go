// Package report renders a compilation result as a standalone HTML
// document. It is a read-only consumer of the pipeline's output, the
// same role the graphical front end plays.
package report

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"

	"github.com/M4hbod/MLang-Compiler/internal/frontend/ast"
	"github.com/M4hbod/MLang-Compiler/internal/pipeline"
	"github.com/M4hbod/MLang-Compiler/internal/table"
	"github.com/M4hbod/MLang-Compiler/internal/utils/numeric"
)

//go:embed templates/*
var templateFS embed.FS

// ViewModel is the flattened, display-ready form of a CompilationResult.
type ViewModel struct {
	Input        string
	Tokens       []string
	Identifiers  []table.Entry
	ASTText      string
	ASTTree      string
	Warnings     []string
	TAC          []string
	OptimizedAST string
	OptimizedTAC []string
	HasVariables bool
	Evaluation   string
}

// Renderer renders compilation results to HTML.
type Renderer struct {
	reportTemplate *template.Template
}

// NewRenderer parses the embedded report template.
func NewRenderer() (*Renderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	reportTemplate, err := template.New("report.html").ParseFS(trustedFS, "templates/report.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{reportTemplate: reportTemplate}, nil
}

// Render writes the HTML report for one compilation result.
func (r *Renderer) Render(w io.Writer, result *pipeline.CompilationResult) error {
	return r.reportTemplate.Execute(w, BuildViewModel(result))
}

// BuildViewModel flattens a result into template-ready strings.
func BuildViewModel(result *pipeline.CompilationResult) ViewModel {
	tokenStrings := make([]string, len(result.Tokens))
	for i, tok := range result.Tokens {
		tokenStrings[i] = tok.String()
	}

	vm := ViewModel{
		Input:        result.Input,
		Tokens:       tokenStrings,
		Identifiers:  result.Identifiers,
		ASTText:      result.AST.String(),
		ASTTree:      ast.TreeString(result.AST),
		Warnings:     result.Warnings,
		TAC:          result.ThreeAddressCode,
		OptimizedAST: result.OptimizedAST.String(),
		OptimizedTAC: result.OptimizedThreeAddressCode,
		HasVariables: ast.HasVariables(result.AST),
	}

	if !vm.HasVariables {
		vm.Evaluation = numeric.FormatFloat(ast.Evaluate(result.AST))
	}

	return vm
}
