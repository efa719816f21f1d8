package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/M4hbod/MLang-Compiler/colors"
	"github.com/M4hbod/MLang-Compiler/internal/compiler"
	"github.com/M4hbod/MLang-Compiler/internal/frontend/ast"
	"github.com/M4hbod/MLang-Compiler/internal/pipeline"
	"github.com/M4hbod/MLang-Compiler/internal/report"
	"github.com/M4hbod/MLang-Compiler/internal/utils/numeric"
)

const version = "0.1.0"

// The canned expressions the original interface offered as one-click
// examples.
var examples = []string{
	"A = B + C",
	"sqrt(13-(6-0)^2) - 10",
	"a + b * c",
	"x^2 + 2*x + 1",
	"result = alpha * beta",
}

var (
	debug      bool
	htmlPath   string
	noOptimize bool
)

func main() {
	root := &cobra.Command{
		Use:   "mlang <expression>",
		Short: "Compile a single arithmetic expression to three-address code",
		Long: "mlang tokenizes, parses, analyzes, and optimizes a single-line\n" +
			"arithmetic expression, printing every intermediate form the\n" +
			"compiler produces along the way.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	root.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	root.Flags().StringVar(&htmlPath, "html", "", "also write an HTML report to this file")
	root.Flags().BoolVar(&noOptimize, "no-optimize", false, "omit the optimized AST and TAC from the output")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the compiler version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("MLang compiler version %s\n", version)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "examples",
		Short: "Compile and print the built-in example expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, example := range examples {
				colors.CYAN.Printf("━━━ %s ━━━\n", example)
				if err := run(example); err != nil {
					return err
				}
				fmt.Println()
			}
			return nil
		},
	})

	if err := root.Execute(); err != nil {
		colors.RED.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(expression string) error {
	result, err := compiler.Compile(&compiler.Options{
		Expression: expression,
		Debug:      debug,
	})
	if err != nil {
		return err
	}

	printResult(result)

	if htmlPath != "" {
		if err := writeReport(result, htmlPath); err != nil {
			return err
		}
		colors.GREEN.Printf("report written to %s\n", htmlPath)
	}

	return nil
}

func printResult(result *pipeline.CompilationResult) {
	colors.CYAN.Println("Tokens:")
	for _, tok := range result.Tokens {
		fmt.Printf("  %s\n", tok.String())
		if debug {
			tok.Debug()
		}
	}

	if len(result.Identifiers) > 0 {
		colors.CYAN.Println("Identifier table:")
		for _, entry := range result.Identifiers {
			fmt.Printf("  %s -> id%d\n", entry.Name, entry.Index)
		}
	}

	colors.CYAN.Println("AST:")
	fmt.Printf("  %s\n", result.AST)
	fmt.Print(ast.TreeString(result.AST))

	if ast.HasVariables(result.AST) {
		colors.GREY.Println("Expression contains variables - no numeric evaluation")
	} else {
		colors.GREEN.Printf("Result: %s\n", numeric.FormatFloat(ast.Evaluate(result.AST)))
	}

	for _, warning := range result.Warnings {
		colors.ORANGE.Println(warning)
	}

	colors.CYAN.Println("Three-address code:")
	for _, line := range result.ThreeAddressCode {
		fmt.Printf("  %s\n", line)
	}

	if noOptimize {
		return
	}

	colors.CYAN.Println("Optimized AST:")
	fmt.Printf("  %s\n", result.OptimizedAST)

	colors.CYAN.Println("Optimized three-address code:")
	for _, line := range result.OptimizedThreeAddressCode {
		fmt.Printf("  %s\n", line)
	}
}

func writeReport(result *pipeline.CompilationResult, path string) error {
	renderer, err := report.NewRenderer()
	if err != nil {
		return errors.Wrap(err, "failed to load report template")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := renderer.Render(f, result); err != nil {
		return errors.Wrap(err, "failed to render report")
	}

	return nil
}
