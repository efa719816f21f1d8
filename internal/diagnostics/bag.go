package diagnostics

import (
	"fmt"
	"io"
	"sync"

	"github.com/M4hbod/MLang-Compiler/colors"
)

const (
	compileFailedMsg          = "\nCompilation failed with %d error(s)"
	andWarningMsg             = " and %d warning(s)"
	compileSuccessWithWarning = "\nCompilation succeeded with %d warning(s)\n"
)

// DiagnosticBag collects diagnostics during compilation
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
}

// NewDiagnosticBag creates a new diagnostic bag
func NewDiagnosticBag() *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
	}
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns a copy of all diagnostics in insertion order
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]*Diagnostic, len(db.diagnostics))
	copy(result, db.diagnostics)
	return result
}

// Warnings returns the messages of all warning diagnostics in insertion order
func (db *DiagnosticBag) Warnings() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	warnings := make([]string, 0, db.warnCount)
	for _, diag := range db.diagnostics {
		if diag.Severity == Warning {
			warnings = append(warnings, diag.Message)
		}
	}
	return warnings
}

// EmitAll writes every collected diagnostic followed by a summary line
func (db *DiagnosticBag) EmitAll(w io.Writer) {
	db.mu.Lock()
	diagnostics := make([]*Diagnostic, len(db.diagnostics))
	copy(diagnostics, db.diagnostics)
	db.mu.Unlock()

	for _, diag := range diagnostics {
		switch diag.Severity {
		case Error:
			colors.RED.Fprintf(w, "%s: ", diag.Severity)
		case Warning:
			colors.ORANGE.Fprintf(w, "%s: ", diag.Severity)
		default:
			colors.CYAN.Fprintf(w, "%s: ", diag.Severity)
		}
		fmt.Fprintln(w, diag.Message)
		for _, note := range diag.Notes {
			colors.GREY.Fprintf(w, "  note: %s\n", note.Message)
		}
	}

	db.printSummary(w)
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.errorCount > 0 {
		colors.RED.Fprintf(w, compileFailedMsg, db.errorCount)
		if db.warnCount > 0 {
			colors.RED.Fprintf(w, andWarningMsg, db.warnCount)
		}
		fmt.Fprintln(w)
	} else if db.warnCount > 0 {
		colors.ORANGE.Fprintf(w, compileSuccessWithWarning, db.warnCount)
	}
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
