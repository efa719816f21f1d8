// Package compiler is the public facade consumed by the CLI and the
// report renderer: string in, structured result out.
package compiler

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/M4hbod/MLang-Compiler/internal/pipeline"
)

// Options for compilation
type Options struct {
	// The expression to compile
	Expression string
	// Debug enables phase logging on stderr
	Debug bool
}

// Compile compiles a single expression and returns the aggregate
// result. A failed compile yields no partial result.
func Compile(opts *Options) (*pipeline.CompilationResult, error) {
	if opts.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	result, err := pipeline.Compile(opts.Expression)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile %q", strings.TrimSpace(opts.Expression))
	}

	return result, nil
}
