// Package runner executes the buffer contents with an external interpreter.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/scribe-editor/scribe/internal/logger"
)

// Result holds the outcome of one interpreter run. Output interleaves
// stdout and stderr in arrival order.
type Result struct {
	Output   string
	ExitCode int
	Duration time.Duration
}

// Runner invokes an external interpreter, piping the program to its stdin.
type Runner struct {
	interpreter string
	args        []string
}

// New creates a runner for the given interpreter binary and arguments.
func New(interpreter string, args []string) *Runner {
	return &Runner{
		interpreter: interpreter,
		args:        append([]string(nil), args...),
	}
}

// Interpreter returns the configured interpreter binary.
func (r *Runner) Interpreter() string {
	return r.interpreter
}

// Run executes src with the interpreter and blocks until it exits or ctx is
// cancelled. A non-zero interpreter exit is NOT an error; the diagnostics are
// part of Result.Output and the code is in Result.ExitCode. An error is
// returned only when the interpreter could not be started at all.
func (r *Runner) Run(ctx context.Context, src []byte) (Result, error) {
	cmd := exec.CommandContext(ctx, r.interpreter, r.args...)
	cmd.Stdin = bytes.NewReader(src)

	// Single buffer keeps stdout and stderr interleaved in arrival order.
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	logger.DebugTagf("runner", "Running %s %v (%d bytes on stdin)", r.interpreter, r.args, len(src))

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := Result{
		Output:   output.String(),
		Duration: elapsed,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Interpreter started and exited non-zero; that's a script
			// failure, not a runner failure.
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("run cancelled: %w", ctxErr)
		}
		return result, fmt.Errorf("failed to run %q: %w", r.interpreter, err)
	}

	return result, nil
}
