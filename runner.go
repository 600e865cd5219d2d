package loxtest

import (
	"bytes"
	"fmt"
	"os/exec"
)

// ExecutionResult captures what one interpreter run actually produced.
type ExecutionResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes fixtures against the interpreter under test. The
// interpreter is invoked as `<path> <fixture>` and must write program output
// to stdout, diagnostics to stderr, and exit 0 on success, 65 on a static
// error, 70 on a runtime error.
type Runner struct {
	InterpreterPath string
}

// NewRunner creates a runner for the given interpreter executable.
func NewRunner(interpreterPath string) *Runner {
	return &Runner{InterpreterPath: interpreterPath}
}

// Run invokes the interpreter with the fixture path as its sole argument and
// blocks until it terminates. A failure to launch the binary is returned as
// an error: it signals a broken harness environment, not a fixture
// regression, and aborts the whole run. There is no timeout; a hung
// interpreter blocks the harness indefinitely.
func (r *Runner) Run(fixturePath string) (ExecutionResult, error) {
	cmd := exec.Command(r.InterpreterPath, fixturePath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := ExecutionResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return res, fmt.Errorf("running %s: %w", r.InterpreterPath, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	return res, nil
}
