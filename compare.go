package loxtest

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Outcome is the verdict for one fixture.
type Outcome struct {
	Passed   bool
	Failures []string
}

// Compare checks an execution result against a fixture's expectation. Every
// check runs and failures accumulate, so a single run surfaces every
// mismatch at once rather than just the first.
func Compare(exp *Expectation, res ExecutionResult) Outcome {
	out := Outcome{Passed: true}
	fail := func(format string, args ...any) {
		out.Passed = false
		out.Failures = append(out.Failures, fmt.Sprintf(format, args...))
	}

	if exp.HasRuntimeError {
		// A conforming interpreter emits the message line plus at least one
		// stack-trace line. The message is matched as a suffix of the first
		// line, tolerating an implementation-specific prefix such as an
		// error-kind label; stack-trace contents are not checked further.
		errLines := strings.Split(res.Stderr, "\n")
		if len(errLines) < 2 {
			fail("expected runtime error %q but got none", exp.RuntimeError)
		} else if !strings.HasSuffix(errLines[0], exp.RuntimeError) {
			fail("expected runtime error %q but got %q", exp.RuntimeError, errLines[0])
		}
	} else {
		wantErr := strings.Join(exp.ErrorLines, "\n")
		gotErr := trimTrailing(res.Stderr)
		if wantErr != gotErr {
			fail("error output mismatch:%s", expectedActual(wantErr, gotErr))
		}
	}

	if res.ExitCode != exp.ExitCode {
		fail("expected exit code %d but got %d", exp.ExitCode, res.ExitCode)
	}

	wantOut := strings.Join(exp.OutputLines, "\n")
	gotOut := trimTrailing(res.Stdout)
	if wantOut != gotOut {
		fail("output mismatch:%s", expectedActual(wantOut, gotOut))
	}

	return out
}

// trimTrailing drops trailing whitespace so a final newline from the
// interpreter does not count against an expectation joined without one.
func trimTrailing(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}

// expectedActual renders an expected/actual pair, adding a unified diff when
// either side spans multiple lines.
func expectedActual(want, got string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  expected: %q\n  actual:   %q", want, got)

	if strings.Contains(want, "\n") || strings.Contains(got, "\n") {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "expected",
			ToFile:   "actual",
			Context:  2,
		})
		if err == nil && diff != "" {
			for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
				b.WriteString("\n  " + line)
			}
		}
	}
	return b.String()
}
