// Package loxtest is a black-box conformance-test harness for Lox
// interpreters. It runs an interpreter executable against a corpus of .lox
// fixtures whose expected behavior is embedded in comment annotations, and
// reports pass/fail per fixture plus an aggregate tally.
package loxtest

// Expectation is the parsed form of all annotations in one fixture.
type Expectation struct {
	// OutputLines are the expected stdout lines, in source order.
	OutputLines []string

	// ErrorLines are the expected stderr lines for static errors, each
	// already formatted as "[line <n>] <message>".
	ErrorLines []string

	// RuntimeError, when HasRuntimeError is set, is the message the fixture
	// is expected to fail with at runtime rather than at compile time.
	RuntimeError    string
	HasRuntimeError bool

	// RuntimeErrorLine is the source line of the runtime-error annotation.
	// Retained for stack-trace verification once interpreters report proper
	// stack traces; not compared today.
	RuntimeErrorLine int

	// ExitCode is the exit code the interpreter must terminate with:
	// 0 for a clean run, 65 for a static error, 70 for a runtime error.
	ExitCode int
}

// Conflicting reports whether the fixture declares both a static-error and a
// runtime-error expectation. A well-formed fixture sets at most one; both at
// once is a corpus-authoring defect, flagged by the harness as a warning.
func (e *Expectation) Conflicting() bool {
	return e.HasRuntimeError && len(e.ErrorLines) > 0
}
