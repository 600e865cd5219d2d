package loxtest

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// loxStub is an interpreter stub that handles the fixtures used by the
// end-to-end tests: it prints "42" for print.lox, reports a static error with
// exit 65 for error.lox, and behaves for everything else.
const loxStub = `case "$1" in
*print.lox) echo 42 ;;
*error.lox) echo '[line 1] Error "bad"' >&2; exit 65 ;;
esac
`

func TestRunAllPassing(t *testing.T) {
	interp := fakeInterpreter(t, loxStub)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "print.lox"), "print 42; // expect: 42\n")
	writeFile(t, filepath.Join(dir, "error.lox"), `foo // Error "bad"`+"\n")

	var out, errOut bytes.Buffer
	code := Run(Config{
		InterpreterPath: interp,
		FixturePaths:    []string{dir},
		Output:          &out,
		ErrOutput:       &errOut,
	})

	if code != 0 {
		t.Fatalf("expected exit 0, got %d; stderr: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "2 tests passed, 0 tests failed.") {
		t.Errorf("unexpected summary in output:\n%s", out.String())
	}
}

func TestRunReportsFailure(t *testing.T) {
	interp := fakeInterpreter(t, loxStub)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "print.lox"), "print 42; // expect: 43\n")

	var out, errOut bytes.Buffer
	code := Run(Config{
		InterpreterPath: interp,
		FixturePaths:    []string{dir},
		Output:          &out,
		ErrOutput:       &errOut,
	})

	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "output mismatch") {
		t.Errorf("expected a mismatch diagnostic in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "0 tests passed, 1 tests failed.") {
		t.Errorf("unexpected summary in output:\n%s", out.String())
	}
}

func TestRunHeadersPrecedeDiagnostics(t *testing.T) {
	interp := fakeInterpreter(t, loxStub)
	dir := t.TempDir()
	fixture := filepath.Join(dir, "print.lox")
	writeFile(t, fixture, "print 42; // expect: 42\n")

	var out, errOut bytes.Buffer
	Run(Config{
		InterpreterPath: interp,
		FixturePaths:    []string{dir},
		Output:          &out,
		ErrOutput:       &errOut,
	})

	if !strings.Contains(out.String(), "===== "+fixture) {
		t.Errorf("expected a fixture header in output:\n%s", out.String())
	}
}

func TestRunSkipsExcludedFixtures(t *testing.T) {
	interp := fakeInterpreter(t, loxStub)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "print.lox"), "print 42; // expect: 42\n")
	// Would fail against the stub, but never runs.
	writeFile(t, filepath.Join(dir, "class", "empty.lox"), "print 1; // expect: 1\n")

	var out, errOut bytes.Buffer
	code := Run(Config{
		InterpreterPath: interp,
		FixturePaths:    []string{dir},
		Skip:            SkipList{filepath.ToSlash(filepath.Join(dir, "class"))},
		Output:          &out,
		ErrOutput:       &errOut,
	})

	if code != 0 {
		t.Fatalf("expected exit 0, got %d; output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "1 tests passed, 0 tests failed.") {
		t.Errorf("skipped fixture affected the tally:\n%s", out.String())
	}
}

func TestRunPathFilter(t *testing.T) {
	interp := fakeInterpreter(t, loxStub)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "print.lox"), "print 42; // expect: 42\n")
	writeFile(t, filepath.Join(dir, "other.lox"), "print 1; // expect: 2\n")

	var out, errOut bytes.Buffer
	code := Run(Config{
		InterpreterPath: interp,
		FixturePaths:    []string{dir},
		PathPattern:     `print\.lox$`,
		Output:          &out,
		ErrOutput:       &errOut,
	})

	if code != 0 {
		t.Fatalf("expected exit 0, got %d; output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "1 tests passed, 0 tests failed.") {
		t.Errorf("unexpected summary in output:\n%s", out.String())
	}
}

func TestRunInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "print.lox"), "print 1;\n")

	var out, errOut bytes.Buffer
	code := Run(Config{
		FixturePaths: []string{dir},
		PathPattern:  `(`,
		Output:       &out,
		ErrOutput:    &errOut,
	})

	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut.String(), "invalid pattern") {
		t.Errorf("unexpected error output:\n%s", errOut.String())
	}
}

func TestRunNoFixtures(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(Config{
		FixturePaths: []string{t.TempDir()},
		Output:       &out,
		ErrOutput:    &errOut,
	})

	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut.String(), "no fixtures found") {
		t.Errorf("unexpected error output:\n%s", errOut.String())
	}
}

func TestRunMissingInterpreterAborts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "print.lox"), "print 1;\n")

	var out, errOut bytes.Buffer
	code := Run(Config{
		InterpreterPath: filepath.Join(dir, "no-such-binary"),
		FixturePaths:    []string{dir},
		Output:          &out,
		ErrOutput:       &errOut,
	})

	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if strings.Contains(out.String(), "tests passed") {
		t.Errorf("expected the run to abort before the summary:\n%s", out.String())
	}
}

func TestRunWarnsOnConflictingFixture(t *testing.T) {
	interp := fakeInterpreter(t, loxStub)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "conflict.lox"),
		`foo // Error "bad"`+"\nbar(); // expect runtime error: boom\n")

	var out, errOut bytes.Buffer
	Run(Config{
		InterpreterPath: interp,
		FixturePaths:    []string{dir},
		Output:          &out,
		ErrOutput:       &errOut,
	})

	if !strings.Contains(errOut.String(), "both a static and a runtime error expectation") {
		t.Errorf("expected a corpus-defect warning, got:\n%s", errOut.String())
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "print.lox"), "print 1;\n")
	writeFile(t, filepath.Join(dir, "class", "empty.lox"), "class A {}\n")

	var out, errOut bytes.Buffer
	code := List(Config{
		FixturePaths: []string{dir},
		Skip:         SkipList{filepath.ToSlash(filepath.Join(dir, "class"))},
		Output:       &out,
		ErrOutput:    &errOut,
	})

	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "print.lox") {
		t.Errorf("expected print.lox in the listing:\n%s", out.String())
	}
	if strings.Contains(out.String(), "class") {
		t.Errorf("skipped fixture listed:\n%s", out.String())
	}
}
