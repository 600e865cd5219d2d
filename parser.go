package loxtest

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// The annotation grammar, embedded in line comments of the fixtures:
//
//	// expect: <text>                      expected stdout line
//	// Error <text>                        static error on the current line
//	// [line <n>] Error <text>             static error on an explicit line
//	// [c line <n>] Error <text>           same, tagged for this implementation
//	// [java line <n>] Error <text>        tagged for another implementation; ignored
//	// expect runtime error: <text>        expected runtime failure
//	// nontest                             marker, currently without effect
//
// Comment lines that resemble but do not match a pattern carry no
// expectation. The grammar is advisory comment text inside otherwise-valid
// source, so near-misses are not errors.
var (
	outputPattern       = regexp.MustCompile(`// expect: ?(.*)`)
	bareErrorPattern    = regexp.MustCompile(`// (Error.*)`)
	taggedErrorPattern  = regexp.MustCompile(`// \[((java|c) )?line (\d+)\] (Error.*)`)
	runtimeErrorPattern = regexp.MustCompile(`// expect runtime error: (.+)`)
	nontestPattern      = regexp.MustCompile(`// nontest`)
)

// acceptedTag is the implementation tag whose line-tagged error annotations
// apply to the interpreter under test. Annotations tagged for the java
// reference implementation are skipped, since it reports some diagnostics
// differently for the same fault.
const acceptedTag = "c"

type annotationKind int

const (
	annUnrecognized annotationKind = iota
	annOutput
	annBareError
	annTaggedError
	annRuntimeError
	annNontest
)

// annotation is one classified comment line.
type annotation struct {
	kind annotationKind
	text string // payload after the marker
	line int    // for annTaggedError the annotated line, otherwise the source line
	tag  string // implementation tag on a tagged error, "" when untagged
}

// classifyLine checks one source line against every annotation pattern and
// returns all matches, in a fixed order: output, bare error, tagged error,
// runtime error, nontest. The annotation forms use visually distinct
// prefixes, so a well-formed fixture line matches at most one.
func classifyLine(line string, n int) []annotation {
	var anns []annotation
	if m := outputPattern.FindStringSubmatch(line); m != nil {
		anns = append(anns, annotation{kind: annOutput, text: m[1], line: n})
	}
	if m := bareErrorPattern.FindStringSubmatch(line); m != nil {
		anns = append(anns, annotation{kind: annBareError, text: m[1], line: n})
	}
	if m := taggedErrorPattern.FindStringSubmatch(line); m != nil {
		ln, _ := strconv.Atoi(m[3])
		anns = append(anns, annotation{kind: annTaggedError, text: m[4], line: ln, tag: m[2]})
	}
	if m := runtimeErrorPattern.FindStringSubmatch(line); m != nil {
		anns = append(anns, annotation{kind: annRuntimeError, text: m[1], line: n})
	}
	if nontestPattern.MatchString(line) {
		anns = append(anns, annotation{kind: annNontest, line: n})
	}
	return anns
}

// ParseFixtureFile reads a fixture and extracts its expectation.
func ParseFixtureFile(path string) (*Expectation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	return ParseFixture(string(data)), nil
}

// ParseFixture scans the fixture source line by line (1-indexed) and builds
// the expectation from every annotation found. The derived exit code defaults
// to 0, becomes 65 when any static-error annotation registers, and 70 when a
// runtime-error annotation registers; when a fixture carries both, the
// last-seen annotation's code wins and Conflicting flags the fixture.
func ParseFixture(src string) *Expectation {
	exp := &Expectation{}
	for i, line := range strings.Split(src, "\n") {
		n := i + 1
		for _, ann := range classifyLine(line, n) {
			switch ann.kind {
			case annOutput:
				exp.OutputLines = append(exp.OutputLines, ann.text)
			case annBareError:
				exp.ErrorLines = append(exp.ErrorLines, fmt.Sprintf("[line %d] %s", ann.line, ann.text))
				exp.ExitCode = 65
			case annTaggedError:
				if ann.tag != "" && ann.tag != acceptedTag {
					continue
				}
				exp.ErrorLines = append(exp.ErrorLines, fmt.Sprintf("[line %d] %s", ann.line, ann.text))
				exp.ExitCode = 65
			case annRuntimeError:
				exp.RuntimeError = ann.text
				exp.HasRuntimeError = true
				exp.RuntimeErrorLine = n
				exp.ExitCode = 70
			case annNontest:
				// Recognized but deliberately without effect: the corpus
				// defines the marker and never consults it.
			}
		}
	}
	return exp
}
