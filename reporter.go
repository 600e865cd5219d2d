package loxtest

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter prints per-fixture progress and the final tally.
type Reporter struct {
	Out io.Writer

	header  *color.Color
	failure *color.Color
}

// NewReporter creates a reporter that writes to the given output.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		Out:     out,
		header:  color.New(color.FgWhite),
		failure: color.New(color.FgRed),
	}
}

// ReportHeader prints the fixture banner before it runs.
func (r *Reporter) ReportHeader(fixture string) {
	r.header.Fprintf(r.Out, "===== %s\n", fixture)
}

// ReportOutcome prints the comparator's diagnostics when the fixture failed.
// Passing fixtures print nothing beyond their header.
func (r *Reporter) ReportOutcome(fixture string, out Outcome) {
	if out.Passed {
		return
	}
	r.failure.Fprintf(r.Out, "FAIL: %s\n", fixture)
	for _, f := range out.Failures {
		r.failure.Fprintf(r.Out, "  %s\n", f)
	}
}

// ReportSummary prints the final tally.
func (r *Reporter) ReportSummary(s Summary) {
	fmt.Fprintf(r.Out, "%d tests passed, %d tests failed.\n", s.Passed, s.Failed)
}

// Summary holds the running pass/fail totals for a run. It is the only state
// carried across fixtures.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Add folds one fixture's outcome into the totals.
func (s *Summary) Add(out Outcome) {
	s.Total++
	if out.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
}
