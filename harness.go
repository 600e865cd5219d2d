package loxtest

import (
	"fmt"
	"io"
	"regexp"
)

// Config holds the configuration for one harness run.
type Config struct {
	InterpreterPath string
	FixturePaths    []string
	Skip            SkipList
	PathPattern     string // Go regex filtering fixture paths; empty matches all
	Output          io.Writer
	ErrOutput       io.Writer
}

// matchesFilter returns true if the fixture path matches the configured
// pattern. If no pattern is set, all fixtures match.
func matchesFilter(cfg Config, path string) (bool, error) {
	if cfg.PathPattern == "" {
		return true, nil
	}
	return regexp.MatchString(cfg.PathPattern, path)
}

// selectFixtures collects fixtures and applies the skip list and the path
// filter, preserving discovery order.
func selectFixtures(cfg Config) ([]string, error) {
	fixtures, err := CollectFixtures(cfg.FixturePaths)
	if err != nil {
		return nil, err
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("no fixtures found")
	}

	var selected []string
	for _, fixture := range fixtures {
		if cfg.Skip.Skips(fixture) {
			continue
		}
		ok, err := matchesFilter(cfg, fixture)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		if ok {
			selected = append(selected, fixture)
		}
	}
	return selected, nil
}

// List prints the fixtures that would run, one per line, without running
// them. Returns 0 on success, 1 on error.
func List(cfg Config) int {
	fixtures, err := selectFixtures(cfg)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}
	for _, fixture := range fixtures {
		fmt.Fprintln(cfg.Output, fixture)
	}
	return 0
}

// Run executes every surviving fixture against the interpreter, prints
// per-fixture diagnostics and the final tally, and returns the process exit
// status: 0 when everything passed, 1 when any fixture failed or the
// environment is broken. An unreadable fixture or an interpreter that cannot
// be launched aborts the run immediately; those are harness misconfigurations,
// not fixture regressions.
func Run(cfg Config) int {
	fixtures, err := selectFixtures(cfg)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}

	runner := NewRunner(cfg.InterpreterPath)
	reporter := NewReporter(cfg.Output)
	var summary Summary

	for _, fixture := range fixtures {
		reporter.ReportHeader(fixture)

		exp, err := ParseFixtureFile(fixture)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
			return 1
		}
		if exp.Conflicting() {
			fmt.Fprintf(cfg.ErrOutput, "warning: %s declares both a static and a runtime error expectation\n", fixture)
		}

		res, err := runner.Run(fixture)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
			return 1
		}

		outcome := Compare(exp, res)
		reporter.ReportOutcome(fixture, outcome)
		summary.Add(outcome)
	}

	reporter.ReportSummary(summary)

	if summary.Failed > 0 {
		return 1
	}
	return 0
}
