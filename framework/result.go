package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestResult
}

type TestResult struct {
	TestID     TestID
	Errors     []error
	Skipped    bool
	SkipReason string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a summary of the test run, listing each failed test.
func PrintResults(out io.Writer, results Results) {
	passed := len(results.Tests) - len(results.Failures) - len(results.Skipped)
	if results.OK() {
		color.New(color.FgGreen).Fprintf(out, "All tests passed (%d passed, %d skipped)\n",
			passed, len(results.Skipped))
		return
	}
	color.New(color.FgRed).Fprintf(out, "FAILED TESTS (%d of %d):\n", len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  * %s\n", f.TestID)
	}
	fmt.Fprintf(out, "%d passed, %d skipped\n", passed, len(results.Skipped))
}
