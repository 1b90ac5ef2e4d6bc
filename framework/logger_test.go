package framework

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLogger(t *testing.T) {
	var l CapturingLogger
	l.Printf("a %d", 1)
	prefixed := LoggerWithPrefix(&l, "[x] ")
	prefixed.Printf("b")

	output := l.Output()
	require.Len(t, output, 2)
	assert.Equal(t, "a 1", output[0].Message)
	assert.Equal(t, "[x] b", output[1].Message)

	var buf bytes.Buffer
	output.Dump(&buf, "DEBUG ")
	assert.Contains(t, buf.String(), "] a 1\n")
	assert.Contains(t, buf.String(), "DEBUG [")
}

func TestLoggerWithPrefixOfNil(t *testing.T) {
	assert.NotPanics(t, func() { LoggerWithPrefix(nil, "x").Printf("y") })
}

func TestPrintResults(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	PrintResults(&buf, Results{
		Tests:   []TestResult{{TestID: id("a")}, {TestID: id("b"), Skipped: true}},
		Skipped: []TestResult{{TestID: id("b"), Skipped: true}},
	})
	assert.Equal(t, "All tests passed (1 passed, 1 skipped)\n", buf.String())

	buf.Reset()
	failure := TestResult{TestID: id("a", "c"), Errors: []error{errors.New("bad")}}
	PrintResults(&buf, Results{
		Tests:    []TestResult{{TestID: id("a")}, failure},
		Failures: []TestResult{failure},
	})
	assert.Equal(t, "FAILED TESTS (1 of 2):\n  * a/c\n1 passed, 0 skipped\n", buf.String())
}
