package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/launchdarkly/contact-manager-tests/framework"
	"github.com/launchdarkly/contact-manager-tests/internal/config"

	"github.com/fatih/color"
	helpers "github.com/launchdarkly/go-test-helpers/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testID(path ...string) framework.TestID { return framework.TestID{Path: path} }

func TestReadDefaults(t *testing.T) {
	var p commandParams
	var errOut bytes.Buffer
	require.True(t, p.Read([]string{"contact-tests"}, &errOut), errOut.String())
	assert.Equal(t, config.DefaultDataFile, p.dataFile)
	assert.Equal(t, config.DefaultEnvFile, p.envFile)
	assert.False(t, p.envFileRequired)
	assert.False(t, p.filters.IsDefined())
}

func TestReadFlags(t *testing.T) {
	var p commandParams
	var errOut bytes.Buffer
	ok := p.Read([]string{"contact-tests", "-run", "creation", "-skip", "platform",
		"-data", "x.csv", "-os", "darwin", "-env-file", "dev.env", "-debug"}, &errOut)
	require.True(t, ok, errOut.String())
	assert.Equal(t, []string{"creation"}, p.filters.MustMatch.Patterns())
	assert.Equal(t, []string{"platform"}, p.filters.MustNotMatch.Patterns())
	assert.Equal(t, "x.csv", p.dataFile)
	assert.Equal(t, "darwin", p.goos)
	assert.Equal(t, "dev.env", p.envFile)
	assert.True(t, p.envFileRequired)
	assert.True(t, p.debug)
	assert.False(t, p.debugAll)
}

func TestReadConfigFileWithFlagOverrides(t *testing.T) {
	yaml := "run: [repeated]\nos: windows\ndebug_all: true\ndata_file: from-config.csv\n"
	withTempFileData(t, []byte(yaml), func(path string) {
		var p commandParams
		var errOut bytes.Buffer
		ok := p.Read([]string{"contact-tests", "-config", path, "-os", "linux"}, &errOut)
		require.True(t, ok, errOut.String())
		assert.Equal(t, []string{"repeated"}, p.filters.MustMatch.Patterns())
		assert.Equal(t, "linux", p.goos)
		assert.True(t, p.debugAll)
		assert.Equal(t, "from-config.csv", p.dataFile)
	})
}

func TestReadErrors(t *testing.T) {
	for _, args := range [][]string{
		{"contact-tests", "-run", "("},
		{"contact-tests", "-unknown"},
		{"contact-tests", "extra"},
		{"contact-tests", "-config", "no-such-file.yaml"},
	} {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			var p commandParams
			var errOut bytes.Buffer
			assert.False(t, p.Read(args, &errOut))
			assert.NotEmpty(t, errOut.String())
		})
	}
}

func TestRerunCommand(t *testing.T) {
	p := commandParams{goos: "darwin"}
	cmd := rerunCommand("contact-tests", p, []framework.TestResult{
		{TestID: testID("parameterized", "csv source", "[1] 0123456789")},
	})
	assert.Equal(t, `contact-tests -os darwin -run '^parameterized$/^csv source$/^\[1\] 0123456789$'`, cmd)
}

func TestRerunCommandKeepsSettingsThatAffectOutcome(t *testing.T) {
	var p commandParams
	var errOut bytes.Buffer
	ok := p.Read([]string{"contact-tests", "-env-file", "dev.env", "-data", "other.csv", "-skip", "platform"}, &errOut)
	require.True(t, ok, errOut.String())

	cmd := rerunCommand("contact-tests", p, []framework.TestResult{
		{TestID: testID("environment", "on developer machine")},
	})
	assert.Equal(t,
		`contact-tests -env-file dev.env -data other.csv -skip platform -run '^environment$/^on developer machine$'`,
		cmd)
}

func TestRerunCommandOmitsDefaults(t *testing.T) {
	var p commandParams
	var errOut bytes.Buffer
	require.True(t, p.Read([]string{"contact-tests"}, &errOut), errOut.String())

	cmd := rerunCommand("contact-tests", p, []framework.TestResult{{TestID: testID("repeated")}})
	assert.Equal(t, `contact-tests -run '^repeated$'`, cmd)
}

func TestExactPatternSelectsOnlyThatTest(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set(exactPattern(testID("null validation", "first name is null"))))
	assert.True(t, filters.AsFilter(testID("null validation")))
	assert.True(t, filters.AsFilter(testID("null validation", "first name is null")))
	assert.False(t, filters.AsFilter(testID("null validation", "last name is null")))
	assert.False(t, filters.AsFilter(testID("contact creation")))
}

func TestConsoleTestLogger(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	var debug framework.CapturingLogger
	debug.Printf("some detail")

	logger := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
	logger.TestStarted(testID("a", "b"))
	logger.TestError(testID("a", "b"), errors.New("line 1\nline 2"))
	logger.TestFinished(testID("a", "b"), true, debug.Output())
	logger.TestFinished(testID("a", "c"), false, debug.Output())
	logger.TestSkipped(testID("a", "d"), "")
	logger.TestSkipped(testID("a", "e"), "disabled on windows")

	out := buf.String()
	assert.Contains(t, out, "[a/b]\n  line 1\n  line 2\n  FAILED: a/b\n    DEBUG [")
	assert.Contains(t, out, "] some detail\n")
	assert.Equal(t, 1, strings.Count(out, "some detail"))
	assert.Contains(t, out, "  SKIPPED: a/d\n")
	assert.Contains(t, out, "  SKIPPED: a/e (disabled on windows)\n")
}

func withTempFileData(t *testing.T, data []byte, action func(path string)) {
	helpers.WithTempFile(func(path string) {
		require.NoError(t, os.WriteFile(path, data, 0600))
		action(path)
	})
}
