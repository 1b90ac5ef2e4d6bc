package framework

import (
	"errors"
	"os"
	"strings"
	"testing"

	helpers "github.com/launchdarkly/go-test-helpers/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEach(t *testing.T) {
	var ids []string
	var values []int
	results := Run(Config{}, nil, func(c *Context) {
		RunEach(c, "numbers", []int{10, 20}, func(c *Context, n int) {
			ids = append(ids, c.ID().String())
			values = append(values, n)
		})
	})
	assert.True(t, results.OK())
	assert.Equal(t, []string{"numbers/[1] 10", "numbers/[2] 20"}, ids)
	assert.Equal(t, []int{10, 20}, values)
}

func TestRunEachAppliesHooksToEachInvocation(t *testing.T) {
	count := 0
	Run(Config{}, nil, func(c *Context) {
		c.BeforeEach(func(*Context) { count++ })
		RunEach(c, "strings", []string{"a", "b", "c"}, func(*Context, string) {})
	})
	assert.Equal(t, 3, count)
}

func TestRunEachFailureIsPerInvocation(t *testing.T) {
	results := Run(Config{}, nil, func(c *Context) {
		RunEach(c, "p", []string{"good", "bad"}, func(c *Context, s string) {
			assert.Equal(c, "good", s)
		})
	})
	assert.Equal(t, []string{"p/[2] bad"}, testIDs(results.Failures))
}

func TestCSVSource(t *testing.T) {
	rows, err := CSVSource("0123456789", " 0123456987 ", `"a, b", c`, "", "# comment")
	require.NoError(t, err)
	assert.Equal(t, []CSVRow{{"0123456789"}, {"0123456987"}, {"a, b", "c"}}, rows)
	assert.Equal(t, "a, b, c", rows[2].String())
	assert.Equal(t, "", rows[0].Column(1))
}

func TestReadCSVWithLinesToSkip(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("phone\n1\n2\n"), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, FirstColumn(rows))
}

func TestReadCSVLinesToSkipCountsRecords(t *testing.T) {
	data := "# phone numbers\n\nphone\n\"0123\n4567\"\n0123456789\n"
	rows, err := ReadCSV(strings.NewReader(data), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"0123\n4567", "0123456789"}, FirstColumn(rows))
}

func TestCSVSingleQuoteIsNotAQuoteCharacter(t *testing.T) {
	rows, err := CSVSource("'a, b'")
	require.NoError(t, err)
	assert.Equal(t, []CSVRow{{"'a", "b'"}}, rows)
}

func TestMalformedCSV(t *testing.T) {
	_, err := CSVSource(`"unterminated`)
	assert.Error(t, err)
}

func TestCSVFileSource(t *testing.T) {
	withTempFileData(t, []byte("phoneNumber\n0123456789\n0123456987\n"), func(path string) {
		rows, err := CSVFileSource(path, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"0123456789", "0123456987"}, FirstColumn(rows))
	})
}

func TestCSVFileSourceMissingFile(t *testing.T) {
	_, err := CSVFileSource("this-file-does-not-exist.csv", 0)
	assert.Error(t, err)
}

func TestRunEachFrom(t *testing.T) {
	var values []string
	results := Run(Config{}, nil, func(c *Context) {
		RunEachFrom(c, "good", func() ([]string, error) { return []string{"x"}, nil },
			func(c *Context, s string) { values = append(values, s) })
		RunEachFrom(c, "bad", func() ([]string, error) { return nil, errors.New("no data") },
			func(c *Context, s string) { values = append(values, s) })
	})
	assert.Equal(t, []string{"x"}, values)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "bad", results.Failures[0].TestID.String())
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "no data")
}

func withTempFileData(t *testing.T, data []byte, action func(path string)) {
	helpers.WithTempFile(func(path string) {
		require.NoError(t, os.WriteFile(path, data, 0600))
		action(path)
	})
}
