package framework

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// RunEach runs action once for each parameter, each as its own subtest within a group called name.
// Subtests are named "[n] value" with a 1-based n. BeforeEach and AfterEach hooks of c apply to
// every invocation.
func RunEach[P any](c *Context, name string, params []P, action func(*Context, P)) {
	c.runContainer(name, func(c *Context) {
		for i, p := range params {
			p := p
			c.Run(fmt.Sprintf("[%d] %v", i+1, p), func(c *Context) {
				action(c, p)
			})
		}
	})
}

// CSVRow is one record from a CSV parameter source.
type CSVRow []string

func (r CSVRow) String() string {
	return strings.Join(r, ", ")
}

// Column returns the value at index i, or an empty string if the row is shorter than that.
func (r CSVRow) Column(i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

// CSVSource parses parameters given inline, one CSV record per string, using the same rules as
// ReadCSV. Values containing a comma must be quoted with double quotes, not single quotes.
func CSVSource(lines ...string) ([]CSVRow, error) {
	return ReadCSV(strings.NewReader(strings.Join(lines, "\n")), 0)
}

// CSVFileSource reads parameters from a CSV file, ignoring the first linesToSkip records (for
// instance, a header line). See ReadCSV for how records are counted.
func CSVFileSource(path string, linesToSkip int) ([]CSVRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open CSV source: %w", err)
	}
	defer func() { _ = f.Close() }()
	rows, err := ReadCSV(f, linesToSkip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadCSV parses CSV records. Leading and trailing spaces are removed from values, blank lines
// are ignored, lines starting with "#" are comments, and records may have different lengths.
//
// The quote character is '"' as in RFC 4180; a single quote is an ordinary character. linesToSkip
// counts records, not physical lines: blank lines and comments before the header do not use up
// any of it, and a quoted value spanning several lines is one record.
func ReadCSV(r io.Reader, linesToSkip int) ([]CSVRow, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []CSVRow
	for n := 0; ; n++ {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("malformed CSV data: %w", err)
		}
		if n < linesToSkip {
			continue
		}
		row := make(CSVRow, 0, len(record))
		for _, field := range record {
			row = append(row, strings.TrimRightFunc(field, isSpace))
		}
		rows = append(rows, row)
	}
}

// FirstColumn returns the first value of each row.
func FirstColumn(rows []CSVRow) []string {
	ret := make([]string, 0, len(rows))
	for _, r := range rows {
		ret = append(ret, r.Column(0))
	}
	return ret
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// RunEachFrom is like RunEach, but gets its parameters by calling source. If source returns an
// error, the group fails and no subtests are run.
func RunEachFrom[P any](c *Context, name string, source func() ([]P, error), action func(*Context, P)) {
	params, err := source()
	if err != nil {
		c.runContainer(name, func(c *Context) {
			c.Errorf("cannot load parameters: %s", err)
		})
		return
	}
	RunEach(c, name, params, action)
}
