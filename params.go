package main

import (
	"flag"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/launchdarkly/contact-manager-tests/framework"
	"github.com/launchdarkly/contact-manager-tests/internal/config"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	configFile      string
	envFile         string
	envFileRequired bool
	dataFile        string
	goos            string
	filters         framework.RegexFilters
	debug           bool
	debugAll        bool
}

func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.configFile, "config", "", "YAML settings file (default "+config.DefaultConfigFile+" if it exists)")
	fs.StringVar(&c.envFile, "env-file", "", "file of environment variables (default "+config.DefaultEnvFile+" if it exists)")
	fs.StringVar(&c.dataFile, "data", "", "CSV file for the CSV file source test")
	fs.StringVar(&c.goos, "os", "", "operating system to assume for platform-specific tests")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	configFile, configRequired := c.configFile, true
	if configFile == "" {
		configFile, configRequired = config.DefaultConfigFile, false
	}
	cfg, err := config.LoadFile(configFile, configRequired)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	if err := c.applyConfig(cfg, set); err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	return true
}

// applyConfig fills in any settings that were not given as flags.
func (c *commandParams) applyConfig(cfg config.Config, set map[string]bool) error {
	c.envFileRequired = set["env-file"]
	if !set["env-file"] {
		c.envFile = cfg.EnvFile
		c.envFileRequired = c.envFile != config.DefaultEnvFile
	}
	if !set["data"] {
		c.dataFile = cfg.DataFile
	}
	if !set["os"] {
		c.goos = cfg.OS
	}
	if !set["debug"] {
		c.debug = cfg.Debug
	}
	if !set["debug-all"] {
		c.debugAll = cfg.DebugAll
	}
	if !set["run"] {
		for _, p := range cfg.Run {
			if err := c.filters.MustMatch.Set(p); err != nil {
				return fmt.Errorf("run pattern in config file: %w", err)
			}
		}
	}
	if !set["skip"] {
		for _, p := range cfg.Skip {
			if err := c.filters.MustNotMatch.Set(p); err != nil {
				return fmt.Errorf("skip pattern in config file: %w", err)
			}
		}
	}
	return nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that runs only the specified tests, with the same settings
// that can change their outcome.
func rerunCommand(program string, params commandParams, tests []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	if params.configFile != "" {
		b.add("-config", params.configFile)
	}
	if params.goos != "" {
		b.add("-os", params.goos)
	}
	if params.envFileRequired && params.envFile != "" {
		b.add("-env-file", params.envFile)
	}
	if params.dataFile != "" && params.dataFile != config.DefaultDataFile {
		b.add("-data", params.dataFile)
	}
	for _, p := range params.filters.MustNotMatch.Patterns() {
		b.add("-skip", p)
	}
	for _, t := range tests {
		b.add("-run", exactPattern(t.TestID))
	}
	return b.String()
}

func exactPattern(id framework.TestID) string {
	levels := make([]string, 0, len(id.Path))
	for _, name := range id.Path {
		levels = append(levels, "^"+regexp.QuoteMeta(name)+"$")
	}
	return strings.Join(levels, "/")
}
