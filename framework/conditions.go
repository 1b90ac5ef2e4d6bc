package framework

import (
	"fmt"
	"strings"
)

// OS returns the operating system identifier for this test run, in the same format as
// runtime.GOOS.
func (c *Context) OS() string {
	return c.env.config.OS
}

// Getenv returns the value of an environment variable as seen by this test run.
func (c *Context) Getenv(name string) string {
	return c.env.config.Getenv(name)
}

// RequireOS skips the current test unless the test run's OS is one of the specified values.
func (c *Context) RequireOS(goos ...string) {
	if !containsString(goos, c.OS()) {
		c.SkipWithReason(fmt.Sprintf("enabled only on %s", strings.Join(goos, ", ")))
	}
}

// SkipOnOS skips the current test if the test run's OS is one of the specified values.
func (c *Context) SkipOnOS(goos ...string) {
	if containsString(goos, c.OS()) {
		c.SkipWithReason(fmt.Sprintf("disabled on %s", c.OS()))
	}
}

// AssumeEnv skips the current test unless the environment variable has exactly the specified value.
func (c *Context) AssumeEnv(name, value string) {
	if actual := c.Getenv(name); actual != value {
		c.SkipWithReason(fmt.Sprintf("assumption failed: %s is %q, not %q", name, actual, value))
	}
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
