package framework

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
)

// Config holds the run-wide settings that tests can query.
type Config struct {
	// Filter decides whether a test should run. If nil, all tests run.
	Filter Filter

	// OS is the operating system identifier used by RequireOS and SkipOnOS. It defaults to
	// runtime.GOOS.
	OS string

	// Getenv looks up environment values for AssumeEnv. It defaults to os.Getenv.
	Getenv func(string) string
}

type environment struct {
	config     Config
	results    Results
	testLogger TestLogger
}

// Context represents a test or a group of tests. It implements the same basic functionality as
// Go's testing.T, so it can be passed to the assert and require packages, but it runs outside of
// the Go test runner.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	beforeEach  []func(*Context)
	afterEach   []func(*Context)
	deferred    []func()
}

func Run(
	config Config,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	if config.OS == "" {
		config.OS = runtime.GOOS
	}
	if config.Getenv == nil {
		config.Getenv = os.Getenv
	}
	env := &environment{
		config:     config,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	c.guard(func() { action(c) })
	for len(c.deferred) > 0 {
		last := len(c.deferred) - 1
		fn := c.deferred[last]
		c.deferred = c.deferred[:last]
		c.guard(fn)
	}

	if len(c.id.Path) == 0 && !c.failed {
		return
	}
	result := TestResult{TestID: c.id, Errors: c.errors, Skipped: c.skipped, SkipReason: c.skipReason}
	c.env.results.Tests = append(c.env.results.Tests, result)
	if c.failed {
		c.env.results.Failures = append(c.env.results.Failures, result)
	} else if c.skipped {
		c.env.results.Skipped = append(c.env.results.Skipped, result)
	}
}

// guard runs fn and turns any panic into a test outcome. FailNow and Skip use panics to exit early.
func (c *Context) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped && r == c {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
	}()
	fn()
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
//
// Any hooks registered with BeforeEach and AfterEach on this Context are applied to the subtest.
func (c *Context) Run(name string, action func(*Context)) {
	c.runChild(name, true, action)
}

// runContainer runs a group of generated subtests, such as repetitions or parameterized
// invocations. The hooks of c are not applied to the container itself but are inherited by it,
// so that they apply to each generated subtest instead.
func (c *Context) runContainer(name string, action func(*Context)) {
	c.runChild(name, false, action)
}

func (c *Context) runChild(name string, applyHooks bool, action func(*Context)) {
	path := make([]string, 0, len(c.id.Path)+1)
	id := TestID{Path: append(append(path, c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.config.Filter != nil && !c.env.config.Filter(id) {
		const reason = "excluded by filter parameters"
		result := TestResult{TestID: id, Skipped: true, SkipReason: reason}
		c.env.results.Tests = append(c.env.results.Tests, result)
		c.env.results.Skipped = append(c.env.results.Skipped, result)
		c.env.testLogger.TestSkipped(id, reason)
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	if applyHooks {
		beforeEach, afterEach := c.beforeEach, c.afterEach
		c1.run(func(c1 *Context) {
			for i := len(afterEach) - 1; i >= 0; i-- {
				hook := afterEach[i]
				c1.Defer(func() { hook(c1) })
			}
			for _, hook := range beforeEach {
				hook(c1)
			}
			action(c1)
		})
	} else {
		c1.beforeEach = append(([]func(*Context))(nil), c.beforeEach...)
		c1.afterEach = append(([]func(*Context))(nil), c.afterEach...)
		c1.run(action)
	}
	if c1.skipped && !c1.failed {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// BeforeEach registers a function to be called at the start of every subsequent subtest that is
// started with Run on this Context. The function receives the subtest's Context.
func (c *Context) BeforeEach(hook func(*Context)) {
	c.beforeEach = append(c.beforeEach, hook)
}

// AfterEach registers a function to be called at the end of every subsequent subtest that is
// started with Run on this Context, even if the subtest failed or was skipped.
func (c *Context) AfterEach(hook func(*Context)) {
	c.afterEach = append(c.afterEach, hook)
}

// Defer schedules a function to be called when the current test or group ends. Deferred functions
// run in last-in-first-out order. Calling Defer at the start of a group is how to do cleanup after
// all of its subtests.
func (c *Context) Defer(fn func()) {
	c.deferred = append(c.deferred, fn)
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
