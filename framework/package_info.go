// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of tests.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. It can be passed to the testify assert and require packages.
//
// 2. A context can register hooks that run before and after each of its subtests, and can
// defer cleanup until all of its subtests are done.
//
// 3. Tests can skip themselves based on the operating system or on environment variables,
// can be repeated a fixed number of times, and can be run once per parameter value. Parameter
// values can come from a slice, a function, inline CSV data, or a CSV file.
//
// The domain-specific code that knows what is being tested is responsible for building the
// objects under test and for providing a domain-specific test API on top of the test context.
package framework
