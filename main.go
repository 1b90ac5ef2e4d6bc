package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/launchdarkly/contact-manager-tests/contacttests"
	"github.com/launchdarkly/contact-manager-tests/framework"
	"github.com/launchdarkly/contact-manager-tests/internal/config"
)

func main() {
	var params commandParams
	if !params.Read(os.Args, os.Stderr) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	env, err := config.LoadEnvironment(params.envFile, params.envFileRequired)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	frameworkConfig := framework.Config{
		Filter: params.filters.AsFilter,
		OS:     params.goos,
		Getenv: env.Getenv,
	}
	if frameworkConfig.OS == "" {
		frameworkConfig.OS = runtime.GOOS
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters, frameworkConfig)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := contacttests.RunTestSuite(
		frameworkConfig,
		contacttests.SuiteParams{DataFile: params.dataFile},
		testLogger,
		mainDebugLogger,
	)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To run only the failed tests:")
		fmt.Printf("  %s\n", rerunCommand(os.Args[0], params, results.Failures))
		os.Exit(1)
	}
}
