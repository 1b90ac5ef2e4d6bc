// Package contacttests contains the contract tests for the contact manager and their supporting API.
//
// Test harness infrastructure that is not specific to contacts, such as lifecycle hooks,
// conditional execution, repetition, and parameter sources, is in the lower-level framework
// package.
package contacttests
