//go:build !debug

// Package assert is a helper to allow assertion checks in a standardized
// and low-overhead manner. Calls are guarded with "if assert.DEBUG { ... }"
// so the Go compiler eliminates the whole statement when DEBUG is false.
package assert

// DEBUG gates all assertion checks across the module.
const DEBUG = false

// Assert panics with the formatted message if test is false. Only call
// this from behind an "if assert.DEBUG" guard: arguments are evaluated
// eagerly even when the function body is a no-op.
func Assert(test bool, msg string, a ...interface{}) {}
