// Package util provides small helpers not available in the standard
// library that the rest of the module reaches for repeatedly.
package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. for perft node
// counts ("197,742" rather than "197742").
func FormatCount(n int64) string {
	return out.Sprintf("%d", n)
}

// Abs is a non-branching absolute value for int64.
func Abs(n int64) int64 {
	y := n >> 63
	return (n ^ y) - y
}
