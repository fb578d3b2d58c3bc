// Package svo holds the conventions shared by single value objects:
// what counts as blank input, and how a parse attempt reports its outcome.
package svo

import "strings"

// IsBlank reports whether s carries no value at all.
// Blank input is not an error; parsers turn it into an absent result.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
