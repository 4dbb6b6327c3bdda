package query

import "strings"

// Tokenize normalizes a raw query into lowercase tokens split on runs of
// whitespace. Pure and deterministic; empty or all-whitespace input yields
// an empty slice, which callers report as an empty-query error.
func Tokenize(q string) []string {
	return strings.Fields(strings.ToLower(q))
}
