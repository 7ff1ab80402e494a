package scrape

import (
	"strconv"
	"strings"
)

const (
	MinLimit     = 1
	MaxLimit     = 50
	DefaultLimit = 6
)

// NormalizeUsername trims whitespace and drops every '@' so both "@natgeo"
// and "natgeo" address the same account.
func NormalizeUsername(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "@", ""))
}

// ClampLimit clamps n into [MinLimit, MaxLimit].
func ClampLimit(n int) int {
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// ParseLimit parses user input, falling back to DefaultLimit when the input
// is not a non-zero number, and clamps the result.
func ParseLimit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return DefaultLimit
	}
	return ClampLimit(n)
}
