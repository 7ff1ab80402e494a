package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// WrapLine wraps a single line to the given width, preserving ANSI codes.
// Words are kept whole where they fit.
func WrapLine(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	wrapped := ansi.Wrap(s, width, "")
	return strings.Split(wrapped, "\n")
}

// WrapLines wraps multiple lines.
func WrapLines(lines []string, width int) []string {
	result := make([]string, 0, len(lines)*2)
	for _, line := range lines {
		result = append(result, WrapLine(line, width)...)
	}
	return result
}

// ClampLines keeps at most n lines, marking the last kept line with an
// ellipsis when lines were dropped. It reports whether anything was cut.
func ClampLines(lines []string, n, width int) ([]string, bool) {
	if n <= 0 || len(lines) <= n {
		return lines, false
	}
	out := append([]string(nil), lines[:n]...)
	last := out[n-1]
	if ansi.StringWidth(last)+1 > width {
		last = ansi.Truncate(last, width-1, "")
	}
	out[n-1] = last + "…"
	return out, true
}
