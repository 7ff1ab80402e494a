package ansi

import "github.com/mattn/go-runewidth"

// ConsumeEscape consumes an ANSI escape sequence starting at position i.
// Returns the position after the escape sequence.
func ConsumeEscape(s string, i int) int {
	if i >= len(s) || s[i] != 0x1b {
		if i+1 > len(s) {
			return len(s)
		}
		return i + 1
	}

	j := i + 1
	if j >= len(s) {
		return j
	}

	switch s[j] {
	case '[': // CSI
		j++
		for j < len(s) {
			c := s[j]
			j++
			if c >= 0x40 && c <= 0x7e {
				break
			}
		}
	case ']': // OSC
		j++
		for j < len(s) && s[j] != 0x07 {
			j++
		}
		if j < len(s) {
			j++
		}
	default:
		j++
	}
	return j
}

// Strip removes all ANSI escape sequences from the string.
func Strip(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == 0x1b {
			i = ConsumeEscape(s, i)
			continue
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}

// VisualWidth returns the number of terminal cells s occupies, ignoring
// escape sequences. Wide runes count as two cells.
func VisualWidth(s string) int {
	return runewidth.StringWidth(Strip(s))
}
