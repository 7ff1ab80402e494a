package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ClipToWidth truncates string to at most w visual columns without ellipsis.
func ClipToWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "")
}

// PadExact pads or truncates s to exactly w columns (ANSI-aware).
func PadExact(s string, w int) string {
	vw := ansi.StringWidth(s)
	if vw > w {
		return ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", w-vw)
}

// Center pads s on both sides to width w.
func Center(s string, w int) string {
	vw := ansi.StringWidth(s)
	if vw >= w {
		return ansi.Truncate(s, w, "…")
	}
	left := (w - vw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-vw-left)
}

// TruncateToWidth truncates to width with ellipsis if needed.
func TruncateToWidth(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
