package reels

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders an engagement count the way the grid badges show it:
// 1.2M, 3.4K, or the plain number. A missing count renders as "0".
func FormatCount(n *int64) string {
	if n == nil {
		return "0"
	}
	v := *n
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", float64(v)/1_000)
	default:
		return printer.Sprintf("%d", v)
	}
}

// FormatPosted renders a posting date relative to now's year. A nil time
// renders as the empty string.
func FormatPosted(t *time.Time, now time.Time) string {
	if t == nil {
		return ""
	}
	local := t.In(now.Location())
	if local.Year() != now.Year() {
		return local.Format("Jan 2, 2006")
	}
	return local.Format("Jan 2")
}
