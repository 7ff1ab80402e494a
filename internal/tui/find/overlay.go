package find

import (
	"fmt"
	"strings"

	"github.com/interpretive-systems/reelium/internal/theme"
	"github.com/interpretive-systems/reelium/internal/tui/ansi"
)

// RenderOverlay renders the find overlay UI.
func (e *Engine) RenderOverlay(width int, th theme.Theme) []string {
	if !e.active || width <= 0 {
		return nil
	}

	lines := make([]string, 0, 3)
	lines = append(lines, th.DividerText(strings.Repeat("─", width)))
	lines = append(lines, ansi.PadExact(e.InputView(), width))

	status := "Type to find in captions (esc: close)"
	if strings.TrimSpace(e.query) != "" {
		if len(e.matches) == 0 {
			status = "No matches (esc: close)"
		} else {
			status = fmt.Sprintf(
				"Match %d of %d  (enter/↓: next, ↑: prev, esc: close)",
				e.CurrentMatchIndex(),
				e.MatchCount(),
			)
		}
	}
	lines = append(lines, ansi.PadExact(th.FaintText(status), width))

	return lines
}
