package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/interpretive-systems/reelium/internal/theme"
)

// ToastKind selects the colour of a toast.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// Toast is a transient notification shown in the status bar.
type Toast struct {
	ID   int
	Kind ToastKind
	Text string
}

// StatusBar manages the bottom status bar.
type StatusBar struct {
	theme     theme.Theme
	lastFetch time.Time
	keyBuffer string
	toast     *Toast
	nextID    int
}

// NewStatusBar creates a new status bar.
func NewStatusBar(th theme.Theme) *StatusBar {
	return &StatusBar{theme: th}
}

// SetLastFetch updates the fetch timestamp.
func (s *StatusBar) SetLastFetch(t time.Time) {
	s.lastFetch = t
}

// SetKeyBuffer updates the key buffer display.
func (s *StatusBar) SetKeyBuffer(buf string) {
	s.keyBuffer = buf
}

// ShowToast replaces any current toast and returns the new toast's id.
func (s *StatusBar) ShowToast(kind ToastKind, text string) int {
	s.nextID++
	s.toast = &Toast{ID: s.nextID, Kind: kind, Text: text}
	return s.nextID
}

// ClearToast removes the toast with id. A newer toast is left alone.
func (s *StatusBar) ClearToast(id int) {
	if s.toast != nil && s.toast.ID == id {
		s.toast = nil
	}
}

// Toast returns the visible toast, if any.
func (s *StatusBar) Toast() (Toast, bool) {
	if s.toast == nil {
		return Toast{}, false
	}
	return *s.toast, true
}

// Render renders the status bar.
func (s *StatusBar) Render(width int) string {
	var left string
	switch {
	case s.toast != nil:
		left = s.renderToast(*s.toast)
	case s.keyBuffer != "":
		left = lipgloss.NewStyle().Faint(true).Render(s.keyBuffer)
	default:
		left = lipgloss.NewStyle().Faint(true).Render("/: search  ?: help  q: quit")
	}

	right := ""
	if !s.lastFetch.IsZero() {
		right = lipgloss.NewStyle().Faint(true).Render("fetched: " + s.lastFetch.Format("15:04:05"))
	}

	// Ensure right part is always visible
	rightW := lipgloss.Width(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "…")
	}

	avail := width - rightW - 1
	if lipgloss.Width(left) > avail {
		left = ansi.Truncate(left, avail, "…")
	} else if lipgloss.Width(left) < avail {
		left = left + strings.Repeat(" ", avail-lipgloss.Width(left))
	}
	return left + " " + right
}

func (s *StatusBar) renderToast(t Toast) string {
	switch t.Kind {
	case ToastSuccess:
		return s.theme.SuccessText("✓ " + t.Text)
	case ToastError:
		return s.theme.ErrorText("✗ " + t.Text)
	default:
		return s.theme.AccentText("• " + t.Text)
	}
}
