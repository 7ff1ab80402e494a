package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/reelium/internal/reels"
	"github.com/interpretive-systems/reelium/internal/theme"
	"github.com/mattn/go-runewidth"
)

const (
	CardHeight   = 5
	cardMinWidth = 26
	cardGap      = 1
	maxColumns   = 3
)

// Grid manages the thumbnail grid of reel cards.
type Grid struct {
	theme    theme.Theme
	reels    []reels.Reel
	selected int
	offset   int // first visible row
	locked   bool

	// layout of the last Render, used for hit testing
	columns   int
	cardWidth int
	rows      int
}

// NewGrid creates a new grid.
func NewGrid(th theme.Theme) *Grid {
	return &Grid{theme: th}
}

// SetReels updates the grid contents.
func (g *Grid) SetReels(list []reels.Reel) {
	g.reels = list
	if g.selected >= len(list) {
		g.selected = len(list) - 1
	}
	if g.selected < 0 {
		g.selected = 0
	}
	if len(list) == 0 {
		g.offset = 0
	}
}

// Len returns the number of cards.
func (g *Grid) Len() int {
	return len(g.reels)
}

// Selected returns the selected card index.
func (g *Grid) Selected() int {
	return g.selected
}

// SetScrollLocked freezes selection and scrolling while the viewer is open.
func (g *Grid) SetScrollLocked(locked bool) {
	g.locked = locked
}

// Locked reports whether the grid is frozen.
func (g *Grid) Locked() bool {
	return g.locked
}

// Select moves the selection to i.
func (g *Grid) Select(i int) bool {
	if g.locked || i < 0 || i >= len(g.reels) || i == g.selected {
		return false
	}
	g.selected = i
	return true
}

// MoveSelection moves the selection by delta cards, clamped.
func (g *Grid) MoveSelection(delta int) bool {
	if g.locked || len(g.reels) == 0 {
		return false
	}
	newSel := g.selected + delta
	if newSel < 0 {
		newSel = 0
	}
	if newSel >= len(g.reels) {
		newSel = len(g.reels) - 1
	}
	changed := newSel != g.selected
	g.selected = newSel
	return changed
}

// MoveRow moves the selection by delta rows.
func (g *Grid) MoveRow(delta int) bool {
	return g.MoveSelection(delta * g.Columns())
}

// GoToTop moves selection to the first card.
func (g *Grid) GoToTop() bool {
	if g.locked || len(g.reels) == 0 || g.selected == 0 {
		return false
	}
	g.selected = 0
	return true
}

// GoToBottom moves selection to the last card.
func (g *Grid) GoToBottom() bool {
	if g.locked || len(g.reels) == 0 {
		return false
	}
	last := len(g.reels) - 1
	if g.selected == last {
		return false
	}
	g.selected = last
	return true
}

// PageDown moves the selection one screen of rows down.
func (g *Grid) PageDown() bool {
	return g.MoveRow(g.visibleRows())
}

// PageUp moves the selection one screen of rows up.
func (g *Grid) PageUp() bool {
	return g.MoveRow(-g.visibleRows())
}

// Columns returns the column count of the last render.
func (g *Grid) Columns() int {
	if g.columns < 1 {
		return 1
	}
	return g.columns
}

func (g *Grid) visibleRows() int {
	if g.rows < 1 {
		return 1
	}
	return g.rows
}

// EnsureVisible scrolls so the selected row is on screen.
func (g *Grid) EnsureVisible(visibleRows int) {
	if len(g.reels) == 0 || visibleRows <= 0 {
		return
	}
	cols := g.Columns()
	totalRows := (len(g.reels) + cols - 1) / cols
	maxStart := totalRows - visibleRows
	if maxStart < 0 {
		maxStart = 0
	}
	row := g.selected / cols
	if row < g.offset {
		g.offset = row
	} else if row >= g.offset+visibleRows {
		g.offset = row - visibleRows + 1
	}
	if g.offset > maxStart {
		g.offset = maxStart
	}
	if g.offset < 0 {
		g.offset = 0
	}
}

// CellAt maps a position relative to the grid's top-left corner to a card
// index, using the layout of the last Render.
func (g *Grid) CellAt(x, y int) (int, bool) {
	if g.columns == 0 || x < 0 || y < 0 {
		return 0, false
	}
	row := y / CardHeight
	if row >= g.rows {
		return 0, false
	}
	stride := g.cardWidth + cardGap
	col := x / stride
	if col >= g.columns || x%stride >= g.cardWidth {
		return 0, false
	}
	idx := (g.offset+row)*g.columns + col
	if idx >= len(g.reels) {
		return 0, false
	}
	return idx, true
}

// Render renders the visible rows of cards to lines.
func (g *Grid) Render(width, height int, now time.Time) []string {
	if len(g.reels) == 0 || width <= 0 {
		return nil
	}
	g.columns = columnsFor(width)
	g.cardWidth = (width - cardGap*(g.columns-1)) / g.columns
	g.rows = height / CardHeight
	if g.rows < 1 {
		g.rows = 1
	}
	if !g.locked {
		g.EnsureVisible(g.rows)
	}

	gap := strings.Repeat(" ", cardGap)
	lines := make([]string, 0, height)
	for r := g.offset; r < g.offset+g.rows; r++ {
		first := r * g.columns
		if first >= len(g.reels) {
			break
		}
		cells := make([]string, 0, g.columns*2)
		for c := 0; c < g.columns; c++ {
			idx := first + c
			if idx >= len(g.reels) {
				break
			}
			if c > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, g.renderCard(idx, now))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		lines = append(lines, strings.Split(row, "\n")...)
	}
	if len(lines) > height && height > 0 {
		lines = lines[:height]
	}
	return lines
}

func (g *Grid) renderCard(idx int, now time.Time) string {
	r := g.reels[idx]
	inner := g.cardWidth - 4
	if inner < 1 {
		inner = 1
	}

	head := fmt.Sprintf("#%d", idx+1)
	if d := reels.FormatPosted(r.PostedAt, now); d != "" {
		head += " · " + d
	}
	badge := ""
	if r.HasViews() {
		badge = "▶ " + reels.FormatCount(r.Views)
	}
	header := spread(head, badge, inner)

	stats := runewidth.Truncate(
		fmt.Sprintf("♥ %s  ✎ %s", reels.FormatCount(r.Likes), reels.FormatCount(r.Comments)),
		inner, "…")

	caption := strings.Join(strings.Fields(r.Caption), " ")
	if caption == "" {
		caption = g.theme.FaintText("(no caption)")
	} else {
		caption = runewidth.Truncate(caption, inner, "…")
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(g.theme.CardBorder(idx == g.selected)).
		Padding(0, 1).
		Width(g.cardWidth - 2)
	return style.Render(strings.Join([]string{
		g.theme.AccentText(header),
		stats,
		caption,
	}, "\n"))
}

// spread lays out left and right on one line of width w, dropping right when
// there is no room for both.
func spread(left, right string, w int) string {
	lw, rw := runewidth.StringWidth(left), runewidth.StringWidth(right)
	if right == "" || lw+1+rw > w {
		return runewidth.Truncate(left, w, "…")
	}
	return left + strings.Repeat(" ", w-lw-rw) + right
}

func columnsFor(width int) int {
	cols := (width + cardGap) / (cardMinWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	if cols > maxColumns {
		cols = maxColumns
	}
	return cols
}
