package components

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/interpretive-systems/reelium/internal/reels"
	"github.com/interpretive-systems/reelium/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func i64(n int64) *int64 { return &n }

func gridReels(n int) []reels.Reel {
	out := make([]reels.Reel, n)
	for i := range out {
		out[i] = reels.Reel{
			ID:      fmt.Sprintf("r%d", i),
			Likes:   i64(int64(1200 * (i + 1))),
			Caption: fmt.Sprintf("caption number %d", i+1),
		}
	}
	return out
}

func TestGrid_RenderCards(t *testing.T) {
	g := NewGrid(theme.DefaultTheme())
	list := gridReels(4)
	posted := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	list[0].Views = i64(12_300)
	list[0].PostedAt = &posted
	g.SetReels(list)

	lines := g.Render(80, 20, testNow)
	plain := ansi.Strip(strings.Join(lines, "\n"))

	assert.Equal(t, 3, g.Columns())
	assert.Contains(t, plain, "#1 · Mar 4")
	assert.Contains(t, plain, "▶ 12.3K")
	assert.Contains(t, plain, "♥ 1.2K")
	assert.Contains(t, plain, "caption number 4")
	assert.Len(t, lines, 2*CardHeight)
	for _, l := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(l), 80)
	}
}

func TestGrid_ViewsBadgeHiddenWithoutViews(t *testing.T) {
	g := NewGrid(theme.DefaultTheme())
	list := gridReels(1)
	list[0].Views = i64(0)
	g.SetReels(list)
	plain := ansi.Strip(strings.Join(g.Render(40, 10, testNow), "\n"))
	assert.NotContains(t, plain, "▶")
}

func TestGrid_EmptyCaption(t *testing.T) {
	g := NewGrid(theme.DefaultTheme())
	g.SetReels([]reels.Reel{{ID: "x"}})
	plain := ansi.Strip(strings.Join(g.Render(40, 10, testNow), "\n"))
	assert.Contains(t, plain, "(no caption)")
	assert.Contains(t, plain, "♥ 0")
}

func TestGrid_CellAt(t *testing.T) {
	g := NewGrid(theme.DefaultTheme())
	g.SetReels(gridReels(5))
	g.Render(80, 20, testNow)

	idx, ok := g.CellAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = g.CellAt(g.cardWidth+cardGap+1, CardHeight+2)
	require.True(t, ok)
	assert.Equal(t, 4, idx)

	_, ok = g.CellAt(g.cardWidth, 1)
	assert.False(t, ok, "gap between cards")

	_, ok = g.CellAt(2*(g.cardWidth+cardGap)+1, CardHeight+1)
	assert.False(t, ok, "empty slot after last card")
}

func TestGrid_MovementAndScroll(t *testing.T) {
	g := NewGrid(theme.DefaultTheme())
	g.SetReels(gridReels(9))
	g.Render(80, CardHeight, testNow)

	assert.True(t, g.MoveRow(1))
	assert.Equal(t, 3, g.Selected())
	g.Render(80, CardHeight, testNow)
	idx, ok := g.CellAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, 3, idx, "grid scrolled to the selected row")

	assert.True(t, g.GoToBottom())
	assert.Equal(t, 8, g.Selected())
	assert.False(t, g.MoveSelection(1))
	assert.True(t, g.GoToTop())
	assert.False(t, g.MoveSelection(-1))
}

func TestGrid_LockedIgnoresMovement(t *testing.T) {
	g := NewGrid(theme.DefaultTheme())
	g.SetReels(gridReels(6))
	g.Render(80, 20, testNow)
	g.SetScrollLocked(true)

	assert.False(t, g.MoveSelection(1))
	assert.False(t, g.MoveRow(1))
	assert.False(t, g.GoToBottom())
	assert.False(t, g.Select(4))
	assert.Equal(t, 0, g.Selected())

	g.SetScrollLocked(false)
	assert.True(t, g.Select(4))
}

func TestGrid_SetReelsClampsSelection(t *testing.T) {
	g := NewGrid(theme.DefaultTheme())
	g.SetReels(gridReels(6))
	g.Select(5)
	g.SetReels(gridReels(2))
	assert.Equal(t, 1, g.Selected())
	g.SetReels(nil)
	assert.Equal(t, 0, g.Selected())
	assert.Nil(t, g.Render(80, 20, testNow))
}
