// Package find implements the caption finder: a query box that moves the
// grid selection between reels whose caption contains the query.
package find

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/reelium/internal/reels"
)

// Engine manages find state and operations.
type Engine struct {
	query   string
	matches []int // reel indices with matches
	index   int   // current match index
	input   textinput.Model
	active  bool
	content []string // lowercased captions
}

// New creates a new find engine.
func New() *Engine {
	ti := textinput.New()
	ti.Placeholder = "Find in captions"
	ti.Prompt = "f "
	ti.CharLimit = 0

	return &Engine{input: ti}
}

// Activate opens the find input.
func (e *Engine) Activate() tea.Cmd {
	e.active = true
	return e.input.Focus()
}

// Deactivate closes find. The query and matches are kept.
func (e *Engine) Deactivate() {
	e.active = false
	e.input.Blur()
}

// IsActive returns whether find is active.
func (e *Engine) IsActive() bool {
	return e.active
}

// HandleKey processes key input for find.
func (e *Engine) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		e.Deactivate()
		return nil
	case "enter", "down":
		e.Next()
		return nil
	case "up":
		e.Previous()
		return nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	if v := e.input.Value(); v != e.query {
		e.query = v
		e.index = 0
		e.recomputeMatches()
	}
	return cmd
}

// SetReels updates the captions to search through.
func (e *Engine) SetReels(list []reels.Reel) {
	e.content = make([]string, len(list))
	for i, r := range list {
		e.content[i] = strings.ToLower(r.Caption)
	}
	e.index = 0
	e.recomputeMatches()
}

// Query returns the current query.
func (e *Engine) Query() string {
	return e.query
}

func (e *Engine) recomputeMatches() {
	q := strings.ToLower(strings.TrimSpace(e.query))
	if q == "" {
		e.matches = nil
		e.index = 0
		return
	}

	matches := make([]int, 0, len(e.content))
	for i, c := range e.content {
		if strings.Contains(c, q) {
			matches = append(matches, i)
		}
	}

	e.matches = matches
	if e.index >= len(matches) {
		e.index = 0
	}
}

// Next advances to the next match, wrapping around.
func (e *Engine) Next() {
	if len(e.matches) == 0 {
		return
	}
	e.index = (e.index + 1) % len(e.matches)
}

// Previous moves to the previous match, wrapping around.
func (e *Engine) Previous() {
	if len(e.matches) == 0 {
		return
	}
	e.index = (e.index - 1 + len(e.matches)) % len(e.matches)
}

// Current returns the reel index of the current match.
func (e *Engine) Current() (int, bool) {
	if len(e.matches) == 0 {
		return 0, false
	}
	return e.matches[e.index], true
}

// MatchCount returns the number of matches.
func (e *Engine) MatchCount() int {
	return len(e.matches)
}

// CurrentMatchIndex returns the current match index (1-based).
func (e *Engine) CurrentMatchIndex() int {
	if len(e.matches) == 0 {
		return 0
	}
	return e.index + 1
}

// InputView returns the text input view.
func (e *Engine) InputView() string {
	return e.input.View()
}
