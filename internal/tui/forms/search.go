package forms

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/reelium/internal/scrape"
	"github.com/interpretive-systems/reelium/internal/theme"
	tuiansi "github.com/interpretive-systems/reelium/internal/tui/ansi"
)

// Query is a submitted search.
type Query struct {
	Username string
	Limit    int
}

const (
	fieldUsername = iota
	fieldLimit
)

// SearchForm collects a handle and a reel limit.
type SearchForm struct {
	theme    theme.Theme
	username textinput.Model
	limit    textinput.Model
	focus    int
	err      string
	query    Query
}

var _ Form = (*SearchForm)(nil)

// NewSearchForm creates a search form.
func NewSearchForm(th theme.Theme) *SearchForm {
	u := textinput.New()
	u.Prompt = "@ "
	u.Placeholder = "username"
	u.CharLimit = 64

	l := textinput.New()
	l.Prompt = "# "
	l.Placeholder = strconv.Itoa(scrape.DefaultLimit)
	l.CharLimit = 3

	return &SearchForm{theme: th, username: u, limit: l}
}

// Open resets the form with the given values and focuses the handle field.
func (f *SearchForm) Open(username string, limit int) tea.Cmd {
	f.err = ""
	f.username.SetValue(username)
	f.username.CursorEnd()
	f.limit.SetValue(strconv.Itoa(scrape.ClampLimit(limit)))
	f.limit.CursorEnd()
	f.setFocus(fieldUsername)
	return textinput.Blink
}

func (f *SearchForm) setFocus(field int) {
	f.focus = field
	if field == fieldUsername {
		f.username.Focus()
		f.limit.Blur()
	} else {
		f.limit.Focus()
		f.username.Blur()
	}
}

// HandleKey processes keyboard input.
func (f *SearchForm) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return ActionClose, nil
	case "tab", "shift+tab", "up", "down":
		f.setFocus(1 - f.focus)
		return ActionContinue, nil
	case "enter":
		return f.submit(), nil
	}

	if f.focus == fieldLimit && msg.Type == tea.KeyRunes && !digits(msg.Runes) {
		return ActionContinue, nil
	}

	var cmd tea.Cmd
	if f.focus == fieldUsername {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.limit, cmd = f.limit.Update(msg)
	}
	f.err = ""
	return ActionContinue, cmd
}

func (f *SearchForm) submit() Action {
	name := scrape.NormalizeUsername(f.username.Value())
	if name == "" {
		f.err = "Enter a username"
		f.setFocus(fieldUsername)
		return ActionContinue
	}
	limit := scrape.ParseLimit(f.limit.Value())
	f.limit.SetValue(strconv.Itoa(limit))
	f.username.SetValue(name)
	f.err = ""
	f.query = Query{Username: name, Limit: limit}
	return ActionSubmit
}

func digits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Update forwards non-key messages, such as cursor blinks, to the focused
// input.
func (f *SearchForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldUsername {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.limit, cmd = f.limit.Update(msg)
	}
	return cmd
}

// Query returns the last submitted search.
func (f *SearchForm) Query() Query {
	return f.query
}

// RenderOverlay renders the form.
func (f *SearchForm) RenderOverlay(width int) []string {
	lines := make([]string, 0, 6)
	lines = append(lines, f.theme.DividerText(strings.Repeat("─", width)))
	lines = append(lines, lipgloss.NewStyle().Bold(true).
		Render("Search reels (enter: fetch, tab: switch field, esc: cancel)"))
	lines = append(lines, tuiansi.PadExact(f.label("Username", fieldUsername)+f.username.View(), width))
	lines = append(lines, tuiansi.PadExact(f.label("Limit   ", fieldLimit)+f.limit.View()+
		f.theme.FaintText("  (1-50)"), width))
	if f.err != "" {
		lines = append(lines, f.theme.ErrorText("Error: ")+f.err)
	}
	return lines
}

func (f *SearchForm) label(name string, field int) string {
	if f.focus == field {
		return f.theme.HighlightText("> "+name) + " "
	}
	return "  " + name + " "
}

// Error returns any validation message.
func (f *SearchForm) Error() string {
	return f.err
}
