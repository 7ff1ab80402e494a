package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/reelium/internal/log"
	"github.com/interpretive-systems/reelium/internal/player"
	"github.com/interpretive-systems/reelium/internal/scrape"
	"github.com/interpretive-systems/reelium/internal/theme"
	tuiansi "github.com/interpretive-systems/reelium/internal/tui/ansi"
	"github.com/interpretive-systems/reelium/internal/tui/components"
	"github.com/interpretive-systems/reelium/internal/tui/forms"
	"github.com/interpretive-systems/reelium/internal/viewer"
)

const defaultPlayerTimeout = 10 * time.Second

// Options configures Run.
type Options struct {
	Fetcher       Fetcher
	Player        player.Player
	Username      string
	Limit         int
	Theme         string
	PlayerTimeout time.Duration
}

// Program is the main Bubble Tea model.
type Program struct {
	state      *State
	layout     *Layout
	keyHandler *KeyHandler
}

// NewProgram creates a program over st.
func NewProgram(st *State) Program {
	return Program{state: st, layout: NewLayout(), keyHandler: NewKeyHandler()}
}

// Run instantiates and runs the Bubble Tea program, then releases the
// player.
func Run(ctx context.Context, opts Options) error {
	logger := log.WithComponent("tui")

	timeout := opts.PlayerTimeout
	if timeout <= 0 {
		timeout = defaultPlayerTimeout
	}
	queue := player.NewQueue(timeout)

	initial := forms.Query{
		Username: scrape.NormalizeUsername(opts.Username),
		Limit:    scrape.ClampLimit(opts.Limit),
	}
	st := NewState(ctx, opts.Fetcher, opts.Player, queue, queue.Results(), initial, theme.GetTheme(opts.Theme))

	p := tea.NewProgram(NewProgram(st), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()

	queue.Close()
	if cerr := opts.Player.Close(); cerr != nil {
		logger.Warn().Err(cerr).Msg("close player")
	}
	return err
}

func (p Program) Init() tea.Cmd {
	st := p.state
	cmds := []tea.Cmd{waitForPlayback(st.Results)}
	if st.Initial.Username != "" {
		cmds = append(cmds, p.startFetch(st.Initial))
	} else {
		cmds = append(cmds, p.openSearch())
	}
	return tea.Batch(cmds...)
}

func (p Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := p.handleMsg(msg)
	if notices := p.drainNotices(); len(notices) > 0 {
		cmd = tea.Batch(append(notices, cmd)...)
	}
	return p, cmd
}

func (p Program) handleMsg(msg tea.Msg) tea.Cmd {
	st := p.state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		st.Width = msg.Width
		st.Height = msg.Height
		p.layout.SetSize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		return p.handleKey(msg)
	case tea.MouseMsg:
		p.handleMouse(msg)
		return nil
	case reelsMsg:
		return p.handleReels(msg)
	case playbackMsg:
		st.Viewer.Playback.Complete(msg.result)
		return waitForPlayback(st.Results)
	case toastExpiredMsg:
		st.StatusBar.ClearToast(msg.id)
		return nil
	case spinner.TickMsg:
		if !st.Store.Loading() {
			return nil
		}
		var cmd tea.Cmd
		st.Spinner, cmd = st.Spinner.Update(msg)
		return cmd
	}
	if st.SearchOpen {
		return st.Search.Update(msg)
	}
	return nil
}

func (p Program) handleKey(msg tea.KeyMsg) tea.Cmd {
	st := p.state
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	// The viewer owns the keyboard while it is open.
	if st.Viewer.Machine.State().Open {
		st.Viewer.Keys.Emit(key)
		return nil
	}

	if st.SearchOpen {
		action, cmd := st.Search.HandleKey(msg)
		switch action {
		case forms.ActionClose:
			st.SearchOpen = false
		case forms.ActionSubmit:
			st.SearchOpen = false
			return tea.Batch(cmd, p.startFetch(st.Search.Query()))
		}
		return cmd
	}

	if st.Find.IsActive() {
		cmd := st.Find.HandleKey(msg)
		if idx, ok := st.Find.Current(); ok {
			st.Grid.Select(idx)
		}
		return cmd
	}

	if st.ShowHelp {
		switch key {
		case "q":
			return tea.Quit
		case "?", "esc":
			st.ShowHelp = false
		}
		return nil
	}

	action, count := p.keyHandler.Handle(msg)
	st.StatusBar.SetKeyBuffer(p.keyHandler.KeyBuffer())
	switch action {
	case ActionQuit:
		return tea.Quit
	case ActionToggleHelp:
		st.ShowHelp = true
	case ActionOpenSearch:
		return p.openSearch()
	case ActionFind:
		if st.Store.Count() > 0 && !st.Store.Loading() {
			return st.Find.Activate()
		}
	case ActionRefresh:
		if st.LastQuery.Username != "" && !st.Store.Loading() {
			return p.startFetch(st.LastQuery)
		}
	case ActionOpenReel:
		if !st.Store.Loading() {
			st.Viewer.Machine.Open(st.Grid.Selected())
		}
	case ActionMoveUp:
		st.Grid.MoveRow(-count)
	case ActionMoveDown:
		st.Grid.MoveRow(count)
	case ActionMoveLeft:
		st.Grid.MoveSelection(-count)
	case ActionMoveRight:
		st.Grid.MoveSelection(count)
	case ActionGoToTop:
		st.Grid.GoToTop()
	case ActionGoToBottom:
		st.Grid.GoToBottom()
	case ActionPageUp:
		st.Grid.PageUp()
	case ActionPageDown:
		st.Grid.PageDown()
	}
	return nil
}

func (p Program) handleMouse(msg tea.MouseMsg) {
	st := p.state
	open := st.Viewer.Machine.State().Open

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		dy := 1
		if msg.Button == tea.MouseButtonWheelUp {
			dy = -1
		}
		if open {
			st.Viewer.Router.Dispatch(viewer.WheelInput{DeltaY: dy})
			return
		}
		if !p.overlayOpen() {
			st.Grid.MoveRow(dy)
		}

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
		y := msg.Y - contentTop
		if open {
			if c := st.ReelView.ControlAt(msg.X, y); c != viewer.ControlNone {
				st.Viewer.Router.Dispatch(viewer.ControlInput{Control: c})
			}
			return
		}
		if p.overlayOpen() || st.Store.Loading() {
			return
		}
		if idx, ok := st.Grid.CellAt(msg.X, y); ok {
			// A pending count belongs to the keyboard gesture the click replaced.
			p.keyHandler.ClearBuffer()
			st.StatusBar.SetKeyBuffer("")
			st.Grid.Select(idx)
			st.Viewer.Machine.Open(idx)
		}
	}
}

func (p Program) handleReels(msg reelsMsg) tea.Cmd {
	st := p.state
	if msg.id != st.RequestID {
		return nil
	}
	st.StatusBar.SetLastFetch(st.Now())
	if msg.err != nil {
		st.Store.Fail(msg.err)
		return p.toast(components.ToastError, scrape.UserMessage(msg.err))
	}
	st.Store.Complete(msg.reels)
	return p.toast(components.ToastSuccess, "Reels fetched successfully")
}

func (p Program) startFetch(q forms.Query) tea.Cmd {
	st := p.state
	st.RequestID++
	st.LastQuery = q
	st.Store.BeginRequest(q.Username)
	return tea.Batch(fetchReels(st.ctx, st.Fetcher, st.RequestID, q), st.Spinner.Tick)
}

func (p Program) openSearch() tea.Cmd {
	st := p.state
	st.SearchOpen = true
	st.ShowHelp = false
	st.Find.Deactivate()
	limit := st.LastQuery.Limit
	if limit == 0 {
		limit = scrape.DefaultLimit
	}
	return st.Search.Open(st.LastQuery.Username, limit)
}

func (p Program) toast(kind components.ToastKind, text string) tea.Cmd {
	return expireToast(p.state.StatusBar.ShowToast(kind, text))
}

// drainNotices turns playback failures reported during this update into
// toasts. A missing backend or source is already shown by the viewer's
// placeholder.
func (p Program) drainNotices() []tea.Cmd {
	st := p.state
	if len(st.notices) == 0 {
		return nil
	}
	var cmds []tea.Cmd
	for _, err := range st.notices {
		if errors.Is(err, player.ErrNotRunning) || errors.Is(err, player.ErrNoSource) {
			continue
		}
		cmds = append(cmds, p.toast(components.ToastError, "Playback failed: "+err.Error()))
	}
	st.notices = nil
	return cmds
}

func (p Program) overlayOpen() bool {
	return p.state.SearchOpen || p.state.ShowHelp || p.state.Find.IsActive()
}

func (p Program) View() string {
	st := p.state
	if st.Width == 0 || st.Height == 0 {
		return "Loading..."
	}
	p.layout.SetSize(st.Width, st.Height)

	var overlay []string
	switch {
	case st.SearchOpen:
		overlay = st.Search.RenderOverlay(st.Width)
	case st.Find.IsActive():
		overlay = st.Find.RenderOverlay(st.Width, st.Theme)
	case st.ShowHelp:
		overlay = p.helpOverlayLines(st.Width)
	}

	content := p.contentLines(p.layout.ContentHeight(len(overlay)))
	return p.layout.RenderFrame(
		st.Theme.Title("Reels Explorer"),
		p.topRightTitle(),
		content,
		overlay,
		st.StatusBar.Render(st.Width),
		st.Theme,
	)
}

func (p Program) topRightTitle() string {
	st := p.state
	if st.Store.Username() == "" || st.Store.Loading() || !st.Store.HasSearched() {
		return ""
	}
	return st.Theme.HighlightText("@"+st.Store.Username()) +
		st.Theme.FaintText(fmt.Sprintf(" · %d reels found", st.Store.Count()))
}

func (p Program) contentLines(height int) []string {
	st := p.state
	w := st.Width
	vs := st.Viewer.Machine.State()

	switch {
	case vs.Open:
		r, _ := st.Store.At(vs.Index)
		pb := st.Viewer.Playback
		return st.ReelView.Render(components.ReelViewData{
			Reel:            r,
			Index:           vs.Index,
			Count:           st.Store.Count(),
			Muted:           vs.Muted,
			CaptionExpanded: vs.CaptionExpanded,
			Active:          pb.Active(),
			Paused:          pb.Paused(),
			Failure:         pb.Failure(),
			Now:             st.Now(),
		}, w, height)

	case st.Store.Loading():
		return centered(height, w,
			st.Spinner.View()+" "+st.Theme.FaintText("Fetching reels..."))

	case !st.Store.HasSearched():
		return centered(height, w,
			st.Theme.Title("Reels Explorer"),
			"",
			"Enter any Instagram username to explore their reels",
			st.Theme.FaintText("Press / to search"))

	case st.Store.Count() == 0:
		return centered(height, w,
			st.Theme.AccentText("No Reels Found"),
			"",
			st.Theme.FaintText("Try searching for a different username or check if the profile is public"))
	}
	return st.Grid.Render(w, height, st.Now())
}

// centered places lines in the middle of a height x width box.
func centered(height, width int, lines ...string) []string {
	out := make([]string, 0, height)
	top := (height - len(lines)) / 2
	for i := 0; i < top; i++ {
		out = append(out, "")
	}
	for _, l := range lines {
		out = append(out, tuiansi.Center(l, width))
	}
	return out
}

// helpOverlayLines returns the bottom overlay lines (without trailing newline).
func (p Program) helpOverlayLines(width int) []string {
	title := "Help (press ? or esc to close)"
	keys := []string{
		"/ or s          Search a username",
		"f               Find text in captions",
		"h/j/k/l, arrows  Move selection (prefix a count: 3j)",
		"g / G           First / last reel",
		"PgUp / PgDn     Page through the grid",
		"enter or click  Open the viewer",
		"r               Fetch again",
		"q               Quit",
		"",
		"In the viewer: ↑/↓ or wheel navigate, space play/pause, m mute,",
		"enter expand caption, esc close",
	}
	lines := make([]string, 0, 2+len(keys))
	lines = append(lines, p.state.Theme.DividerText(strings.Repeat("─", width)))
	lines = append(lines, p.state.Theme.Title(title))
	lines = append(lines, keys...)
	return lines
}
