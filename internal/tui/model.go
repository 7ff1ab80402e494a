package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/reelium/internal/player"
	"github.com/interpretive-systems/reelium/internal/reels"
	"github.com/interpretive-systems/reelium/internal/theme"
	"github.com/interpretive-systems/reelium/internal/tui/components"
	"github.com/interpretive-systems/reelium/internal/tui/find"
	"github.com/interpretive-systems/reelium/internal/tui/forms"
	"github.com/interpretive-systems/reelium/internal/viewer"
)

// Fetcher loads reels for a handle.
type Fetcher interface {
	Fetch(ctx context.Context, username string, limit int) ([]reels.Reel, error)
}

// State holds all application state.
type State struct {
	ctx     context.Context
	Fetcher Fetcher

	// Data
	Store     *reels.Store
	Viewer    *viewer.Session
	Results   <-chan player.Result
	RequestID int
	LastQuery forms.Query
	Initial   forms.Query

	// UI state
	Width      int
	Height     int
	ShowHelp   bool
	SearchOpen bool
	Now        func() time.Time

	// Components
	Grid      *components.Grid
	ReelView  *components.ReelView
	StatusBar *components.StatusBar
	Search    *forms.SearchForm
	Find      *find.Engine
	Spinner   spinner.Model

	Theme theme.Theme

	// playback errors reported during the current update, shown as toasts
	notices []error
}

// NewState wires the store, viewer and components. Player work goes
// through sched; its results arrive on results.
func NewState(ctx context.Context, f Fetcher, p player.Player, sched viewer.Scheduler, results <-chan player.Result, initial forms.Query, th theme.Theme) *State {
	st := &State{
		ctx:       ctx,
		Fetcher:   f,
		Store:     reels.NewStore(),
		Results:   results,
		Initial:   initial,
		LastQuery: initial,
		Now:       time.Now,
		Grid:      components.NewGrid(th),
		ReelView:  components.NewReelView(th),
		StatusBar: components.NewStatusBar(th),
		Search:    forms.NewSearchForm(th),
		Find:      find.New(),
		Theme:     th,
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(th.HighlightColor))
	st.Spinner = sp

	// The grid follows the store; the viewer session subscribes after it so
	// the grid already holds the new reels when the viewer reacts.
	st.Store.Subscribe(func(int) {
		list := st.Store.Reels()
		st.Grid.SetReels(list)
		st.Find.SetReels(list)
	})
	st.Viewer = viewer.NewSession(st.Store, p, sched, st.Grid)
	st.Viewer.Playback.OnFailure = func(err error) { st.notices = append(st.notices, err) }
	return st
}
