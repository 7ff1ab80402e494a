package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/reelium/internal/player"
	"github.com/interpretive-systems/reelium/internal/tui/forms"
)

const toastDuration = 3 * time.Second

// fetchReels runs one fetch against the backend.
func fetchReels(ctx context.Context, f Fetcher, id int, q forms.Query) tea.Cmd {
	return func() tea.Msg {
		list, err := f.Fetch(ctx, q.Username, q.Limit)
		return reelsMsg{id: id, query: q, reels: list, err: err}
	}
}

// waitForPlayback delivers the next player result. It is re-armed after
// every playbackMsg.
func waitForPlayback(results <-chan player.Result) tea.Cmd {
	if results == nil {
		return nil
	}
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return nil
		}
		return playbackMsg{result: res}
	}
}

// expireToast schedules removal of toast id.
func expireToast(id int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
