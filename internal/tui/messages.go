package tui

import (
	"github.com/interpretive-systems/reelium/internal/player"
	"github.com/interpretive-systems/reelium/internal/reels"
	"github.com/interpretive-systems/reelium/internal/tui/forms"
)

// reelsMsg carries the outcome of one fetch. id ties it to the request
// that produced it.
type reelsMsg struct {
	id    int
	query forms.Query
	reels []reels.Reel
	err   error
}

// playbackMsg carries a finished player task.
type playbackMsg struct {
	result player.Result
}

// toastExpiredMsg clears a toast after its display time.
type toastExpiredMsg struct {
	id int
}
