package viewer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/interpretive-systems/reelium/internal/player"
	"github.com/interpretive-systems/reelium/internal/reels"
)

// inlineScheduler runs every task as soon as it is submitted and feeds the
// result straight back to the synchronizer.
type inlineScheduler struct {
	sync *Synchronizer
	ops  []string
}

func (s *inlineScheduler) Submit(t player.Task) {
	s.ops = append(s.ops, t.Op)
	err := t.Run(context.Background())
	if s.sync != nil {
		s.sync.Complete(player.Result{Generation: t.Generation, Op: t.Op, Err: err})
	}
}

// deferredScheduler holds tasks until the test runs them.
type deferredScheduler struct {
	tasks []player.Task
}

func (s *deferredScheduler) Submit(t player.Task) { s.tasks = append(s.tasks, t) }

type lockTarget struct {
	calls []bool
}

func (l *lockTarget) SetScrollLocked(locked bool) { l.calls = append(l.calls, locked) }

type fixture struct {
	store   *reels.Store
	player  *player.Recorder
	sched   *inlineScheduler
	target  *lockTarget
	session *Session
}

func videoURL(i int) string { return fmt.Sprintf("https://cdn.example/r%d.mp4", i) }

func makeReels(captions ...string) []reels.Reel {
	out := make([]reels.Reel, len(captions))
	for i, c := range captions {
		out[i] = reels.Reel{
			ID:       fmt.Sprintf("r%d", i),
			VideoURL: videoURL(i),
			Caption:  c,
		}
	}
	return out
}

func newFixture(t *testing.T, captions ...string) *fixture {
	t.Helper()
	f := &fixture{
		store:  reels.NewStore(),
		player: &player.Recorder{},
		sched:  &inlineScheduler{},
		target: &lockTarget{},
	}
	f.session = NewSession(f.store, f.player, f.sched, f.target)
	f.sched.sync = f.session.Playback
	f.store.Replace(makeReels(captions...))
	return f
}

func (f *fixture) state() State { return f.session.Machine.State() }

func longCaption(n int) string { return strings.Repeat("x", n) }

// staticReels is a Reels over a fixed slice for pure transition tests.
type staticReels []reels.Reel

func (s staticReels) Count() int { return len(s) }

func (s staticReels) At(i int) (reels.Reel, bool) {
	if i < 0 || i >= len(s) {
		return reels.Reel{}, false
	}
	return s[i], true
}
