package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/interpretive-systems/reelium/internal/player"
	"github.com/interpretive-systems/reelium/internal/reels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizer_OpenLoadsAndReappliesMute(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	f.session.Machine.Open(1)

	assert.Equal(t, []player.Call{
		{Op: "load", Arg: videoURL(1)},
		{Op: "mute", Arg: "true"},
	}, f.player.Calls())
	assert.True(t, f.session.Playback.Active())
}

func TestSynchronizer_NavigateSwapsReelFromStart(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	m := f.session.Machine
	m.Open(0)
	m.ToggleMute()
	f.session.Playback.TogglePause()
	require.True(t, f.session.Playback.Paused())
	f.player.Reset()

	m.Navigate(Next)

	assert.Equal(t, []player.Call{
		{Op: "load", Arg: videoURL(1)},
		{Op: "mute", Arg: "false"},
	}, f.player.Calls())
	assert.False(t, f.session.Playback.Paused())
	url, paused, muted := f.player.Snapshot()
	assert.Equal(t, videoURL(1), url)
	assert.False(t, paused)
	assert.False(t, muted)
}

func TestSynchronizer_BoundaryNavigateDoesNotReload(t *testing.T) {
	f := newFixture(t, "a", "b")
	f.session.Machine.Open(1)
	f.player.Reset()

	f.session.Machine.Navigate(Next)
	assert.Empty(t, f.player.Calls())
}

func TestSynchronizer_CloseStops(t *testing.T) {
	f := newFixture(t, "a", "b")
	f.session.Machine.Open(0)
	f.player.Reset()

	f.session.Machine.Close()

	assert.Equal(t, []player.Call{{Op: "stop"}}, f.player.Calls())
	assert.False(t, f.session.Playback.Active())
	url, _, _ := f.player.Snapshot()
	assert.Empty(t, url)

	f.session.Playback.TogglePause()
	assert.Equal(t, 1, len(f.player.Calls()), "pause after close is ignored")
}

func TestSynchronizer_LoadFailureLeavesStateAlone(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	boom := errors.New("unsupported source")
	f.player.LoadErr = func(url string) error {
		if url == videoURL(1) {
			return boom
		}
		return nil
	}
	var surfaced []error
	f.session.Playback.OnFailure = func(err error) { surfaced = append(surfaced, err) }

	m := f.session.Machine
	m.Open(1)
	assert.Equal(t, State{Open: true, Index: 1, Muted: true}, f.state())
	assert.ErrorIs(t, f.session.Playback.Failure(), boom)
	require.Len(t, surfaced, 1)

	m.Navigate(Next)
	assert.Equal(t, 2, f.state().Index)
	assert.NoError(t, f.session.Playback.Failure())
}

func TestSynchronizer_MissingVideoURL(t *testing.T) {
	store := reels.NewStore()
	rec := &player.Recorder{}
	sched := &inlineScheduler{}
	s := NewSession(store, rec, sched, nil)
	sched.sync = s.Playback
	store.Replace([]reels.Reel{{ID: "no-video"}})

	s.Machine.Open(0)
	assert.True(t, s.Machine.State().Open)
	assert.ErrorIs(t, s.Playback.Failure(), player.ErrNoSource)
	assert.Zero(t, rec.Count("load"))
}

func TestSynchronizer_UnavailablePlayerKeepsNavigation(t *testing.T) {
	store := reels.NewStore()
	sched := &inlineScheduler{}
	s := NewSession(store, player.Unavailable{}, sched, nil)
	sched.sync = s.Playback
	store.Replace(makeReels("a", "b"))

	s.Machine.Open(0)
	assert.ErrorIs(t, s.Playback.Failure(), player.ErrNotRunning)
	s.Keys.Emit("down")
	assert.Equal(t, 1, s.Machine.State().Index)
}

func TestSynchronizer_DropsStaleResults(t *testing.T) {
	store := reels.NewStore()
	rec := &player.Recorder{}
	sched := &deferredScheduler{}
	s := NewSession(store, rec, sched, nil)
	store.Replace(makeReels("a", "b", "c"))

	s.Machine.Open(0)
	s.Machine.Navigate(Next)
	require.Len(t, sched.tasks, 2)

	first, second := sched.tasks[0], sched.tasks[1]
	assert.False(t, s.Playback.Complete(player.Result{
		Generation: first.Generation,
		Op:         first.Op,
		Err:        errors.New("late failure"),
	}))
	assert.NoError(t, s.Playback.Failure())

	err := second.Run(context.Background())
	assert.True(t, s.Playback.Complete(player.Result{Generation: second.Generation, Op: second.Op, Err: err}))
	url, _, _ := rec.Snapshot()
	assert.Equal(t, videoURL(1), url)
}

func TestSynchronizer_MuteTaskUsesCurrentGeneration(t *testing.T) {
	store := reels.NewStore()
	sched := &deferredScheduler{}
	s := NewSession(store, &player.Recorder{}, sched, nil)
	store.Replace(makeReels("a"))

	s.Machine.Open(0)
	s.Machine.ToggleMute()
	require.Len(t, sched.tasks, 2)
	assert.Equal(t, "mute", sched.tasks[1].Op)
	assert.Equal(t, sched.tasks[0].Generation, sched.tasks[1].Generation)
	assert.Equal(t, s.Playback.Generation(), sched.tasks[1].Generation)
}
