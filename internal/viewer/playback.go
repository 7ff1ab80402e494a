package viewer

import (
	"context"

	"github.com/interpretive-systems/reelium/internal/log"
	"github.com/interpretive-systems/reelium/internal/player"
	"github.com/rs/zerolog"
)

// Scheduler runs player work off the UI loop.
type Scheduler interface {
	Submit(player.Task)
}

// Synchronizer keeps the single player in step with the viewer. It is the
// only owner of the player; results of its work come back through Complete.
type Synchronizer struct {
	player player.Player
	sched  Scheduler
	reels  Reels
	log    zerolog.Logger

	gen     uint64
	active  bool
	paused  bool
	failure error

	// OnFailure is called on the UI loop with every current-generation
	// playback error.
	OnFailure func(error)
}

// NewSynchronizer creates a synchronizer for p. Register it with a Machine
// via Observe.
func NewSynchronizer(p player.Player, s Scheduler, rs Reels) *Synchronizer {
	return &Synchronizer{
		player: p,
		sched:  s,
		reels:  rs,
		log:    log.WithComponent("playback"),
	}
}

func (s *Synchronizer) StateChanged(c Change) {
	switch {
	case c.Closed():
		s.stop()
	case c.ReelChanged():
		s.load(c.Next)
	case c.MuteChanged() && c.Next.Open:
		s.mute(c.Next.Muted)
	}
}

func (s *Synchronizer) load(st State) {
	s.gen++
	s.active = true
	s.paused = false
	s.failure = nil

	r, _ := s.reels.At(st.Index)
	url, muted, p := r.VideoURL, st.Muted, s.player
	s.log.Debug().Uint64("generation", s.gen).Int("index", st.Index).Str("url", url).Msg("load reel")
	s.sched.Submit(player.Task{
		Generation: s.gen,
		Op:         "load",
		Run: func(ctx context.Context) error {
			if url == "" {
				return player.ErrNoSource
			}
			if err := p.Load(ctx, url); err != nil {
				return err
			}
			return p.SetMuted(ctx, muted)
		},
	})
}

func (s *Synchronizer) mute(muted bool) {
	p := s.player
	s.sched.Submit(player.Task{
		Generation: s.gen,
		Op:         "mute",
		Run:        func(ctx context.Context) error { return p.SetMuted(ctx, muted) },
	})
}

func (s *Synchronizer) stop() {
	s.gen++
	s.active = false
	s.paused = false
	s.failure = nil
	p := s.player
	s.sched.Submit(player.Task{
		Generation: s.gen,
		Op:         "stop",
		Run:        p.Stop,
	})
}

// TogglePause flips the pause flag of the active reel. It does nothing
// while no reel is active.
func (s *Synchronizer) TogglePause() {
	if !s.active {
		return
	}
	s.paused = !s.paused
	paused, p := s.paused, s.player
	s.sched.Submit(player.Task{
		Generation: s.gen,
		Op:         "pause",
		Run:        func(ctx context.Context) error { return p.SetPaused(ctx, paused) },
	})
}

// Complete applies a finished task. Results from a superseded generation
// are dropped; it reports whether res was applied.
func (s *Synchronizer) Complete(res player.Result) bool {
	if res.Generation != s.gen {
		s.log.Debug().Uint64("generation", res.Generation).Str("op", res.Op).Msg("drop stale playback result")
		return false
	}
	if res.Err == nil {
		return true
	}
	if !s.active {
		s.log.Warn().Err(res.Err).Str("op", res.Op).Msg("playback teardown failed")
		return true
	}
	s.failure = res.Err
	s.log.Warn().Err(res.Err).Str("op", res.Op).Uint64("generation", res.Generation).Msg("playback failed")
	if s.OnFailure != nil {
		s.OnFailure(res.Err)
	}
	return true
}

// Failure returns the last playback error for the active reel.
func (s *Synchronizer) Failure() error { return s.failure }

// Paused reports the requested pause flag of the active reel.
func (s *Synchronizer) Paused() bool { return s.paused }

// Active reports whether a reel is loaded or loading.
func (s *Synchronizer) Active() bool { return s.active }

// Generation identifies the reel currently being played.
func (s *Synchronizer) Generation() uint64 { return s.gen }
