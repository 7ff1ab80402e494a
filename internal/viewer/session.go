package viewer

import (
	"github.com/interpretive-systems/reelium/internal/player"
	"github.com/interpretive-systems/reelium/internal/reels"
)

// Session wires a Machine to its adapters over one reel store.
type Session struct {
	Machine  *Machine
	Router   *InputRouter
	Playback *Synchronizer
	Lock     *ScrollLock
	Keys     *KeyBus
}

// NewSession builds the viewer for store, driving p through sched and
// locking target while open. Replacing the store's contents is reported to
// the machine.
func NewSession(store *reels.Store, p player.Player, sched Scheduler, target Lockable) *Session {
	m := NewMachine(store)
	s := &Session{
		Machine:  m,
		Playback: NewSynchronizer(p, sched, store),
		Lock:     NewScrollLock(target),
		Keys:     &KeyBus{},
	}
	m.Observe(s.Lock)
	m.Observe(s.Playback)
	s.Router = NewInputRouter(m, s.Playback, s.Keys)
	store.Subscribe(m.Replaced)
	return s
}
