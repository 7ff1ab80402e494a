package viewer

import (
	"github.com/interpretive-systems/reelium/internal/log"
	"github.com/rs/zerolog"
)

// Change describes one applied transition.
type Change struct {
	Prev  State
	Next  State
	Event Event
}

// Opened reports a transition from closed to open.
func (c Change) Opened() bool { return !c.Prev.Open && c.Next.Open }

// Closed reports a transition from open to closed.
func (c Change) Closed() bool { return c.Prev.Open && !c.Next.Open }

// ReelChanged reports whether a different reel is now on screen. A
// replacement counts, since the reel under the same index may differ.
func (c Change) ReelChanged() bool {
	if !c.Next.Open {
		return false
	}
	if _, ok := c.Event.(ReplacedEvent); ok {
		return true
	}
	return !c.Prev.Open || c.Prev.Index != c.Next.Index
}

// MuteChanged reports a flip of the mute flag.
func (c Change) MuteChanged() bool { return c.Prev.Muted != c.Next.Muted }

// Observer is notified synchronously after every applied transition.
type Observer interface {
	StateChanged(Change)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Change)

func (f ObserverFunc) StateChanged(c Change) { f(c) }

// Machine owns the current viewer state. It is driven from the UI event
// loop and is not safe for concurrent use.
type Machine struct {
	state     State
	reels     Reels
	observers []Observer
	log       zerolog.Logger
}

// NewMachine creates a closed, muted viewer over rs.
func NewMachine(rs Reels) *Machine {
	return &Machine{
		state: Initial(),
		reels: rs,
		log:   log.WithComponent("viewer"),
	}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Observe registers o. Observers run in registration order.
func (m *Machine) Observe(o Observer) {
	m.observers = append(m.observers, o)
}

// Dispatch applies ev and notifies observers when the state changed.
// Replacement is always announced so playback can reload the reel now
// under the open index. It reports whether observers were notified.
func (m *Machine) Dispatch(ev Event) bool {
	prev := m.state
	next := Transition(prev, ev, m.reels)
	_, replaced := ev.(ReplacedEvent)
	if next == prev && !(replaced && next.Open) {
		return false
	}
	m.state = next
	m.log.Debug().
		Str("event", ev.Name()).
		Stringer("from", prev).
		Stringer("to", next).
		Msg("viewer transition")

	c := Change{Prev: prev, Next: next, Event: ev}
	for _, o := range m.observers {
		o.StateChanged(c)
	}
	return true
}

func (m *Machine) Open(index int)       { m.Dispatch(OpenEvent{Index: index}) }
func (m *Machine) Close()               { m.Dispatch(CloseEvent{}) }
func (m *Machine) Navigate(d Direction) { m.Dispatch(NavigateEvent{Direction: d}) }
func (m *Machine) ToggleMute()          { m.Dispatch(ToggleMuteEvent{}) }
func (m *Machine) ToggleCaption()       { m.Dispatch(ToggleCaptionEvent{}) }
func (m *Machine) Replaced(count int)   { m.Dispatch(ReplacedEvent{Count: count}) }
