// Package viewer holds the reel viewer's state machine and the adapters
// that turn its transitions into side effects: input routing, playback and
// the scroll lock.
package viewer

import "fmt"

// Direction is a navigation step.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Prev:
		return "prev"
	case Next:
		return "next"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// State is the viewer's complete value. Index is meaningful only while Open.
type State struct {
	Open            bool
	Index           int
	Muted           bool
	CaptionExpanded bool
}

// Initial is the state at program start: closed and muted.
func Initial() State {
	return State{Muted: true}
}

func (s State) String() string {
	if !s.Open {
		return fmt.Sprintf("Closed(muted=%t)", s.Muted)
	}
	return fmt.Sprintf("Open(%d, muted=%t, captionExpanded=%t)", s.Index, s.Muted, s.CaptionExpanded)
}
