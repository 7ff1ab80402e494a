package viewer

import "github.com/interpretive-systems/reelium/internal/reels"

// Reels is the read side of the collection the viewer walks.
type Reels interface {
	Count() int
	At(i int) (reels.Reel, bool)
}

// Transition returns the state that results from applying ev to s. It has
// no side effects; requests whose preconditions fail return s unchanged.
func Transition(s State, ev Event, rs Reels) State {
	switch ev := ev.(type) {
	case OpenEvent:
		if ev.Index < 0 || ev.Index >= rs.Count() {
			return s
		}
		return State{Open: true, Index: ev.Index, Muted: s.Muted}

	case CloseEvent:
		if !s.Open {
			return s
		}
		return State{Muted: s.Muted}

	case NavigateEvent:
		if !s.Open {
			return s
		}
		next := s.Index + step(ev.Direction)
		if next == s.Index || next < 0 || next >= rs.Count() {
			return s
		}
		s.Index = next
		s.CaptionExpanded = false
		return s

	case ToggleMuteEvent:
		if !s.Open {
			return s
		}
		s.Muted = !s.Muted
		return s

	case ToggleCaptionEvent:
		if !s.Open {
			return s
		}
		r, ok := rs.At(s.Index)
		if !ok || !r.HasLongCaption() {
			return s
		}
		s.CaptionExpanded = !s.CaptionExpanded
		return s

	case ReplacedEvent:
		if !s.Open {
			return s
		}
		if s.Index >= ev.Count {
			return State{Muted: s.Muted}
		}
		return State{Open: true, Index: s.Index, Muted: s.Muted}
	}
	return s
}

// step reduces any direction to a single index move.
func step(d Direction) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}
