package viewer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(s State, rs Reels, evs ...Event) State {
	for _, ev := range evs {
		s = Transition(s, ev, rs)
	}
	return s
}

func TestTransition_OpenOutOfRangeIsNoop(t *testing.T) {
	rs := staticReels(makeReels("a", "b", "c"))
	for _, idx := range []int{-1, 3, 100} {
		assert.Equal(t, Initial(), Transition(Initial(), OpenEvent{Index: idx}, rs), "index %d", idx)
	}
	assert.Equal(t, Initial(), Transition(Initial(), OpenEvent{Index: 0}, staticReels(nil)))
}

func TestTransition_OpenThenCloseRestoresClosedState(t *testing.T) {
	rs := staticReels(makeReels("a", "b", "c"))
	for i := 0; i < rs.Count(); i++ {
		opened := Transition(Initial(), OpenEvent{Index: i}, rs)
		assert.Equal(t, State{Open: true, Index: i, Muted: true}, opened)
		assert.Equal(t, Initial(), Transition(opened, CloseEvent{}, rs))
	}
}

func TestTransition_MuteSurvivesOpenCloseCycles(t *testing.T) {
	rs := staticReels(makeReels("a", "b", "c"))
	s := apply(Initial(), rs, OpenEvent{Index: 0}, ToggleMuteEvent{}, CloseEvent{})
	assert.Equal(t, State{Muted: false}, s)

	s = apply(s, rs, OpenEvent{Index: 2})
	assert.Equal(t, State{Open: true, Index: 2, Muted: false}, s)

	s = apply(s, rs, NavigateEvent{Direction: Prev})
	assert.False(t, s.Muted)
}

func TestTransition_NavigateClampsAtEnd(t *testing.T) {
	rs := staticReels(makeReels("a", "b", "c", "d"))
	s := Transition(Initial(), OpenEvent{Index: 0}, rs)
	for i := 0; i < rs.Count(); i++ {
		s = Transition(s, NavigateEvent{Direction: Next}, rs)
	}
	assert.Equal(t, rs.Count()-1, s.Index)
	assert.True(t, s.Open)
}

func TestTransition_NavigatePrevAtStartIsNoop(t *testing.T) {
	rs := staticReels(makeReels(longCaption(200), "b"))
	s := apply(Initial(), rs, OpenEvent{Index: 0}, ToggleMuteEvent{}, ToggleCaptionEvent{})
	before := s
	after := Transition(s, NavigateEvent{Direction: Prev}, rs)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("prev at index 0 changed state (-before +after):\n%s", diff)
	}
}

func TestTransition_CaptionResetOnlyOnRealMove(t *testing.T) {
	rs := staticReels(makeReels(longCaption(200), longCaption(200)))

	expanded := apply(Initial(), rs, OpenEvent{Index: 0}, ToggleCaptionEvent{})
	assert.True(t, expanded.CaptionExpanded)

	moved := Transition(expanded, NavigateEvent{Direction: Next}, rs)
	assert.Equal(t, 1, moved.Index)
	assert.False(t, moved.CaptionExpanded, "real move resets caption")

	atEnd := Transition(moved, ToggleCaptionEvent{}, rs)
	assert.True(t, atEnd.CaptionExpanded)
	stuck := Transition(atEnd, NavigateEvent{Direction: Next}, rs)
	assert.Equal(t, 1, stuck.Index)
	assert.True(t, stuck.CaptionExpanded, "boundary no-op keeps caption")
}

func TestTransition_ToggleCaptionNeedsLongCaption(t *testing.T) {
	rs := staticReels(makeReels(longCaption(200), longCaption(50), longCaption(150)))

	s := apply(Initial(), rs, OpenEvent{Index: 0}, ToggleCaptionEvent{})
	assert.Equal(t, State{Open: true, Index: 0, Muted: true, CaptionExpanded: true}, s)
	s = Transition(s, ToggleCaptionEvent{}, rs)
	assert.False(t, s.CaptionExpanded)
	assert.Equal(t, 0, s.Index)

	short := apply(Initial(), rs, OpenEvent{Index: 1}, ToggleCaptionEvent{})
	assert.False(t, short.CaptionExpanded)

	exact := apply(Initial(), rs, OpenEvent{Index: 2}, ToggleCaptionEvent{})
	assert.False(t, exact.CaptionExpanded, "threshold is exclusive")
}

func TestTransition_ClosedIgnoresViewerOperations(t *testing.T) {
	rs := staticReels(makeReels(longCaption(200), "b"))
	for _, ev := range []Event{
		CloseEvent{},
		NavigateEvent{Direction: Next},
		NavigateEvent{Direction: Prev},
		ToggleMuteEvent{},
		ToggleCaptionEvent{},
		ReplacedEvent{Count: 0},
	} {
		assert.Equal(t, Initial(), Transition(Initial(), ev, rs), ev.Name())
	}
}

func TestTransition_NavigateMovesOneStepRegardlessOfMagnitude(t *testing.T) {
	rs := staticReels(makeReels("a", "b", "c", "d"))
	s := apply(Initial(), rs, OpenEvent{Index: 1}, NavigateEvent{Direction: 3})
	assert.Equal(t, 2, s.Index)
	s = Transition(s, NavigateEvent{Direction: -7}, rs)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, s, Transition(s, NavigateEvent{Direction: 0}, rs))
}

func TestTransition_Replaced(t *testing.T) {
	rs := staticReels(makeReels("a", "b", "c"))
	open2 := Transition(Initial(), OpenEvent{Index: 2}, rs)

	tests := []struct {
		name  string
		count int
		want  State
	}{
		{name: "empty", count: 0, want: State{Muted: true}},
		{name: "shorter than index", count: 2, want: State{Muted: true}},
		{name: "index still valid", count: 3, want: open2},
		{name: "longer", count: 10, want: open2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(open2, ReplacedEvent{Count: tt.count}, rs))
		})
	}
}

func TestTransition_ReplacedResetsCaption(t *testing.T) {
	rs := staticReels(makeReels("a", longCaption(200)))
	s := Transition(Initial(), OpenEvent{Index: 1}, rs)
	s = Transition(s, ToggleCaptionEvent{}, rs)
	require.True(t, s.CaptionExpanded)

	got := Transition(s, ReplacedEvent{Count: 2}, staticReels(makeReels("a", "short")))
	assert.Equal(t, State{Open: true, Index: 1, Muted: true}, got)

	closed := Transition(Initial(), ReplacedEvent{Count: 0}, rs)
	assert.Equal(t, Initial(), closed)
}
