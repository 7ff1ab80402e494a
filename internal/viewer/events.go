package viewer

// Event is an input to Transition.
type Event interface {
	event()
	Name() string
}

type OpenEvent struct{ Index int }
type CloseEvent struct{}
type NavigateEvent struct{ Direction Direction }
type ToggleMuteEvent struct{}
type ToggleCaptionEvent struct{}

// ReplacedEvent reports that the reel collection was swapped out and now
// holds Count reels.
type ReplacedEvent struct{ Count int }

func (OpenEvent) event()          {}
func (CloseEvent) event()         {}
func (NavigateEvent) event()      {}
func (ToggleMuteEvent) event()    {}
func (ToggleCaptionEvent) event() {}
func (ReplacedEvent) event()      {}

func (OpenEvent) Name() string          { return "open" }
func (CloseEvent) Name() string         { return "close" }
func (NavigateEvent) Name() string      { return "navigate" }
func (ToggleMuteEvent) Name() string    { return "toggle_mute" }
func (ToggleCaptionEvent) Name() string { return "toggle_caption" }
func (ReplacedEvent) Name() string      { return "replaced" }
