package viewer

// Input is a user gesture routed to the viewer.
type Input interface{ input() }

// KeyInput is a key press, named as bubbletea names keys ("esc", "up", " ").
type KeyInput struct{ Key string }

// WheelInput is one scroll tick. Positive DeltaY scrolls down.
type WheelInput struct{ DeltaY int }

// ControlInput is a click on one of the viewer's on-screen controls.
type ControlInput struct{ Control Control }

func (KeyInput) input()     {}
func (WheelInput) input()   {}
func (ControlInput) input() {}

// Control identifies an on-screen viewer control.
type Control int

const (
	ControlNone Control = iota
	ControlPrev
	ControlNext
	ControlClose
	ControlMute
	ControlCaption
)

func (c Control) String() string {
	switch c {
	case ControlPrev:
		return "prev"
	case ControlNext:
		return "next"
	case ControlClose:
		return "close"
	case ControlMute:
		return "mute"
	case ControlCaption:
		return "caption"
	default:
		return "none"
	}
}

// KeyListener handles one key and reports whether it consumed it and
// whether the key's default action should be suppressed.
type KeyListener func(key string) (handled, preventDefault bool)

// KeySource delivers key presses to registered listeners.
type KeySource interface {
	AddKeyListener(fn KeyListener) (remove func())
}

// KeyBus is a KeySource fed by the UI loop.
type KeyBus struct {
	nextID    int
	listeners []keyEntry
}

type keyEntry struct {
	id int
	fn KeyListener
}

func (b *KeyBus) AddKeyListener(fn KeyListener) func() {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, keyEntry{id: id, fn: fn})
	return func() {
		for i, e := range b.listeners {
			if e.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers key to every listener registered at the time of the call.
func (b *KeyBus) Emit(key string) (handled, preventDefault bool) {
	snapshot := append([]keyEntry(nil), b.listeners...)
	for _, e := range snapshot {
		h, p := e.fn(key)
		handled = handled || h
		preventDefault = preventDefault || p
	}
	return handled, preventDefault
}

// Listeners returns the number of registered listeners.
func (b *KeyBus) Listeners() int { return len(b.listeners) }

// Pauser toggles playback of the active reel.
type Pauser interface {
	TogglePause()
}

// InputRouter maps keys, wheel ticks and control clicks onto viewer
// operations. It is inert while the viewer is closed, and it keeps its key
// listener registered only for the duration of each open session.
type InputRouter struct {
	machine *Machine
	pauser  Pauser
	keys    KeySource

	remove   func()
	attaches int
	detaches int
}

// NewInputRouter creates a router and registers it with m.
func NewInputRouter(m *Machine, p Pauser, keys KeySource) *InputRouter {
	r := &InputRouter{machine: m, pauser: p, keys: keys}
	m.Observe(r)
	return r
}

func (r *InputRouter) StateChanged(c Change) {
	switch {
	case c.Next.Open && r.remove == nil:
		r.remove = r.keys.AddKeyListener(r.key)
		r.attaches++
	case !c.Next.Open && r.remove != nil:
		r.remove()
		r.remove = nil
		r.detaches++
	}
}

// Attached reports whether the key listener is registered.
func (r *InputRouter) Attached() bool { return r.remove != nil }

// Counts returns how many times the key listener was attached and detached.
func (r *InputRouter) Counts() (attaches, detaches int) { return r.attaches, r.detaches }

// Dispatch routes in to the viewer.
func (r *InputRouter) Dispatch(in Input) (handled, preventDefault bool) {
	if !r.machine.State().Open {
		return false, false
	}
	switch in := in.(type) {
	case KeyInput:
		return r.key(in.Key)
	case WheelInput:
		return r.wheel(in.DeltaY)
	case ControlInput:
		return r.control(in.Control), false
	}
	return false, false
}

func (r *InputRouter) key(k string) (handled, preventDefault bool) {
	if !r.machine.State().Open {
		return false, false
	}
	switch k {
	case "esc":
		r.machine.Close()
		return true, false
	case "up":
		r.machine.Navigate(Prev)
		return true, true
	case "down":
		r.machine.Navigate(Next)
		return true, true
	case " ", "space":
		if r.pauser != nil {
			r.pauser.TogglePause()
		}
		return true, true
	case "m", "M":
		r.machine.ToggleMute()
		return true, false
	case "enter":
		r.machine.ToggleCaption()
		return true, false
	}
	return false, false
}

func (r *InputRouter) wheel(dy int) (handled, preventDefault bool) {
	switch {
	case dy > 0:
		r.machine.Navigate(Next)
	case dy < 0:
		r.machine.Navigate(Prev)
	default:
		return false, false
	}
	return true, true
}

func (r *InputRouter) control(c Control) bool {
	switch c {
	case ControlPrev:
		r.machine.Navigate(Prev)
	case ControlNext:
		r.machine.Navigate(Next)
	case ControlClose:
		r.machine.Close()
	case ControlMute:
		r.machine.ToggleMute()
	case ControlCaption:
		r.machine.ToggleCaption()
	default:
		return false
	}
	return true
}
