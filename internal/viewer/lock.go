package viewer

// Lockable is the surface frozen while the viewer is open.
type Lockable interface {
	SetScrollLocked(locked bool)
}

// ScrollLock holds the background scroll lock for exactly as long as the
// viewer is open, whatever path closes it.
type ScrollLock struct {
	target   Lockable
	held     bool
	acquires int
	releases int
}

// NewScrollLock creates a lock over target. A nil target is allowed.
func NewScrollLock(target Lockable) *ScrollLock {
	return &ScrollLock{target: target}
}

func (l *ScrollLock) StateChanged(c Change) {
	switch {
	case c.Next.Open && !l.held:
		l.held = true
		l.acquires++
		l.set(true)
	case !c.Next.Open && l.held:
		l.held = false
		l.releases++
		l.set(false)
	}
}

func (l *ScrollLock) set(locked bool) {
	if l.target != nil {
		l.target.SetScrollLocked(locked)
	}
}

// Held reports whether the lock is currently acquired.
func (l *ScrollLock) Held() bool { return l.held }

// Counts returns how many times the lock was acquired and released.
func (l *ScrollLock) Counts() (acquires, releases int) { return l.acquires, l.releases }
