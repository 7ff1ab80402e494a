package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollLock_HeldWhileOpen(t *testing.T) {
	f := newFixture(t, "a", "b")
	m := f.session.Machine

	m.Open(0)
	m.Navigate(Next)
	m.ToggleMute()
	assert.True(t, f.session.Lock.Held())
	m.Close()
	assert.False(t, f.session.Lock.Held())

	assert.Equal(t, []bool{true, false}, f.target.calls)
}

func TestScrollLock_NilTarget(t *testing.T) {
	l := NewScrollLock(nil)
	l.StateChanged(Change{Next: State{Open: true}})
	l.StateChanged(Change{Next: State{Open: true, Index: 1}})
	assert.True(t, l.Held())
	l.StateChanged(Change{Prev: State{Open: true}})
	acquires, releases := l.Counts()
	assert.Equal(t, 1, acquires)
	assert.Equal(t, 1, releases)
}
