package player

import (
	"context"
	"fmt"
	"sync"
)

// Call is one recorded Player invocation.
type Call struct {
	Op  string
	Arg string
}

func (c Call) String() string {
	if c.Arg == "" {
		return c.Op
	}
	return c.Op + " " + c.Arg
}

// Recorder is an in-memory Player that records every call. LoadErr, when
// set, is returned for matching URLs.
type Recorder struct {
	mu      sync.Mutex
	calls   []Call
	LoadErr func(url string) error

	url    string
	paused bool
	muted  bool
	closed bool
}

func (r *Recorder) record(op, arg string) {
	r.calls = append(r.calls, Call{Op: op, Arg: arg})
}

func (r *Recorder) Load(_ context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("load", url)
	if r.LoadErr != nil {
		if err := r.LoadErr(url); err != nil {
			return err
		}
	}
	r.url = url
	r.paused = false
	return nil
}

func (r *Recorder) SetPaused(_ context.Context, paused bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("pause", fmt.Sprint(paused))
	r.paused = paused
	return nil
}

func (r *Recorder) SetMuted(_ context.Context, muted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("mute", fmt.Sprint(muted))
	r.muted = muted
	return nil
}

func (r *Recorder) Stop(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("stop", "")
	r.url = ""
	r.paused = false
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("close", "")
	r.closed = true
	return nil
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Count returns how many calls with op were recorded.
func (r *Recorder) Count(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset clears the call log but keeps player state.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// Snapshot returns the current media, pause and mute flags.
func (r *Recorder) Snapshot() (url string, paused, muted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.url, r.paused, r.muted
}
