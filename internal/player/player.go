// Package player drives the external media backend that plays reel videos.
package player

import (
	"context"
	"errors"
)

var (
	ErrNotRunning = errors.New("player: media backend is not running")
	ErrIPC        = errors.New("player: ipc failure")
	ErrNoSource   = errors.New("player: reel has no video source")
)

// Player is a single video playback resource.
type Player interface {
	// Load replaces the current media with url and plays it from the start.
	Load(ctx context.Context, url string) error
	SetPaused(ctx context.Context, paused bool) error
	SetMuted(ctx context.Context, muted bool) error
	// Stop halts playback and unloads the current media.
	Stop(ctx context.Context) error
	// Close releases the backend entirely.
	Close() error
}

// Unavailable is a Player whose every load fails with Reason. It stands in
// when video is disabled or no backend could be found, so the viewer stays
// navigable with an inert playback area.
type Unavailable struct {
	Reason error
}

func (u Unavailable) Load(context.Context, string) error {
	if u.Reason != nil {
		return u.Reason
	}
	return ErrNotRunning
}

func (Unavailable) SetPaused(context.Context, bool) error { return nil }
func (Unavailable) SetMuted(context.Context, bool) error  { return nil }
func (Unavailable) Stop(context.Context) error            { return nil }
func (Unavailable) Close() error                          { return nil }
