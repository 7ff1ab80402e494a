package reels

import (
	"time"
	"unicode/utf8"
)

// CaptionExpandThreshold is the caption length (in characters) above which
// the viewer offers an expand affordance.
const CaptionExpandThreshold = 150

// Reel is a single short-video record with engagement metadata. Counts and
// the posting time are optional; nil means the backend did not report them.
type Reel struct {
	ID           string
	ThumbnailURL string
	VideoURL     string
	Likes        *int64
	Comments     *int64
	Views        *int64
	Caption      string
	PostedAt     *time.Time
}

// HasLongCaption reports whether the caption exceeds CaptionExpandThreshold.
func (r Reel) HasLongCaption() bool {
	return utf8.RuneCountInString(r.Caption) > CaptionExpandThreshold
}

// HasViews reports whether a views badge should be shown. A zero count is
// treated like a missing one.
func (r Reel) HasViews() bool {
	return r.Views != nil && *r.Views > 0
}
