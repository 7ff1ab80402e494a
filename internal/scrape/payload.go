package scrape

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

type scrapeResponse struct {
	Reels []reelPayload `json:"reels"`
}

type errorResponse struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

func (e errorResponse) text() string {
	if e.Message != "" {
		return e.Message
	}
	var detail string
	if len(e.Detail) > 0 && json.Unmarshal(e.Detail, &detail) == nil {
		return detail
	}
	return ""
}

type reelPayload struct {
	ID           flexString `json:"id"`
	ThumbnailURL string     `json:"thumbnail_url"`
	VideoURL     string     `json:"video_url"`
	Likes        flexInt    `json:"likes"`
	Comments     flexInt    `json:"comments"`
	Views        flexInt    `json:"views"`
	Caption      string     `json:"caption"`
	PostedAt     flexTime   `json:"posted_at"`
}

var null = []byte("null")

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexInt accepts a number, a numeric string or null. Anything else is
// treated as absent rather than failing the whole response.
type flexInt struct {
	v  int64
	ok bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		f.v, f.ok = n, n >= 0
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil && fl >= 0 && fl < math.MaxInt64 {
		f.v, f.ok = int64(fl), true
	}
	return nil
}

func (f flexInt) ptr() *int64 {
	if !f.ok {
		return nil
	}
	v := f.v
	return &v
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime accepts RFC 3339 and a few common variants, or unix seconds.
// Unparseable values are treated as absent.
type flexTime struct {
	t  time.Time
	ok bool
}

func (f *flexTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		f.t, f.ok = time.Unix(secs, 0).UTC(), true
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.t, f.ok = t, true
			return nil
		}
	}
	return nil
}

func (f flexTime) ptr() *time.Time {
	if !f.ok {
		return nil
	}
	t := f.t
	return &t
}
