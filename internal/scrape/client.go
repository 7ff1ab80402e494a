package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/interpretive-systems/reelium/internal/log"
	"github.com/interpretive-systems/reelium/internal/reels"
	"github.com/rs/zerolog"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Client talks to the reel scraping backend.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// New creates a client for the backend at base.
func New(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log.WithComponent("scrape"),
	}
}

// Fetch requests up to limit reels for username. The limit is clamped into
// [MinLimit, MaxLimit]. No retry is attempted.
func (c *Client) Fetch(ctx context.Context, username string, limit int) ([]reels.Reel, error) {
	const op = "fetch"

	q := url.Values{}
	q.Set("username", username)
	q.Set("limit", strconv.Itoa(ClampLimit(limit)))
	u := c.base + "/scrape?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &Error{Sentinel: ErrTransport, Operation: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("username", username).Msg("fetch failed")
		return nil, &Error{Sentinel: ErrTransport, Operation: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		var payload errorResponse
		_ = json.Unmarshal(body, &payload)
		c.log.Warn().Int("status", res.StatusCode).Str("username", username).Msg("backend error")
		return nil, &Error{Sentinel: ErrStatus, Operation: op, Status: res.StatusCode, Message: payload.text()}
	}

	var payload scrapeResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		return nil, &Error{Sentinel: ErrDecode, Operation: op, Status: res.StatusCode, Err: err}
	}

	out := make([]reels.Reel, 0, len(payload.Reels))
	for _, p := range payload.Reels {
		out = append(out, p.toReel())
	}
	c.log.Info().
		Str("username", username).
		Int("count", len(out)).
		Dur("took", time.Since(start)).
		Msg("reels fetched")
	return out, nil
}

func (p reelPayload) toReel() reels.Reel {
	id := string(p.ID)
	if id == "" {
		id = uuid.NewString()
	}
	return reels.Reel{
		ID:           id,
		ThumbnailURL: p.ThumbnailURL,
		VideoURL:     p.VideoURL,
		Likes:        p.Likes.ptr(),
		Comments:     p.Comments.ptr(),
		Views:        p.Views.ptr(),
		Caption:      p.Caption,
		PostedAt:     p.PostedAt.ptr(),
	}
}
