// Package scrapetest provides an in-process fake of the reel scraping backend.
package scrapetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Backend is a scripted /scrape endpoint. Reels holds raw reel objects so
// tests can omit or mistype fields the way a real backend might.
type Backend struct {
	mu sync.Mutex

	Reels   []map[string]any
	Status  int    // non-zero forces an error status
	Message string // optional "message" in the error body
	RawBody string // when set, written verbatim with a 200

	requests []url.Values
}

// Requests returns the query strings received so far.
func (b *Backend) Requests() []url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]url.Values(nil), b.requests...)
}

// Router returns the chi router serving the fake API.
func (b *Backend) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/scrape", b.handleScrape)
	return r
}

func (b *Backend) handleScrape(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r.URL.Query())
	status, message, raw := b.Status, b.Message, b.RawBody
	list := b.Reels
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
		if message != "" {
			_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
		}
		return
	}
	if raw != "" {
		_, _ = w.Write([]byte(raw))
		return
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit < len(list) {
		list = list[:limit]
	}
	if list == nil {
		list = []map[string]any{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"reels": list})
}

// NewServer starts an httptest server for b and closes it with the test.
func NewServer(t testing.TB, b *Backend) *httptest.Server {
	t.Helper()
	s := httptest.NewServer(b.Router())
	t.Cleanup(s.Close)
	return s
}
