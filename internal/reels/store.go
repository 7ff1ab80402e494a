package reels

// Status describes the state of the most recent fetch request.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Store holds the ordered reel collection and the request status. It is
// owned by the UI event loop and is not safe for concurrent use.
type Store struct {
	reels       []Reel
	status      Status
	username    string
	err         error
	subscribers []func(count int)
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to be called with the new count after every Replace.
func (s *Store) Subscribe(fn func(count int)) {
	s.subscribers = append(s.subscribers, fn)
}

// Replace swaps the whole collection.
func (s *Store) Replace(list []Reel) {
	s.reels = append([]Reel(nil), list...)
	for _, fn := range s.subscribers {
		fn(len(s.reels))
	}
}

// Count returns the number of reels.
func (s *Store) Count() int {
	return len(s.reels)
}

// At returns the reel at index i.
func (s *Store) At(i int) (Reel, bool) {
	if i < 0 || i >= len(s.reels) {
		return Reel{}, false
	}
	return s.reels[i], true
}

// Reels returns a copy of the collection.
func (s *Store) Reels() []Reel {
	return append([]Reel(nil), s.reels...)
}

// BeginRequest marks a fetch for username as in flight.
func (s *Store) BeginRequest(username string) {
	s.status = StatusLoading
	s.username = username
	s.err = nil
}

// Complete records a successful fetch. An empty list is a valid result.
func (s *Store) Complete(list []Reel) {
	s.status = StatusLoaded
	s.err = nil
	s.Replace(list)
}

// Fail records a failed fetch and clears the collection.
func (s *Store) Fail(err error) {
	s.status = StatusFailed
	s.err = err
	s.Replace(nil)
}

func (s *Store) Status() Status   { return s.status }
func (s *Store) Username() string { return s.username }
func (s *Store) Err() error       { return s.err }

// HasSearched reports whether any request has been made this session.
func (s *Store) HasSearched() bool {
	return s.status != StatusIdle
}

// Loading reports whether a request is in flight.
func (s *Store) Loading() bool {
	return s.status == StatusLoading
}
