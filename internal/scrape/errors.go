package scrape

import (
	"errors"
	"fmt"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrTransport = errors.New("scrape: backend unreachable or transport failure")
	ErrStatus    = errors.New("scrape: backend returned an error status")
	ErrDecode    = errors.New("scrape: malformed response")
)

// GenericFailureMessage is shown when the backend gives no message of its own.
const GenericFailureMessage = "Failed to fetch reels"

// Error wraps a sentinel with request context and the backend's message.
type Error struct {
	Sentinel  error
	Operation string
	Status    int
	Message   string // backend-provided message, if any
	Err       error  // lower-level cause (net, json)
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("scrape: %s: %v", e.Operation, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Sentinel}
	}
	return []error{e.Sentinel, e.Err}
}

// UserMessage returns the text for the failure notification: the backend's
// message when present, else GenericFailureMessage.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return GenericFailureMessage
}
