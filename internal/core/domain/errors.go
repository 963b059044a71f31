package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent page-level failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates the search keyword was empty after trimming.
	// No request is sent.
	ErrEmptyQuery = fmt.Errorf("%w: empty query", ErrInvalidInput)

	// ErrEmptyQuestion indicates the question was empty after trimming.
	// No request is sent.
	ErrEmptyQuestion = fmt.Errorf("%w: empty question", ErrInvalidInput)

	// ErrRequestFailed indicates the backend answered with a non-2xx status,
	// could not be reached, or returned an unreadable body.
	ErrRequestFailed = errors.New("request failed")

	// ErrStaleResponse indicates a response arrived for a request that has
	// since been superseded. It is never shown to the user.
	ErrStaleResponse = errors.New("stale response")

	// ErrUnknownTicket indicates a ticket that was not issued by this page.
	ErrUnknownTicket = errors.New("unknown ticket")

	// ErrUnknownSetting indicates a configuration key that is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)

// RequestError describes a failed backend call.
// Message carries the server's error field. It is empty when the server sent
// none, in which case the page shows its generic failure text.
type RequestError struct {
	// Op is the operation that failed.
	Op Operation

	// Status is the HTTP status code, or 0 if no response was received.
	Status int

	// Message is the server-provided failure message.
	Message string

	// RequestID correlates the failure with client logs.
	RequestID string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements error.
func (e *RequestError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Status > 0 && msg != "":
		return fmt.Sprintf("%s failed (status %d): %s", e.Op, e.Status, msg)
	case e.Status > 0:
		return fmt.Sprintf("%s failed (status %d)", e.Op, e.Status)
	case msg != "":
		return fmt.Sprintf("%s failed: %s", e.Op, msg)
	default:
		return fmt.Sprintf("%s failed", e.Op)
	}
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRequestFailed.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}
