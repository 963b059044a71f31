// Package messages defines Bubbletea message types for the TUI.
// Messages carry the completions of asynchronous page operations back into
// the event loop.
package messages

import (
	"github.com/custodia-labs/papers/internal/core/domain"
)

// SearchCompleted reports that a search request finished.
// The page controller has already applied the outcome; Err is nil on success,
// domain.ErrStaleResponse when a newer search was rendered first, or the
// request failure.
type SearchCompleted struct {
	Ticket domain.Ticket
	Err    error
}

// AskCompleted reports that an ask request finished.
type AskCompleted struct {
	Ticket domain.Ticket
	Err    error
}

// NoticeDismissed is sent when the user closes the inline notice.
type NoticeDismissed struct{}

// Quit signals the application should exit.
type Quit struct{}
