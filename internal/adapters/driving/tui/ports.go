package tui

import (
	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
)

// Ports groups what the TUI runs against.
// The TUI is a driving adapter: it calls into the core through these ports.
type Ports struct {
	// Page holds the page state and runs searches and asks.
	Page driving.PageController

	// MaxResultsOptions are the choices offered by the result-count selector.
	// Empty uses the defaults.
	MaxResultsOptions []int

	// DefaultMaxResults is the initially selected result count.
	DefaultMaxResults int
}

// Validate checks that the required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Page == nil {
		return ErrMissingPageController
	}
	return nil
}

// options returns the selector choices, falling back to the defaults.
func (p *Ports) options() ([]int, int) {
	defaults := domain.DefaultAppSettings().Search

	opts := p.MaxResultsOptions
	if len(opts) == 0 {
		opts = defaults.MaxResultsOptions
	}
	initial := p.DefaultMaxResults
	if initial <= 0 {
		initial = defaults.DefaultMaxResults
	}
	return opts, initial
}
