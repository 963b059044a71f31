package tui

import "errors"

// Sentinel errors for TUI port validation.
var (
	// ErrMissingPageController indicates the page controller is nil.
	ErrMissingPageController = errors.New("tui: page controller is required")
)
