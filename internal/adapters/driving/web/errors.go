package web

import "errors"

// ErrMissingPageFactory is returned when no page controller factory is provided.
var ErrMissingPageFactory = errors.New("web: page controller factory is required")
