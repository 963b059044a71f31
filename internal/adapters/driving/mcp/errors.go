// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants search papers and ask questions about them.
package mcp

import "errors"

// ErrMissingPageController is returned when no page controller factory is provided.
var ErrMissingPageController = errors.New("mcp: page controller is required")
