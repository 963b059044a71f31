package mcp

import (
	"github.com/custodia-labs/papers/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// NewPage returns a page controller for one tool call.
	NewPage func() (driving.PageController, error)

	// Health reports backend health. Optional.
	Health driving.HealthService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.NewPage == nil {
		return ErrMissingPageController
	}
	return nil
}
