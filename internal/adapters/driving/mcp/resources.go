package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the URI scheme of papers resources.
	uriScheme = "papers://"

	healthURI = uriScheme + "health"
	latestURI = uriScheme + "papers/latest"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         latestURI,
		Name:        "latest-papers",
		Description: "Papers of the latest search; questions are answered from these",
		MIMEType:    "application/json",
	}, s.handleLatestResource)

	if s.ports.Health != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         healthURI,
			Name:        "backend-health",
			Description: "Health of the paper search backend and its language model",
			MIMEType:    "application/json",
		}, s.handleHealthResource)
	}
}

// handleLatestResource returns the papers of the latest search.
func (s *Server) handleLatestResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	papers := s.latestPapers()
	if papers == nil {
		return jsonResource(req.Params.URI, []struct{}{})
	}
	return jsonResource(req.Params.URI, papers)
}

// handleHealthResource reports backend health.
func (s *Server) handleHealthResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	health, err := s.ports.Health.Check(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking health: %w", err)
	}
	return jsonResource(req.Params.URI, health)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
