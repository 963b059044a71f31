package driven

import (
	"context"

	"github.com/custodia-labs/papers/internal/core/domain"
)

// PaperAPI is the backend that searches papers and answers questions about them.
//
// Every call issues exactly one request and is never retried.
// Failures are returned as *domain.RequestError.
type PaperAPI interface {
	// Search asks the backend for up to req.MaxResults papers matching req.Query.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)

	// Ask asks the backend a question about the papers of the latest search.
	Ask(ctx context.Context, req domain.AskRequest) (*domain.Answer, error)

	// Health reports whether the backend and its model runtime are reachable.
	Health(ctx context.Context) (*domain.Health, error)

	// BaseURL returns the backend origin.
	BaseURL() string
}
