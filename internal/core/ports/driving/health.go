package driving

import (
	"context"

	"github.com/custodia-labs/papers/internal/core/domain"
)

// HealthService reports on the backend.
type HealthService interface {
	// Check queries the backend's health endpoint.
	Check(ctx context.Context) (*domain.Health, error)

	// Endpoint returns the backend origin being checked.
	Endpoint() string
}
