package services

import (
	"context"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driven"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
	"github.com/custodia-labs/papers/internal/logger"
)

// Ensure HealthService implements the interface.
var _ driving.HealthService = (*HealthService)(nil)

// HealthService checks the backend.
type HealthService struct {
	api driven.PaperAPI
}

// NewHealthService creates a new health service.
func NewHealthService(api driven.PaperAPI) *HealthService {
	return &HealthService{api: api}
}

// Check queries the backend's health endpoint.
// An unhealthy backend is reported in the result, not as an error.
func (s *HealthService) Check(ctx context.Context) (*domain.Health, error) {
	logger.Section("Health")
	h, err := s.api.Health(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("status=%s ollama_connected=%t", h.Status, h.OllamaConnected)
	return h, nil
}

// Endpoint returns the backend origin being checked.
func (s *HealthService) Endpoint() string {
	return s.api.BaseURL()
}
