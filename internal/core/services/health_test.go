package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/papers/internal/core/domain"
)

func TestHealthService_Check(t *testing.T) {
	service := NewHealthService(&mockPaperAPI{})

	h, err := service.Check(context.Background())

	require.NoError(t, err)
	assert.True(t, h.Healthy())
	assert.True(t, h.OllamaConnected)
	assert.Equal(t, "http://backend.test", service.Endpoint())
}

func TestHealthService_Check_Unhealthy(t *testing.T) {
	api := &mockPaperAPI{
		HealthFunc: func(_ context.Context) (*domain.Health, error) {
			return &domain.Health{Status: domain.HealthStatusUnhealthy, Error: "ollama down"}, nil
		},
	}

	h, err := NewHealthService(api).Check(context.Background())

	require.NoError(t, err)
	assert.False(t, h.Healthy())
	assert.Equal(t, "ollama down", h.Error)
}

func TestHealthService_Check_Error(t *testing.T) {
	api := &mockPaperAPI{
		HealthFunc: func(_ context.Context) (*domain.Health, error) {
			return nil, &domain.RequestError{Op: domain.OpHealth}
		},
	}

	_, err := NewHealthService(api).Check(context.Background())

	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}
