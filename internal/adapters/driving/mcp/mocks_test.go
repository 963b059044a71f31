package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driven"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
	"github.com/custodia-labs/papers/internal/core/services"
)

var _ driven.PaperAPI = (*mockPaperAPI)(nil)

// mockPaperAPI is a mock implementation of driven.PaperAPI.
type mockPaperAPI struct {
	papers   []domain.Paper
	answer   *domain.Answer
	health   *domain.Health
	err      error
	searches []domain.SearchRequest
}

func (m *mockPaperAPI) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.searches = append(m.searches, req)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SearchResponse{Papers: m.papers}, nil
}

func (m *mockPaperAPI) Ask(_ context.Context, _ domain.AskRequest) (*domain.Answer, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

func (m *mockPaperAPI) Health(_ context.Context) (*domain.Health, error) {
	return m.health, m.err
}

func (m *mockPaperAPI) BaseURL() string {
	return "http://backend.test"
}

var answeredAt = time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)

// testPorts wires real page controllers and health service to api.
func testPorts(api *mockPaperAPI) *Ports {
	return &Ports{
		NewPage: func() (driving.PageController, error) {
			return services.NewPageController(api,
				services.WithClock(func() time.Time { return answeredAt })), nil
		},
		Health: services.NewHealthService(api),
	}
}
