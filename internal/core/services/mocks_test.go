package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driven"
)

var _ driven.PaperAPI = (*mockPaperAPI)(nil)

// mockPaperAPI records calls and delegates to the Func fields.
type mockPaperAPI struct {
	mu          sync.Mutex
	searchCalls []domain.SearchRequest
	askCalls    []domain.AskRequest

	SearchFunc func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
	AskFunc    func(ctx context.Context, req domain.AskRequest) (*domain.Answer, error)
	HealthFunc func(ctx context.Context) (*domain.Health, error)
}

func (m *mockPaperAPI) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.mu.Lock()
	m.searchCalls = append(m.searchCalls, req)
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, req)
	}
	return &domain.SearchResponse{}, nil
}

func (m *mockPaperAPI) Ask(ctx context.Context, req domain.AskRequest) (*domain.Answer, error) {
	m.mu.Lock()
	m.askCalls = append(m.askCalls, req)
	m.mu.Unlock()
	if m.AskFunc != nil {
		return m.AskFunc(ctx, req)
	}
	return &domain.Answer{}, nil
}

func (m *mockPaperAPI) Health(ctx context.Context) (*domain.Health, error) {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return &domain.Health{Status: domain.HealthStatusHealthy, OllamaConnected: true}, nil
}

func (m *mockPaperAPI) BaseURL() string {
	return "http://backend.test"
}

func (m *mockPaperAPI) searches() []domain.SearchRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SearchRequest(nil), m.searchCalls...)
}

func (m *mockPaperAPI) asks() []domain.AskRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.AskRequest(nil), m.askCalls...)
}
