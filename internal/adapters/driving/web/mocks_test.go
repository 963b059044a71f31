package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
	"github.com/custodia-labs/papers/internal/core/services"
)

// mockPaperAPI is a mock implementation of driven.PaperAPI.
type mockPaperAPI struct {
	papers    []domain.Paper
	answer    *domain.Answer
	health    *domain.Health
	searchErr error
	askErr    error
	searches  []domain.SearchRequest
}

func (m *mockPaperAPI) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.searches = append(m.searches, req)
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return &domain.SearchResponse{Papers: m.papers}, nil
}

func (m *mockPaperAPI) Ask(_ context.Context, _ domain.AskRequest) (*domain.Answer, error) {
	if m.askErr != nil {
		return nil, m.askErr
	}
	if m.answer == nil {
		return &domain.Answer{Answer: "ok"}, nil
	}
	return m.answer, nil
}

func (m *mockPaperAPI) Health(_ context.Context) (*domain.Health, error) {
	if m.health == nil {
		return &domain.Health{Status: domain.HealthStatusHealthy, OllamaConnected: true}, nil
	}
	return m.health, nil
}

func (m *mockPaperAPI) BaseURL() string {
	return "http://backend.test"
}

func samplePapers() []domain.Paper {
	return []domain.Paper{
		{
			Title:     "Attention Is All You Need",
			Authors:   []string{"Ashish Vaswani", "Noam Shazeer"},
			Published: "2017-06-12",
			Summary:   "We propose a new simple network architecture, the Transformer.",
			PDFURL:    "http://arxiv.org/pdf/1706.03762v7",
		},
		{
			Title:     "BERT",
			Authors:   []string{"Jacob Devlin"},
			Published: "2018-10-11",
			Summary:   "Pre-training of deep bidirectional transformers.",
			PDFURL:    "http://arxiv.org/pdf/1810.04805v2",
		},
	}
}

func testPorts(api *mockPaperAPI) *Ports {
	at := time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)
	return &Ports{
		NewPage: func() (driving.PageController, error) {
			return services.NewPageController(api, services.WithClock(func() time.Time { return at })), nil
		},
		NewHealth: func() (driving.HealthService, error) {
			return services.NewHealthService(api), nil
		},
	}
}

func newTestServer(api *mockPaperAPI, cfg Config) (*Server, http.Handler) {
	s, err := NewServer(testPorts(api), cfg)
	if err != nil {
		panic(err)
	}
	return s, s.Handler()
}

func postForm(h http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}
