package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/custodia-labs/papers/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driven"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
	core "github.com/custodia-labs/papers/internal/core/services"
)

var _ driven.PaperAPI = (*mockPaperAPI)(nil)

// mockPaperAPI is a mock implementation of driven.PaperAPI.
type mockPaperAPI struct {
	papers    []domain.Paper
	answer    *domain.Answer
	health    *domain.Health
	err       error
	searches  []domain.SearchRequest
	questions []string
}

func (m *mockPaperAPI) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.searches = append(m.searches, req)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SearchResponse{Papers: m.papers}, nil
}

func (m *mockPaperAPI) Ask(_ context.Context, req domain.AskRequest) (*domain.Answer, error) {
	m.questions = append(m.questions, req.Question)
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

func (m *mockPaperAPI) Health(_ context.Context) (*domain.Health, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.health, nil
}

func (m *mockPaperAPI) BaseURL() string {
	return "http://backend.test"
}

var answeredAt = time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)

func samplePapers() []domain.Paper {
	return []domain.Paper{
		{
			Title:     "Attention Is All You Need",
			Authors:   []string{"Vaswani", "Shazeer"},
			Published: "2017-06-12",
			Summary:   "The dominant sequence\ntransduction models...",
			PDFURL:    "http://arxiv.org/pdf/1706.03762",
		},
		{
			Title:   "BERT",
			Authors: []string{"Devlin"},
		},
	}
}

// setupTestServices installs services backed by api and an in-memory config
// store. The returned func restores the previous services.
func setupTestServices(api *mockPaperAPI) func() {
	previous := services
	settings := core.NewSettingsService(memory.NewConfigStore())

	SetServices(&Services{
		Settings: settings,
		NewPage: func() (driving.PageController, error) {
			return core.NewPageController(api,
				core.WithClock(func() time.Time { return answeredAt })), nil
		},
		NewHealth: func() (driving.HealthService, error) {
			return core.NewHealthService(api), nil
		},
	})

	return func() {
		SetServices(previous)
	}
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	searchMaxResults = ""
	searchJSON = false
	askJSON = false
	healthJSON = false
	serveHost = ""
	servePort = 0
	serveWatchConfig = false
	mcpPort = 0
	verbose = false
}
