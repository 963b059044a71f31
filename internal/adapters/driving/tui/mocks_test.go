package tui

import (
	"context"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
)

var _ driving.PageController = (*mockPage)(nil)

// mockPage implements driving.PageController with fixed state.
type mockPage struct {
	page      domain.Page
	started   []string
	dismissed int
}

func (m *mockPage) StartSearch(query, maxResults string) (domain.Ticket, error) {
	m.started = append(m.started, query+"/"+maxResults)
	if query == "" {
		return domain.Ticket{}, domain.ErrEmptyQuery
	}
	m.page.Loading = true
	return domain.Ticket{Op: domain.OpSearch, Seq: uint64(len(m.started)), Query: query}, nil
}

func (m *mockPage) RunSearch(context.Context, domain.Ticket) error {
	m.page.Loading = false
	m.page.ResultsVisible = true
	m.page.QAVisible = true
	return nil
}

func (m *mockPage) Search(ctx context.Context, query, maxResults string) error {
	t, err := m.StartSearch(query, maxResults)
	if err != nil {
		return err
	}
	return m.RunSearch(ctx, t)
}

func (m *mockPage) StartAsk(string) (domain.Ticket, error) {
	return domain.Ticket{Op: domain.OpAsk, Seq: 1}, nil
}

func (m *mockPage) RunAsk(context.Context, domain.Ticket) error { return nil }

func (m *mockPage) Ask(context.Context, string) error { return nil }

func (m *mockPage) Page() domain.Page { return m.page.Clone() }

func (m *mockPage) Papers() []domain.Paper { return nil }

func (m *mockPage) Labels() domain.Labels { return domain.DefaultLabels() }

func (m *mockPage) DismissNotice() { m.dismissed++ }
