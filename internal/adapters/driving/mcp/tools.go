package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/papers/internal/core/domain"
)

// SearchInput is the input schema for the search_papers tool.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"keywords to search papers for"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of papers to return (default from settings)"`
}

// SearchOutput is the output schema for the search_papers tool.
type SearchOutput struct {
	Papers []PaperOutput `json:"papers"`
	Count  int           `json:"count"`
}

// PaperOutput represents a single paper.
type PaperOutput struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Published string   `json:"published"`
	Summary   string   `json:"summary"`
	PDFURL    string   `json:"pdf_url"`
}

// AskInput is the input schema for the ask_question tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"question about the papers from the latest search"`
}

// AskOutput is the output schema for the ask_question tool.
type AskOutput struct {
	Answer     string   `json:"answer"`
	Sources    []string `json:"sources"`
	AnsweredAt string   `json:"answered_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_papers",
		Description: "Search for academic papers by keyword",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_question",
		Description: "Ask a question answered from the papers of the latest search",
	}, s.handleAsk)
}

// handleSearch handles the search_papers tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	page, err := s.ports.NewPage()
	if err != nil {
		return nil, SearchOutput{}, err
	}

	maxResults := ""
	if input.MaxResults > 0 {
		maxResults = strconv.Itoa(input.MaxResults)
	}

	if err := page.Search(ctx, input.Query, maxResults); err != nil {
		return nil, SearchOutput{}, toolError(page.Page(), err)
	}

	papers := page.Papers()
	s.setLatest(papers)

	output := SearchOutput{
		Papers: make([]PaperOutput, len(papers)),
		Count:  len(papers),
	}
	for i, p := range papers {
		authors := p.Authors
		if authors == nil {
			authors = []string{}
		}
		output.Papers[i] = PaperOutput{
			Title:     p.Title,
			Authors:   authors,
			Published: p.Published,
			Summary:   p.Summary,
			PDFURL:    p.PDFURL,
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask_question tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	page, err := s.ports.NewPage()
	if err != nil {
		return nil, AskOutput{}, err
	}

	if err := page.Ask(ctx, input.Question); err != nil {
		return nil, AskOutput{}, toolError(page.Page(), err)
	}

	answer := page.Page().Answer
	sources := append([]string{}, answer.Sources...)

	return nil, AskOutput{
		Answer:     answer.Text,
		Sources:    sources,
		AnsweredAt: answer.RenderedAt.Format(time.RFC3339),
	}, nil
}

// toolError turns a failed operation into the error reported to the client.
func toolError(page domain.Page, err error) error {
	n := page.Notice
	if n == nil {
		return err
	}
	if n.Title != "" {
		return fmt.Errorf("%s: %s", n.Title, n.Message)
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return fmt.Errorf("%s: %w", n.Message, domain.ErrInvalidInput)
	}
	return errors.New(n.Message)
}
