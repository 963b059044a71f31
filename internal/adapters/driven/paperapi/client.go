// Package paperapi provides the PaperAPI adapter over the backend's HTTP/JSON
// endpoints.
package paperapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driven"
	"github.com/custodia-labs/papers/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.PaperAPI = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = domain.DefaultAPIBaseURL

	// maxErrorBody bounds how much of a failure body is read.
	maxErrorBody = 64 << 10
)

// Backend endpoints.
const (
	searchPath = "/api/search"
	askPath    = "/api/ask"
	healthPath = "/api/health"
)

// RequestIDHeader carries the client-generated request id.
const RequestIDHeader = "X-Request-ID"

// Config holds configuration for the backend client.
type Config struct {
	// BaseURL is the backend origin (default: http://localhost:5000).
	BaseURL string

	// Timeout bounds each request. Zero leaves it to the caller's context.
	Timeout time.Duration

	// HTTPClient overrides the transport. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the search & ask backend.
// Every call makes exactly one request; nothing is retried or cached.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a new backend client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Search posts the query to /api/search.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := c.do(ctx, domain.OpSearch, http.MethodPost, searchPath, req, &resp); err != nil {
		return nil, err
	}
	if resp.Papers == nil {
		resp.Papers = []domain.Paper{}
	}
	return &resp, nil
}

// Ask posts the question to /api/ask.
func (c *Client) Ask(ctx context.Context, req domain.AskRequest) (*domain.Answer, error) {
	var resp domain.Answer
	if err := c.do(ctx, domain.OpAsk, http.MethodPost, askPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health reads /api/health.
// The backend answers 500 when unhealthy; that body is still a report.
func (c *Client) Health(ctx context.Context) (*domain.Health, error) {
	var resp domain.Health
	err := c.do(ctx, domain.OpHealth, http.MethodGet, healthPath, nil, &resp)
	if err == nil {
		return &resp, nil
	}

	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) && reqErr.Status > 0 && resp.Status != "" {
		return &resp, nil
	}
	return nil, err
}

// BaseURL returns the backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one request and decodes a 2xx body into out.
// Non-2xx bodies are also decoded into out when possible so callers that
// expect structured failure reports can read them.
func (c *Client) do(ctx context.Context, op domain.Operation, method, path string, in, out any) error {
	requestID := uuid.New().String()
	fail := func(status int, message string, cause error) error {
		return &domain.RequestError{
			Op:        op,
			Status:    status,
			Message:   message,
			RequestID: requestID,
			Err:       cause,
		}
	}

	var body io.Reader
	if in != nil {
		jsonBody, err := json.Marshal(in)
		if err != nil {
			return fail(0, "", fmt.Errorf("marshal request: %w", err))
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fail(0, "", fmt.Errorf("create request: %w", err))
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	logger.Debug("%s %s%s (request %s)", method, c.baseURL, path, requestID)
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		return fail(0, "", fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	logger.Debug("%s %s -> %d in %s", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = json.Unmarshal(data, out)
		return fail(resp.StatusCode, domain.ParseErrorBody(data), fmt.Errorf("%s error (status %d)", op, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("decode response: %w", err))
	}
	return nil
}
