package paperapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/papers/internal/core/domain"
)

func newBackend(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})

	assert.Equal(t, "http://localhost:5000", c.BaseURL())
	assert.Zero(t, c.client.Timeout)
}

func TestNewClient_Timeout(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://x:1/", Timeout: 3 * time.Second})

	assert.Equal(t, "http://x:1", c.BaseURL())
	assert.Equal(t, 3*time.Second, c.client.Timeout)
}

func TestClient_Search_SendsContract(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"query":"transformers","max_results":5}`, string(body))

		writeJSON(w, http.StatusOK, map[string]any{
			"papers": []map[string]any{
				{"title": "T1", "authors": []string{"A", "B"}, "published": "2017-06-12", "summary": "S", "pdf_url": "http://p/1.pdf", "entry_id": "1706.03762"},
				{"title": "T2", "authors": []string{}, "published": "2020-01-01", "summary": "S2", "pdf_url": "http://p/2.pdf"},
			},
			"count": 2,
		})
	})

	resp, err := c.Search(context.Background(), domain.SearchRequest{Query: "transformers", MaxResults: 5})

	require.NoError(t, err)
	require.Len(t, resp.Papers, 2)
	assert.Equal(t, "T1", resp.Papers[0].Title)
	assert.Equal(t, []string{"A", "B"}, resp.Papers[0].Authors)
	assert.Equal(t, "http://p/1.pdf", resp.Papers[0].PDFURL)
	assert.Equal(t, "1706.03762", resp.Papers[0].EntryID)
	assert.Equal(t, "T2", resp.Papers[1].Title)
	assert.Equal(t, 2, resp.Count)
}

func TestClient_Search_MissingPapersIsEmpty(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	resp, err := c.Search(context.Background(), domain.SearchRequest{Query: "q", MaxResults: 5})

	require.NoError(t, err)
	assert.NotNil(t, resp.Papers)
	assert.Empty(t, resp.Papers)
}

func TestClient_Search_ErrorField(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "search failed: arxiv timeout"})
	})

	_, err := c.Search(context.Background(), domain.SearchRequest{Query: "q", MaxResults: 5})

	require.ErrorIs(t, err, domain.ErrRequestFailed)
	var reqErr *domain.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, domain.OpSearch, reqErr.Op)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Equal(t, "search failed: arxiv timeout", reqErr.Message)
	assert.NotEmpty(t, reqErr.RequestID)
}

func TestClient_Search_ErrorWithoutField(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.Search(context.Background(), domain.SearchRequest{Query: "q", MaxResults: 5})

	var reqErr *domain.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusBadGateway, reqErr.Status)
	assert.Empty(t, reqErr.Message)
}

func TestClient_Search_MalformedSuccessBody(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	_, err := c.Search(context.Background(), domain.SearchRequest{Query: "q", MaxResults: 5})

	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}

func TestClient_Search_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c := NewClient(Config{BaseURL: url})

	_, err := c.Search(context.Background(), domain.SearchRequest{Query: "q", MaxResults: 5})

	var reqErr *domain.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Zero(t, reqErr.Status)
	assert.Error(t, reqErr.Err)
}

func TestClient_NeverRetries(t *testing.T) {
	var calls atomic.Int32
	c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "busy"})
	})

	_, err := c.Ask(context.Background(), domain.AskRequest{Question: "q"})

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Ask(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ask", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"question":"what is attention?"}`, string(body))
		writeJSON(w, http.StatusOK, map[string]any{"answer": "a\nb", "sources": []string{"x", "y"}})
	})

	answer, err := c.Ask(context.Background(), domain.AskRequest{Question: "what is attention?"})

	require.NoError(t, err)
	assert.Equal(t, "a\nb", answer.Answer)
	assert.Equal(t, []string{"x", "y"}, answer.Sources)
}

func TestClient_Ask_SearchFirst(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "please search first"})
	})

	_, err := c.Ask(context.Background(), domain.AskRequest{Question: "q"})

	var reqErr *domain.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, domain.OpAsk, reqErr.Op)
	assert.Equal(t, "please search first", reqErr.Message)
}

func TestClient_Health(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"status": "healthy", "ollama_connected": true})
	})

	h, err := c.Health(context.Background())

	require.NoError(t, err)
	assert.True(t, h.Healthy())
	assert.True(t, h.OllamaConnected)
}

func TestClient_Health_UnhealthyReport(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"status": "unhealthy", "ollama_connected": false, "error": "connection refused"})
	})

	h, err := c.Health(context.Background())

	require.NoError(t, err)
	assert.False(t, h.Healthy())
	assert.Equal(t, "connection refused", h.Error)
}

func TestClient_Health_NotFound(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.Health(context.Background())

	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}

func TestClient_ContextCancelled(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Search(ctx, domain.SearchRequest{Query: "q", MaxResults: 5})

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}
