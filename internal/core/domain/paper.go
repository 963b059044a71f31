package domain

import "encoding/json"

// Paper is a single search hit as returned by the backend.
// Fields are display-only; the client never interprets them.
type Paper struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Published string   `json:"published"`
	Summary   string   `json:"summary"`
	PDFURL    string   `json:"pdf_url"`

	// EntryID is the upstream identifier. Optional; not displayed.
	EntryID string `json:"entry_id,omitempty"`
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// SearchResponse is the success body of POST /api/search.
// Papers keep server order.
type SearchResponse struct {
	Papers []Paper `json:"papers"`

	// Count is informational. The page counts Papers itself.
	Count int `json:"count,omitempty"`
}

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Question string `json:"question"`
}

// Answer is the success body of POST /api/ask.
// A nil or empty Sources means no citations.
type Answer struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}

// HasSources returns true if the answer cites at least one source.
func (a Answer) HasSources() bool {
	return len(a.Sources) > 0
}

// Health is the body of GET /api/health.
type Health struct {
	Status          string `json:"status"`
	OllamaConnected bool   `json:"ollama_connected"`
	Error           string `json:"error,omitempty"`
}

// Healthy returns true if the backend reports itself healthy.
func (h Health) Healthy() bool {
	return h.Status == HealthStatusHealthy
}

// Backend health states.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// ErrorBody is the failure envelope the backend sends with non-2xx statuses.
type ErrorBody struct {
	Error string `json:"error"`
}

// ParseErrorBody extracts the error field from a failure body.
// It returns "" when the body is not JSON or carries no error field.
func ParseErrorBody(body []byte) string {
	var eb ErrorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return eb.Error
}
