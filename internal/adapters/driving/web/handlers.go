package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/logger"
)

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	page, f := s.current()
	s.render(w, http.StatusOK, page.Labels(), page.Page(), f)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.PostFormValue("query")
	maxResults := r.PostFormValue("max_results")

	page := s.remember(func(f *form) {
		f.query = query
		f.maxResults = maxResults
		f.question = ""
	})
	err := page.Search(r.Context(), query, maxResults)

	_, f := s.current()
	s.render(w, statusFor(err), page.Labels(), page.Page(), f)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	question := r.PostFormValue("question")

	page := s.remember(func(f *form) {
		f.question = question
	})
	err := page.Ask(r.Context(), question)

	_, f := s.current()
	s.render(w, statusFor(err), page.Labels(), page.Page(), f)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBackendHealth(w http.ResponseWriter, r *http.Request) {
	health := s.currentHealth()
	if health == nil {
		respondJSON(w, http.StatusNotFound, domain.ErrorBody{Error: "health check not configured"})
		return
	}

	h, err := health.Check(r.Context())
	if err != nil {
		respondJSON(w, http.StatusBadGateway, domain.ErrorBody{Error: err.Error()})
		return
	}

	status := http.StatusOK
	if !h.Healthy() {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, h)
}

// statusFor maps an operation outcome to the HTTP status of the page.
// Superseded requests render the newer state with 200.
func statusFor(err error) int {
	switch {
	case err == nil, errors.Is(err, domain.ErrStaleResponse):
		return http.StatusOK
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRequestFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("write response: %v", err)
	}
}
