package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// option is one entry of the result-count selector.
type option struct {
	Value    int
	Selected bool
}

// pageData is what the page template renders.
type pageData struct {
	Labels   domain.Labels
	Page     domain.Page
	Query    string
	Question string
	Options  []option
}

// render writes the full page. Rendering happens into a buffer first so a
// template failure never leaves a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, labels domain.Labels, page domain.Page, f form) {
	data := pageData{
		Labels:   labels,
		Page:     page,
		Query:    f.query,
		Question: f.question,
		Options:  selectorOptions(s.ports.search(), f.maxResults),
	}

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page.html", data); err != nil {
		logger.Error("render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("write page: %v", err)
	}
}

// selectorOptions marks the submitted count selected, or the default when
// the submitted value is not one of the options.
func selectorOptions(settings domain.SearchSettings, submitted string) []option {
	selected := settings.DefaultMaxResults
	if n, err := strconv.Atoi(submitted); err == nil {
		for _, o := range settings.MaxResultsOptions {
			if o == n {
				selected = n
				break
			}
		}
	}

	out := make([]option, len(settings.MaxResultsOptions))
	for i, o := range settings.MaxResultsOptions {
		out[i] = option{Value: o, Selected: o == selected}
	}
	return out
}
