package domain

import (
	"fmt"
	"strings"
	"time"
)

// Default settings values.
const (
	DefaultAPIBaseURL        = "http://localhost:5000"
	DefaultMaxResults        = 5
	DefaultWebHost           = "localhost"
	DefaultWebPort           = 8080
	DefaultWebRateLimit      = 5.0
	DefaultWebRateBurst      = 10
	DefaultResultsCountToken = "%d"
)

// APISettings locates the search & ask backend.
type APISettings struct {
	// BaseURL is the backend origin, e.g. http://localhost:5000.
	BaseURL string

	// Timeout bounds each request. Zero leaves requests unbounded.
	Timeout time.Duration
}

// SearchSettings holds search defaults.
type SearchSettings struct {
	// DefaultMaxResults is used when the selector value is not a number.
	DefaultMaxResults int

	// MaxResultsOptions are the choices offered by the result-count selector.
	MaxResultsOptions []int
}

// UISettings holds presentation settings.
type UISettings struct {
	// Locale selects the built-in label set.
	Locale Locale

	// ResultsCountFormat overrides the count label. Empty keeps the locale's.
	ResultsCountFormat string
}

// WebSettings holds the web page server settings.
type WebSettings struct {
	Host string
	Port int

	// RateLimit is the sustained number of page submissions per second.
	RateLimit float64

	// RateBurst is the number of submissions allowed at once.
	RateBurst int
}

// Addr returns host:port.
func (w WebSettings) Addr() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

// AppSettings holds all application settings.
type AppSettings struct {
	API    APISettings
	Search SearchSettings
	UI     UISettings
	Web    WebSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL: DefaultAPIBaseURL,
		},
		Search: SearchSettings{
			DefaultMaxResults: DefaultMaxResults,
			MaxResultsOptions: []int{5, 10, 15, 20},
		},
		UI: UISettings{
			Locale: LocaleEnglish,
		},
		Web: WebSettings{
			Host:      DefaultWebHost,
			Port:      DefaultWebPort,
			RateLimit: DefaultWebRateLimit,
			RateBurst: DefaultWebRateBurst,
		},
	}
}

// Labels returns the label set with the configured count format applied.
func (s AppSettings) Labels() Labels {
	l := LabelsFor(s.UI.Locale)
	if s.UI.ResultsCountFormat != "" {
		l.ResultsCount = s.UI.ResultsCountFormat
	}
	return l
}

// Validate checks the settings for values the page cannot work with.
func (s AppSettings) Validate() error {
	if strings.TrimSpace(s.API.BaseURL) == "" {
		return fmt.Errorf("%w: api.base_url is empty", ErrInvalidInput)
	}
	if s.API.Timeout < 0 {
		return fmt.Errorf("%w: api.timeout must not be negative", ErrInvalidInput)
	}
	if s.Search.DefaultMaxResults <= 0 {
		return fmt.Errorf("%w: search.default_max_results must be positive", ErrInvalidInput)
	}
	if !s.UI.Locale.IsValid() {
		return fmt.Errorf("%w: unknown locale %q", ErrInvalidInput, s.UI.Locale)
	}
	if f := s.UI.ResultsCountFormat; f != "" && !IsResultsCountFormat(f) {
		return fmt.Errorf("%w: ui.results_count_format needs exactly one %%d", ErrInvalidInput)
	}
	if s.Web.Port <= 0 || s.Web.Port > 65535 {
		return fmt.Errorf("%w: web.port out of range", ErrInvalidInput)
	}
	return nil
}

// IsResultsCountFormat reports whether f formats a count: exactly one %d and
// no other verbs. A literal percent sign is written %%.
func IsResultsCountFormat(f string) bool {
	rest := strings.ReplaceAll(f, "%%", "")
	return strings.Count(rest, DefaultResultsCountToken) == 1 && strings.Count(rest, "%") == 1
}
