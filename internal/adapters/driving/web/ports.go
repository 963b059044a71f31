package web

import (
	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
)

// Ports aggregates the driving ports the web page runs against.
type Ports struct {
	// NewPage builds the page controller. It is called at start and again
	// on every Reload.
	NewPage func() (driving.PageController, error)

	// Settings supplies the result-count options and, on Reload, the rate
	// limit. Optional.
	Settings driving.SettingsService

	// NewHealth builds the service behind GET /api/health. It is called at
	// start and again on every Reload. Optional.
	NewHealth func() (driving.HealthService, error)
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.NewPage == nil {
		return ErrMissingPageFactory
	}
	return nil
}

// search returns the result-count settings, falling back to the defaults.
func (p *Ports) search() domain.SearchSettings {
	defaults := domain.DefaultAppSettings().Search
	if p.Settings == nil {
		return defaults
	}
	s, err := p.Settings.Get()
	if err != nil || len(s.Search.MaxResultsOptions) == 0 {
		return defaults
	}
	return s.Search
}

// health builds the health service, or nil when none is configured.
func (p *Ports) health() (driving.HealthService, error) {
	if p.NewHealth == nil {
		return nil, nil
	}
	return p.NewHealth()
}

// rate returns the configured rate limit, falling back to cfg.
func (p *Ports) rate(cfg Config) (float64, int) {
	if p.Settings == nil {
		return cfg.RateLimit, cfg.RateBurst
	}
	s, err := p.Settings.Get()
	if err != nil {
		return cfg.RateLimit, cfg.RateBurst
	}
	return s.Web.RateLimit, s.Web.RateBurst
}
