package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driven"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAPIBaseURL         = "api.base_url"
	keyAPITimeout         = "api.timeout"
	keySearchMaxResults   = "search.default_max_results"
	keySearchMaxOptions   = "search.max_results_options"
	keyUILocale           = "ui.locale"
	keyUIResultsCountFmt  = "ui.results_count_format"
	keyWebHost            = "web.host"
	keyWebPort            = "web.port"
	keyWebRateLimit       = "web.rate_limit"
	keyWebRateBurst       = "web.rate_burst"
	maxResultsOptionsSep  = ","
	maxResultsOptionsHint = "comma separated integers"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or unusable values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL: s.getString(keyAPIBaseURL, defaults.API.BaseURL),
			Timeout: s.getDuration(keyAPITimeout, defaults.API.Timeout),
		},
		Search: domain.SearchSettings{
			DefaultMaxResults: s.getInt(keySearchMaxResults, defaults.Search.DefaultMaxResults),
			MaxResultsOptions: s.getIntSlice(keySearchMaxOptions, defaults.Search.MaxResultsOptions),
		},
		UI: domain.UISettings{
			Locale:             s.getLocale(defaults.UI.Locale),
			ResultsCountFormat: s.getCountFormat(),
		},
		Web: domain.WebSettings{
			Host:      s.getString(keyWebHost, defaults.Web.Host),
			Port:      s.getInt(keyWebPort, defaults.Web.Port),
			RateLimit: s.getFloat(keyWebRateLimit, defaults.Web.RateLimit),
			RateBurst: s.getInt(keyWebRateBurst, defaults.Web.RateBurst),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyAPIBaseURL, settings.API.BaseURL},
		{keyAPITimeout, settings.API.Timeout.String()},
		{keySearchMaxResults, settings.Search.DefaultMaxResults},
		{keySearchMaxOptions, settings.Search.MaxResultsOptions},
		{keyUILocale, settings.UI.Locale.String()},
		{keyUIResultsCountFmt, settings.UI.ResultsCountFormat},
		{keyWebHost, settings.Web.Host},
		{keyWebPort, settings.Web.Port},
		{keyWebRateLimit, settings.Web.RateLimit},
		{keyWebRateBurst, settings.Web.RateBurst},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set updates a single setting from its text form and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	var stored any = value

	switch key {
	case keyAPIBaseURL:
		settings.API.BaseURL = value
	case keyAPITimeout:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		settings.API.Timeout = d
		stored = d.String()
	case keySearchMaxResults:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.Search.DefaultMaxResults = n
		stored = n
	case keySearchMaxOptions:
		opts, err := parseIntList(key, value)
		if err != nil {
			return err
		}
		settings.Search.MaxResultsOptions = opts
		stored = opts
	case keyUILocale:
		settings.UI.Locale = domain.Locale(value)
	case keyUIResultsCountFmt:
		settings.UI.ResultsCountFormat = value
	case keyWebHost:
		settings.Web.Host = value
	case keyWebPort:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.Web.Port = n
		stored = n
	case keyWebRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		settings.Web.RateLimit = f
		stored = f
	case keyWebRateBurst:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.Web.RateBurst = n
		stored = n
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	return s.configStore.Set(key, stored)
}

// Keys lists the recognised setting keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyAPIBaseURL,
		keyAPITimeout,
		keySearchMaxResults,
		keySearchMaxOptions,
		keyUILocale,
		keyUIResultsCountFmt,
		keyWebHost,
		keyWebPort,
		keyWebRateLimit,
		keyWebRateBurst,
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getIntSlice(key string, defaultVal []int) []int {
	val := s.configStore.GetIntSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(s.configStore.GetString(key))
	if err != nil || d < 0 {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getLocale(defaultVal domain.Locale) domain.Locale {
	locale := domain.Locale(s.configStore.GetString(keyUILocale))
	if !locale.IsValid() {
		return defaultVal
	}
	return locale
}

// getCountFormat returns the stored count label format, or "" (the locale's
// own) when the stored value cannot format a count.
func (s *SettingsService) getCountFormat() string {
	f := s.configStore.GetString(keyUIResultsCountFmt)
	if f == "" || !domain.IsResultsCountFormat(f) {
		return ""
	}
	return f
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}
	return n, nil
}

func parseIntList(key, value string) ([]int, error) {
	parts := strings.Split(value, maxResultsOptionsSep)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %s: want %s", domain.ErrInvalidInput, key, maxResultsOptionsHint)
		}
		out = append(out, n)
	}
	return out, nil
}
