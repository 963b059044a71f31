package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "http://localhost:5000", s.API.BaseURL)
	assert.Zero(t, s.API.Timeout)
	assert.Equal(t, 5, s.Search.DefaultMaxResults)
	assert.Equal(t, []int{5, 10, 15, 20}, s.Search.MaxResultsOptions)
	assert.Equal(t, LocaleEnglish, s.UI.Locale)
	assert.Equal(t, "localhost:8080", s.Web.Addr())
	require.NoError(t, s.Validate())
}

func TestAppSettings_Labels(t *testing.T) {
	s := DefaultAppSettings()
	assert.Equal(t, "(4 papers)", s.Labels().FormatResultsCount(4))

	s.UI.Locale = LocaleChinese
	assert.Equal(t, "(4篇)", s.Labels().FormatResultsCount(4))

	s.UI.ResultsCountFormat = "%d results"
	assert.Equal(t, "4 results", s.Labels().FormatResultsCount(4))
	assert.Equal(t, "提问", s.Labels().Ask)
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppSettings)
	}{
		{"empty base url", func(s *AppSettings) { s.API.BaseURL = "  " }},
		{"negative timeout", func(s *AppSettings) { s.API.Timeout = -time.Second }},
		{"zero max results", func(s *AppSettings) { s.Search.DefaultMaxResults = 0 }},
		{"unknown locale", func(s *AppSettings) { s.UI.Locale = "fr" }},
		{"count format without verb", func(s *AppSettings) { s.UI.ResultsCountFormat = "papers" }},
		{"count format with two verbs", func(s *AppSettings) { s.UI.ResultsCountFormat = "%d of %d" }},
		{"count format with another verb", func(s *AppSettings) { s.UI.ResultsCountFormat = "%s: %d" }},
		{"port out of range", func(s *AppSettings) { s.Web.Port = 70000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
		})
	}
}

func TestIsResultsCountFormat(t *testing.T) {
	assert.True(t, IsResultsCountFormat("(%d papers)"))
	assert.True(t, IsResultsCountFormat("(%d篇)"))
	assert.True(t, IsResultsCountFormat("%d%% match"))

	assert.False(t, IsResultsCountFormat(""))
	assert.False(t, IsResultsCountFormat("{n} papers"))
	assert.False(t, IsResultsCountFormat("%d of %d"))
	assert.False(t, IsResultsCountFormat("%v papers %d"))
	assert.False(t, IsResultsCountFormat("%d papers 100%"))
}
