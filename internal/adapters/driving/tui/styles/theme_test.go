package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/papers/internal/core/domain"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for _, c := range []lipgloss.Color{
		theme.Accent, theme.Link, theme.Foreground, theme.Muted,
		theme.Warning, theme.Error, theme.Border, theme.Bar,
	} {
		assert.NotEmpty(t, string(c))
	}
}

func TestDefaultTheme_NoticeColoursDiffer(t *testing.T) {
	theme := DefaultTheme()

	assert.NotEqual(t, theme.Warning, theme.Error)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	require.NotNil(t, s)
	assert.NotEmpty(t, s.Title.Render("Paper Search"))
}

func TestStyles_Notice(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, s.Error, s.Notice(domain.NoticeError))
	assert.Equal(t, s.Warning, s.Notice(domain.NoticeWarning))
}
