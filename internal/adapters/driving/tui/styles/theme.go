// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/papers/internal/core/domain"
)

// Theme defines the colour palette of the page.
type Theme struct {
	// Accent marks headings and the focused field.
	Accent lipgloss.Color

	// Link colours PDF links and source tags.
	Link lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for authors, dates and hints.
	Muted lipgloss.Color

	// Warning colours validation notices.
	Warning lipgloss.Color

	// Error colours failure notices.
	Error lipgloss.Color

	// Border is the border colour of unfocused boxes.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#2563EB"),
		Link:       lipgloss.Color("#0EA5E9"),
		Foreground: lipgloss.Color("#E5E7EB"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Warning:    lipgloss.Color("#F59E0B"),
		Error:      lipgloss.Color("#EF4444"),
		Border:     lipgloss.Color("#4B5563"),
		Bar:        lipgloss.Color("#111827"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title is the page header.
	Title lipgloss.Style

	// Heading heads the papers and answer sections.
	Heading lipgloss.Style

	// Normal is regular text.
	Normal lipgloss.Style

	// Muted is secondary text.
	Muted lipgloss.Style

	// PaperTitle is the title line of a paper card.
	PaperTitle lipgloss.Style

	// Selected marks the selected paper card.
	Selected lipgloss.Style

	// Link renders PDF links.
	Link lipgloss.Style

	// Tag renders answer source tags.
	Tag lipgloss.Style

	// Warning renders validation notices.
	Warning lipgloss.Style

	// Error renders failure notices.
	Error lipgloss.Style

	// Busy renders loading and busy labels.
	Busy lipgloss.Style

	// Field is an unfocused input box.
	Field lipgloss.Style

	// FocusedField is the focused input box.
	FocusedField lipgloss.Style

	// StatusBar is the bottom bar.
	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Heading: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(theme.Foreground),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		PaperTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(theme.Link),

		Tag: lipgloss.NewStyle().
			Foreground(theme.Link).
			Padding(0, 1),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Busy: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Muted),

		Field: box.BorderForeground(theme.Border),

		FocusedField: box.BorderForeground(theme.Accent),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Notice returns the style for a notice of the given level.
func (s *Styles) Notice(level domain.NoticeLevel) lipgloss.Style {
	if level == domain.NoticeError {
		return s.Error
	}
	return s.Warning
}
