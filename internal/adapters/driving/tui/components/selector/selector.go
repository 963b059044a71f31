// Package selector provides the result-count selector for the TUI.
package selector

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/papers/internal/adapters/driving/tui/styles"
)

// Selector cycles through a fixed list of result counts.
type Selector struct {
	styles  *styles.Styles
	label   string
	options []int
	index   int
	focused bool
}

// New creates a selector over options with initial selected.
// An initial value missing from options selects the first option.
func New(s *styles.Styles, label string, options []int, initial int) *Selector {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sel := &Selector{
		styles:  s,
		label:   label,
		options: append([]int(nil), options...),
	}
	for i, o := range sel.options {
		if o == initial {
			sel.index = i
			break
		}
	}
	return sel
}

// Next selects the following option, wrapping around.
func (s *Selector) Next() {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.options)
}

// Prev selects the preceding option, wrapping around.
func (s *Selector) Prev() {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index - 1 + len(s.options)) % len(s.options)
}

// Value returns the selected count in the text form the page controller
// reads. An empty selector yields "".
func (s *Selector) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return strconv.Itoa(s.options[s.index])
}

// Options returns the available counts.
func (s *Selector) Options() []int {
	return s.options
}

// Focus marks the selector focused.
func (s *Selector) Focus() {
	s.focused = true
}

// Blur marks the selector unfocused.
func (s *Selector) Blur() {
	s.focused = false
}

// Focused reports whether the selector has focus.
func (s *Selector) Focused() bool {
	return s.focused
}

// View renders the options with the selected one highlighted.
func (s *Selector) View() string {
	parts := make([]string, 0, len(s.options))
	for i, o := range s.options {
		text := strconv.Itoa(o)
		switch {
		case i == s.index && s.focused:
			parts = append(parts, s.styles.Selected.Render("["+text+"]"))
		case i == s.index:
			parts = append(parts, s.styles.Normal.Render("["+text+"]"))
		default:
			parts = append(parts, s.styles.Muted.Render(" "+text+" "))
		}
	}
	return s.styles.Title.Render(s.label+" ") + strings.Join(parts, "")
}
