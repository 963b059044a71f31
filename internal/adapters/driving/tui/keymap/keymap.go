// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Submit runs the operation of the focused field.
	Submit key.Binding

	// NextField moves focus to the next field.
	NextField key.Binding

	// PrevField moves focus to the previous field.
	PrevField key.Binding

	// Up moves the paper selection up.
	Up key.Binding

	// Down moves the paper selection down.
	Down key.Binding

	// More selects the next result-count option.
	More key.Binding

	// Fewer selects the previous result-count option.
	Fewer key.Binding

	// Dismiss closes the inline notice.
	Dismiss key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		More: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "more"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←", "fewer"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
	}
}

// ShortHelp returns the bindings shown while typing.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.Quit}
}

// SelectorHelp returns the bindings shown while the result-count selector
// has focus.
func (k *KeyMap) SelectorHelp() []key.Binding {
	return []key.Binding{k.Fewer, k.More, k.Submit, k.NextField}
}

// PapersHelp returns the bindings shown while the paper list has focus.
func (k *KeyMap) PapersHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextField, k.Quit}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NextField, k.PrevField},
		{k.Up, k.Down, k.Fewer, k.More},
		{k.Dismiss, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
