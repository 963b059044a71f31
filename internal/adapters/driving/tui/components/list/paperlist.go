// Package list provides the paper card list for the TUI.
package list

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/papers/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/papers/internal/core/domain"
)

// linesPerCard is the height of one rendered card including its spacer.
const linesPerCard = 5

// PaperList displays paper cards and lets the user move a selection
// through them.
type PaperList struct {
	cards     []domain.PaperCard
	selected  int
	focused   bool
	noResults string
	pdfLabel  string
	styles    *styles.Styles
	width     int
	height    int
}

// NewPaperList creates an empty list. noResults is shown when the list is
// empty and pdfLabel prefixes every PDF link.
func NewPaperList(s *styles.Styles, noResults, pdfLabel string) *PaperList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &PaperList{
		noResults: noResults,
		pdfLabel:  pdfLabel,
		styles:    s,
		width:     80,
		height:    20,
	}
}

// View renders the visible window of cards.
func (p *PaperList) View() string {
	if len(p.cards) == 0 {
		return p.styles.Muted.Render(p.noResults)
	}

	visible := p.height / linesPerCard
	if visible < 1 {
		visible = 1
	}
	start := 0
	if p.selected >= visible {
		start = p.selected - visible + 1
	}
	end := start + visible
	if end > len(p.cards) {
		end = len(p.cards)
	}

	blocks := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		blocks = append(blocks, p.renderCard(i, &p.cards[i]))
	}
	return strings.Join(blocks, "\n\n")
}

func (p *PaperList) renderCard(index int, card *domain.PaperCard) string {
	indicator := "  "
	titleStyle := p.styles.PaperTitle
	if index == p.selected && p.focused {
		indicator = "> "
		titleStyle = p.styles.Selected
	}

	text := p.width - 4
	if text < 20 {
		text = 20
	}

	meta := card.Authors
	if card.Published != "" {
		meta += " · " + card.Published
	}

	lines := []string{
		titleStyle.Render(indicator + runewidth.Truncate(card.Title, text, "...")),
		p.styles.Muted.Render("    " + runewidth.Truncate(meta, text, "...")),
		p.styles.Normal.Render("    " + runewidth.Truncate(oneLine(card.Summary), text, "...")),
		"    " + p.styles.Muted.Render(p.pdfLabel+": ") + p.styles.Link.Render(card.PDFURL),
	}
	return strings.Join(lines, "\n")
}

// oneLine collapses runs of whitespace, including newlines, to single spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SetCards replaces the cards and resets the selection.
func (p *PaperList) SetCards(cards []domain.PaperCard) {
	p.cards = cards
	p.selected = 0
}

// Cards returns the current cards.
func (p *PaperList) Cards() []domain.PaperCard {
	return p.cards
}

// Selected returns the index of the selected card.
func (p *PaperList) Selected() int {
	return p.selected
}

// SelectedCard returns the selected card, or nil when the list is empty.
func (p *PaperList) SelectedCard() *domain.PaperCard {
	if p.selected < 0 || p.selected >= len(p.cards) {
		return nil
	}
	return &p.cards[p.selected]
}

// MoveUp moves the selection up.
func (p *PaperList) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves the selection down.
func (p *PaperList) MoveDown() {
	if p.selected < len(p.cards)-1 {
		p.selected++
	}
}

// Focus marks the list focused.
func (p *PaperList) Focus() {
	p.focused = true
}

// Blur marks the list unfocused.
func (p *PaperList) Blur() {
	p.focused = false
}

// Focused reports whether the list has focus.
func (p *PaperList) Focused() bool {
	return p.focused
}

// SetDimensions sets the component dimensions.
func (p *PaperList) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// Count returns the number of cards.
func (p *PaperList) Count() int {
	return len(p.cards)
}

// IsEmpty returns whether the list is empty.
func (p *PaperList) IsEmpty() bool {
	return len(p.cards) == 0
}
