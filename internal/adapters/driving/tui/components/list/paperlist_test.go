package list

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/papers/internal/core/domain"
)

func sampleCards() []domain.PaperCard {
	return []domain.PaperCard{
		{Title: "Attention Is All You Need", Authors: "A. Vaswani, N. Shazeer", Published: "2017-06-12",
			Summary: "The dominant sequence\ntransduction models", PDFURL: "http://arxiv.org/pdf/1706.03762"},
		{Title: "BERT", Authors: "J. Devlin", Published: "2018-10-11", Summary: "Pre-training", PDFURL: "http://arxiv.org/pdf/1810.04805"},
		{Title: "GPT-3", Authors: "T. Brown", Published: "2020-05-28", Summary: "Few-shot", PDFURL: "http://arxiv.org/pdf/2005.14165"},
	}
}

func TestNewPaperList(t *testing.T) {
	l := NewPaperList(nil, "No papers found", "Download PDF")

	require.NotNil(t, l)
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.SelectedCard())
	assert.False(t, l.Focused())
}

func TestPaperList_View_Empty(t *testing.T) {
	l := NewPaperList(nil, "No papers found", "Download PDF")

	assert.Contains(t, l.View(), "No papers found")
}

func TestPaperList_View_Cards(t *testing.T) {
	l := NewPaperList(nil, "No papers found", "Download PDF")
	l.SetCards(sampleCards())

	view := l.View()

	assert.Contains(t, view, "Attention Is All You Need")
	assert.Contains(t, view, "A. Vaswani, N. Shazeer · 2017-06-12")
	assert.Contains(t, view, "The dominant sequence transduction models")
	assert.Contains(t, view, "Download PDF: http://arxiv.org/pdf/1706.03762")
	assert.NotContains(t, view, "No papers found")
}

func TestPaperList_View_WindowFollowsSelection(t *testing.T) {
	l := NewPaperList(nil, "", "PDF")
	l.SetCards(sampleCards())
	l.SetDimensions(80, linesPerCard)

	l.MoveDown()
	l.MoveDown()
	view := l.View()

	assert.Contains(t, view, "GPT-3")
	assert.NotContains(t, view, "BERT")
}

func TestPaperList_View_TruncatesLongTitles(t *testing.T) {
	l := NewPaperList(nil, "", "PDF")
	l.SetDimensions(30, 20)
	l.SetCards([]domain.PaperCard{{Title: strings.Repeat("x", 100)}})

	assert.Contains(t, l.View(), "...")
}

func TestPaperList_Navigation(t *testing.T) {
	l := NewPaperList(nil, "", "PDF")
	l.SetCards(sampleCards())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 2, l.Selected())
	assert.Equal(t, "GPT-3", l.SelectedCard().Title)
}

func TestPaperList_SetCardsResetsSelection(t *testing.T) {
	l := NewPaperList(nil, "", "PDF")
	l.SetCards(sampleCards())
	l.MoveDown()

	l.SetCards(sampleCards()[:1])

	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 1, l.Count())
}

func TestPaperList_FocusMarksSelection(t *testing.T) {
	l := NewPaperList(nil, "", "PDF")
	l.SetCards(sampleCards())

	l.Focus()

	assert.True(t, l.Focused())
	assert.Contains(t, l.View(), "> Attention")

	l.Blur()
	assert.NotContains(t, l.View(), "> Attention")
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a b c", oneLine("  a\n b\t\tc "))
}
