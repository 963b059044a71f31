package services

import (
	"strings"
	"time"

	"github.com/custodia-labs/papers/internal/core/domain"
)

// authorSeparator joins a paper's authors for display.
const authorSeparator = ", "

// RenderPaper converts a paper into its card.
func RenderPaper(p domain.Paper) domain.PaperCard {
	return domain.PaperCard{
		Title:     p.Title,
		Authors:   strings.Join(p.Authors, authorSeparator),
		Published: p.Published,
		Summary:   p.Summary,
		PDFURL:    p.PDFURL,
	}
}

// RenderPapers converts papers into cards, keeping their order.
// The result is never nil.
func RenderPapers(papers []domain.Paper) []domain.PaperCard {
	cards := make([]domain.PaperCard, 0, len(papers))
	for _, p := range papers {
		cards = append(cards, RenderPaper(p))
	}
	return cards
}

// AnswerLines splits answer text on its line breaks.
// Markup in the text is left alone; escaping is the adapter's job.
func AnswerLines(answer string) []string {
	answer = strings.ReplaceAll(answer, "\r\n", "\n")
	return strings.Split(answer, "\n")
}

// RenderAnswer converts an answer into its view, stamped with the local
// time at which it was rendered.
func RenderAnswer(a domain.Answer, at time.Time, labels domain.Labels) domain.AnswerView {
	view := domain.AnswerView{
		Text:       a.Answer,
		Lines:      AnswerLines(a.Answer),
		Timestamp:  at.Local().Format(labels.TimeLayout),
		RenderedAt: at,
	}
	if a.HasSources() {
		view.Sources = append([]string(nil), a.Sources...)
	}
	return view
}
