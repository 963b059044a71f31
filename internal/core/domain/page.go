package domain

import "time"

// Operation identifies a backend call.
type Operation string

// Backend operations. Search and ask are the page operations.
const (
	OpSearch Operation = "search"
	OpAsk    Operation = "ask"
	OpHealth Operation = "health"
)

// String returns the string representation.
func (o Operation) String() string {
	return string(o)
}

// Ticket is issued when an operation is accepted and identifies its request.
// Seq increases monotonically per operation; only the completion of the
// highest Seq issued is rendered.
type Ticket struct {
	Op  Operation
	Seq uint64

	// Query and MaxResults are set for OpSearch.
	Query      string
	MaxResults int

	// Question is set for OpAsk.
	Question string
}

// NoticeLevel grades an inline notice.
type NoticeLevel string

// Notice levels.
const (
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a non-blocking message shown in the page's notice region.
type Notice struct {
	Level NoticeLevel

	// Title names the failed operation, e.g. "Search failed".
	// Empty for validation notices.
	Title string

	// Message is the validation text or the server's error message.
	Message string
}

// PaperCard is the display form of a Paper.
type PaperCard struct {
	Title     string
	Authors   string
	Published string
	Summary   string
	PDFURL    string
}

// AnswerView is the display form of an Answer.
type AnswerView struct {
	// Text is the answer exactly as the backend sent it.
	Text string

	// Lines is the answer split on line breaks.
	Lines []string

	// Sources keep server order.
	Sources []string

	// Timestamp is the local render time formatted for display.
	Timestamp string

	// RenderedAt is the local render time.
	RenderedAt time.Time
}

// SourcesVisible returns true if the citations block is shown.
func (a AnswerView) SourcesVisible() bool {
	return len(a.Sources) > 0
}

// Page is the presentation state of the search & ask page.
// Adapters draw it; only the page controller mutates it.
type Page struct {
	// Loading is true while the latest search is in flight.
	Loading bool

	// ResultsVisible shows the results container.
	ResultsVisible bool

	// Papers holds one card per paper in server order.
	Papers []PaperCard

	// NoResults is true when the latest search returned no papers.
	// The container is still visible and shows the placeholder.
	NoResults bool

	// ResultsLabel is the count label, e.g. "(3 papers)".
	ResultsLabel string

	// QAVisible shows the question & answer section.
	QAVisible bool

	// AskBusy is true while the latest ask is in flight.
	// The ask control is disabled and shows the busy label.
	AskBusy bool

	// AskLabel is the ask control's current label.
	AskLabel string

	// AnswerVisible shows the answer section.
	AnswerVisible bool

	// Answer is the rendered answer.
	Answer AnswerView

	// Notice is the current inline notice, if any.
	Notice *Notice
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	c := p
	if p.Papers != nil {
		c.Papers = make([]PaperCard, len(p.Papers))
		copy(c.Papers, p.Papers)
	}
	if p.Answer.Lines != nil {
		c.Answer.Lines = append([]string(nil), p.Answer.Lines...)
	}
	if p.Answer.Sources != nil {
		c.Answer.Sources = append([]string(nil), p.Answer.Sources...)
	}
	if p.Notice != nil {
		n := *p.Notice
		c.Notice = &n
	}
	return c
}
