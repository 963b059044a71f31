package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driven"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
	"github.com/custodia-labs/papers/internal/logger"
)

// Ensure PageController implements the interface.
var _ driving.PageController = (*PageController)(nil)

// PageOption configures a PageController.
type PageOption func(*PageController)

// WithLabels sets the page's texts.
func WithLabels(l domain.Labels) PageOption {
	return func(c *PageController) { c.labels = l }
}

// WithDefaultMaxResults sets the result count used when the selector value
// is not a number.
func WithDefaultMaxResults(n int) PageOption {
	return func(c *PageController) { c.defaultMaxResults = n }
}

// WithClock sets the clock used to stamp answers.
func WithClock(now func() time.Time) PageOption {
	return func(c *PageController) { c.now = now }
}

// sequence tracks the requests of one operation.
type sequence struct {
	// issued is the Seq of the most recently started request.
	issued uint64

	// applied is the Seq of the most recently rendered completion.
	applied uint64
}

// PageController holds the state of the search & ask page and runs its two
// operations against the backend.
//
// Searches and asks are independent and may be in flight at the same time.
// Within one operation a completion is rendered only if it is newer than
// every completion rendered before it. The in-flight indicator of an
// operation is cleared when its most recently started request completes.
type PageController struct {
	api               driven.PaperAPI
	labels            domain.Labels
	defaultMaxResults int
	now               func() time.Time

	mu     sync.Mutex
	page   domain.Page
	papers []domain.Paper
	seqs   map[domain.Operation]*sequence
}

// NewPageController creates a page controller backed by api.
func NewPageController(api driven.PaperAPI, opts ...PageOption) *PageController {
	c := &PageController{
		api:               api,
		labels:            domain.DefaultLabels(),
		defaultMaxResults: domain.DefaultMaxResults,
		now:               time.Now,
		seqs: map[domain.Operation]*sequence{
			domain.OpSearch: {},
			domain.OpAsk:    {},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.page.AskLabel = c.labels.Ask
	return c
}

// StartSearch captures the query and shows the loading indicator.
func (c *PageController) StartSearch(query, maxResults string) (domain.Ticket, error) {
	q, ok := CaptureText(query)
	if !ok {
		c.warn(c.labels.EnterQuery)
		return domain.Ticket{}, domain.ErrEmptyQuery
	}
	n := ParseMaxResults(maxResults, c.defaultMaxResults)

	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.issue(domain.OpSearch)
	t.Query = q
	t.MaxResults = n

	c.page.Loading = true
	c.page.ResultsVisible = false
	c.page.QAVisible = false
	c.page.AnswerVisible = false
	c.page.Notice = nil

	logger.Debug("search #%d accepted: query=%q max_results=%d", t.Seq, q, n)
	return t, nil
}

// RunSearch sends the search and renders the papers it returns.
func (c *PageController) RunSearch(ctx context.Context, t domain.Ticket) error {
	if err := c.check(t, domain.OpSearch); err != nil {
		return err
	}

	logger.Section("Search")
	resp, err := c.api.Search(ctx, domain.SearchRequest{Query: t.Query, MaxResults: t.MaxResults})

	c.mu.Lock()
	defer c.mu.Unlock()

	seq := c.seqs[domain.OpSearch]
	if t.Seq == seq.issued {
		defer func() { c.page.Loading = false }()
	}
	if t.Seq <= seq.applied {
		logger.Debug("search #%d superseded by #%d, discarded", t.Seq, seq.applied)
		return domain.ErrStaleResponse
	}
	seq.applied = t.Seq

	if err != nil {
		c.fail(domain.OpSearch, err)
		return err
	}

	c.papers = append([]domain.Paper(nil), resp.Papers...)
	c.page.Papers = RenderPapers(resp.Papers)
	c.page.NoResults = len(resp.Papers) == 0
	c.page.ResultsLabel = c.labels.FormatResultsCount(len(resp.Papers))
	c.page.ResultsVisible = true
	c.page.QAVisible = true

	logger.Info("search #%d rendered %d papers", t.Seq, len(resp.Papers))
	return nil
}

// Search runs both phases of a search.
func (c *PageController) Search(ctx context.Context, query, maxResults string) error {
	t, err := c.StartSearch(query, maxResults)
	if err != nil {
		return err
	}
	return c.RunSearch(ctx, t)
}

// StartAsk captures the question and marks the ask control busy.
func (c *PageController) StartAsk(question string) (domain.Ticket, error) {
	q, ok := CaptureText(question)
	if !ok {
		c.warn(c.labels.EnterQuestion)
		return domain.Ticket{}, domain.ErrEmptyQuestion
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.issue(domain.OpAsk)
	t.Question = q

	c.page.AskBusy = true
	c.page.AskLabel = c.labels.AskBusy
	c.page.Notice = nil

	logger.Debug("ask #%d accepted: question=%q", t.Seq, q)
	return t, nil
}

// RunAsk sends the question and renders the answer.
func (c *PageController) RunAsk(ctx context.Context, t domain.Ticket) error {
	if err := c.check(t, domain.OpAsk); err != nil {
		return err
	}

	logger.Section("Ask")
	answer, err := c.api.Ask(ctx, domain.AskRequest{Question: t.Question})

	c.mu.Lock()
	defer c.mu.Unlock()

	seq := c.seqs[domain.OpAsk]
	if t.Seq == seq.issued {
		defer func() {
			c.page.AskBusy = false
			c.page.AskLabel = c.labels.Ask
		}()
	}
	if t.Seq <= seq.applied {
		logger.Debug("ask #%d superseded by #%d, discarded", t.Seq, seq.applied)
		return domain.ErrStaleResponse
	}
	seq.applied = t.Seq

	if err != nil {
		c.fail(domain.OpAsk, err)
		return err
	}

	c.page.Answer = RenderAnswer(*answer, c.now(), c.labels)
	c.page.AnswerVisible = true

	logger.Info("ask #%d rendered answer with %d sources", t.Seq, len(answer.Sources))
	return nil
}

// Ask runs both phases of an ask.
func (c *PageController) Ask(ctx context.Context, question string) error {
	t, err := c.StartAsk(question)
	if err != nil {
		return err
	}
	return c.RunAsk(ctx, t)
}

// Page returns a copy of the current page state.
func (c *PageController) Page() domain.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page.Clone()
}

// Papers returns the papers of the latest rendered search.
func (c *PageController) Papers() []domain.Paper {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Paper(nil), c.papers...)
}

// Labels returns the page's label set.
func (c *PageController) Labels() domain.Labels {
	return c.labels
}

// DismissNotice clears the inline notice.
func (c *PageController) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Notice = nil
}

// issue hands out the next ticket of op (caller must hold lock).
func (c *PageController) issue(op domain.Operation) domain.Ticket {
	seq := c.seqs[op]
	seq.issued++
	return domain.Ticket{Op: op, Seq: seq.issued}
}

// check rejects tickets this page did not issue.
func (c *PageController) check(t domain.Ticket, op domain.Operation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.Op != op || t.Seq == 0 || t.Seq > c.seqs[op].issued {
		return fmt.Errorf("%w: %s #%d", domain.ErrUnknownTicket, t.Op, t.Seq)
	}
	return nil
}

// warn shows a validation notice.
func (c *PageController) warn(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Notice = &domain.Notice{Level: domain.NoticeWarning, Message: message}
}

// fail shows a failure notice and logs the cause (caller must hold lock).
func (c *PageController) fail(op domain.Operation, err error) {
	title := c.labels.FailureTitle(op)
	message := title
	requestID := "-"

	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.RequestID != "" {
			requestID = reqErr.RequestID
		}
		if reqErr.Message != "" {
			message = reqErr.Message
		}
	}

	c.page.Notice = &domain.Notice{Level: domain.NoticeError, Title: title, Message: message}
	logger.Error("%s request %s: %v", op, requestID, err)
}
