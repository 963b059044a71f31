package driving

import (
	"context"

	"github.com/custodia-labs/papers/internal/core/domain"
)

// PageController drives the search & ask page.
//
// Each operation runs in two phases. Start validates the input and puts the
// page into its in-flight state without touching the network, so an event
// loop can draw the loading indicator first. Run performs the single backend
// request and renders the outcome. Only the completion of the most recent
// ticket of each operation is rendered; older completions are discarded.
type PageController interface {
	// StartSearch captures the query and result count and shows the loading
	// indicator. Returns domain.ErrEmptyQuery when the trimmed query is empty.
	StartSearch(query, maxResults string) (domain.Ticket, error)

	// RunSearch sends the search of t and renders its papers.
	// Returns domain.ErrStaleResponse if a newer search was started meanwhile.
	RunSearch(ctx context.Context, t domain.Ticket) error

	// Search runs both phases.
	Search(ctx context.Context, query, maxResults string) error

	// StartAsk captures the question and marks the ask control busy.
	// Returns domain.ErrEmptyQuestion when the trimmed question is empty.
	StartAsk(question string) (domain.Ticket, error)

	// RunAsk sends the question of t and renders the answer.
	// Returns domain.ErrStaleResponse if a newer ask was started meanwhile.
	RunAsk(ctx context.Context, t domain.Ticket) error

	// Ask runs both phases.
	Ask(ctx context.Context, question string) error

	// Page returns a copy of the current page state.
	Page() domain.Page

	// Papers returns the papers of the latest rendered search.
	Papers() []domain.Paper

	// Labels returns the page's label set.
	Labels() domain.Labels

	// DismissNotice clears the inline notice.
	DismissNotice()
}
