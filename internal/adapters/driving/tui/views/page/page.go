// Package page provides the search & ask page of the TUI.
package page

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/papers/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/papers/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/papers/internal/adapters/driving/tui/components/selector"
	"github.com/custodia-labs/papers/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/papers/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/papers/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/papers/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
)

// Focus identifies the control that receives keys.
type Focus int

const (
	FocusQuery Focus = iota
	FocusMaxResults
	FocusPapers
	FocusQuestion
)

// chromeHeight is the number of lines used by everything except the papers.
const chromeHeight = 16

// View is the single page of the TUI: search inputs, paper cards, the
// question input and the answer.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	page       driving.PageController
	labels     domain.Labels
	query      *input.Field
	maxResults *selector.Selector
	papers     *list.PaperList
	question   *input.Field
	spinner    spinner.Model
	statusbar  *status.Bar

	ctx    context.Context
	focus  Focus
	width  int
	height int
}

// NewView creates the page view over a page controller.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	page driving.PageController,
	maxResultsOptions []int,
	defaultMaxResults int,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	labels := page.Labels()

	v := &View{
		styles:     s,
		keymap:     km,
		page:       page,
		labels:     labels,
		query:      input.NewField(s, labels.Search, labels.QueryPlaceholder),
		maxResults: selector.New(s, "#", maxResultsOptions, defaultMaxResults),
		papers:     list.NewPaperList(s, labels.NoResults, labels.DownloadPDF),
		question:   input.NewField(s, labels.Ask, labels.QuestionPlaceholder),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.Busy)),
		statusbar:  status.NewBar(s, km),
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
	v.query.Focus()
	return v
}

// WithContext sets the context passed to backend requests.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the cursor blink and the spinner.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.query.Init(), v.spinner.Tick)
}

// Update handles messages for the page.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.AskCompleted:
		v.sync()
		return v, nil

	case messages.NoticeDismissed:
		v.page.DismissNotice()
		v.sync()
		return v, nil
	}

	// Cursor blink messages carry the id of their field.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.query, cmd = v.query.Update(msg)
	cmds = append(cmds, cmd)
	v.question, cmd = v.question.Update(msg)
	cmds = append(cmds, cmd)
	return v, tea.Batch(cmds...)
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Dismiss):
		return v, func() tea.Msg { return messages.NoticeDismissed{} }
	case keymap.Matches(keyStr, v.keymap.NextField):
		return v, v.moveFocus(1)
	case keymap.Matches(keyStr, v.keymap.PrevField):
		return v, v.moveFocus(-1)
	case keymap.Matches(keyStr, v.keymap.Submit):
		return v.submit()
	}

	switch v.focus {
	case FocusMaxResults:
		if keymap.Matches(keyStr, v.keymap.More) {
			v.maxResults.Next()
		} else if keymap.Matches(keyStr, v.keymap.Fewer) {
			v.maxResults.Prev()
		}
		return v, nil
	case FocusPapers:
		if keymap.Matches(keyStr, v.keymap.Up) {
			v.papers.MoveUp()
		} else if keymap.Matches(keyStr, v.keymap.Down) {
			v.papers.MoveDown()
		}
		return v, nil
	case FocusQuestion:
		var cmd tea.Cmd
		v.question, cmd = v.question.Update(msg)
		return v, cmd
	case FocusQuery:
	}

	var cmd tea.Cmd
	v.query, cmd = v.query.Update(msg)
	return v, cmd
}

// submit starts the operation of the focused control.
func (v *View) submit() (*View, tea.Cmd) {
	switch v.focus {
	case FocusQuery, FocusMaxResults:
		return v, v.startSearch()
	case FocusQuestion:
		return v, v.startAsk()
	case FocusPapers:
	}
	return v, nil
}

func (v *View) startSearch() tea.Cmd {
	t, err := v.page.StartSearch(v.query.Value(), v.maxResults.Value())
	v.sync()
	if err != nil {
		return nil
	}

	page, ctx := v.page, v.ctx
	return func() tea.Msg {
		return messages.SearchCompleted{Ticket: t, Err: page.RunSearch(ctx, t)}
	}
}

func (v *View) startAsk() tea.Cmd {
	t, err := v.page.StartAsk(v.question.Value())
	v.sync()
	if err != nil {
		return nil
	}

	page, ctx := v.page, v.ctx
	return func() tea.Msg {
		return messages.AskCompleted{Ticket: t, Err: page.RunAsk(ctx, t)}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if !errors.Is(msg.Err, domain.ErrStaleResponse) {
		cards := v.page.Page().Papers
		for i := range cards {
			cards[i] = plainCard(cards[i])
		}
		v.papers.SetCards(cards)
	}
	v.sync()
}

// focusable lists the controls that can take focus on the current page.
func (v *View) focusable(p domain.Page) []Focus {
	out := []Focus{FocusQuery, FocusMaxResults}
	if p.ResultsVisible && !v.papers.IsEmpty() {
		out = append(out, FocusPapers)
	}
	if p.QAVisible {
		out = append(out, FocusQuestion)
	}
	return out
}

func (v *View) moveFocus(delta int) tea.Cmd {
	order := v.focusable(v.page.Page())
	i := 0
	for j, f := range order {
		if f == v.focus {
			i = j
			break
		}
	}
	i = (i + delta + len(order)) % len(order)
	return v.setFocus(order[i])
}

func (v *View) setFocus(f Focus) tea.Cmd {
	v.focus = f
	v.query.Blur()
	v.maxResults.Blur()
	v.papers.Blur()
	v.question.Blur()

	var cmd tea.Cmd
	switch f {
	case FocusQuery:
		cmd = v.query.Focus()
		v.statusbar.SetHints(v.keymap.ShortHelp())
	case FocusMaxResults:
		v.maxResults.Focus()
		v.statusbar.SetHints(v.keymap.SelectorHelp())
	case FocusPapers:
		v.papers.Focus()
		v.statusbar.SetHints(v.keymap.PapersHelp())
	case FocusQuestion:
		cmd = v.question.Focus()
		v.statusbar.SetHints(v.keymap.ShortHelp())
	}
	return cmd
}

// sync brings the status bar and focus in line with the page state.
func (v *View) sync() {
	p := v.page.Page()

	switch {
	case p.Loading:
		v.statusbar.Set(status.StateBusy, v.labels.Loading)
	case p.AskBusy:
		v.statusbar.Set(status.StateBusy, p.AskLabel)
	case p.Notice != nil && p.Notice.Level == domain.NoticeError:
		v.statusbar.Set(status.StateFailed, p.Notice.Title)
	case p.ResultsVisible:
		v.statusbar.Set(status.StateResults, p.ResultsLabel)
	default:
		v.statusbar.Clear()
	}

	for _, f := range v.focusable(p) {
		if f == v.focus {
			return
		}
	}
	v.setFocus(FocusQuery)
}

// View renders the page.
func (v *View) View() string {
	p := v.page.Page()
	sections := make([]string, 0, 16)

	sections = append(sections,
		v.styles.Title.Render(v.labels.Title), "",
		v.query.View(),
		v.maxResults.View(), "",
	)

	if p.Notice != nil {
		sections = append(sections, v.renderNotice(p.Notice), "")
	}

	if p.Loading {
		sections = append(sections, v.spinner.View()+" "+v.styles.Busy.Render(v.labels.Loading), "")
	}

	if p.ResultsVisible {
		heading := v.styles.Heading.Render(v.labels.Papers) + " " + v.styles.Muted.Render(plain(p.ResultsLabel))
		sections = append(sections, heading, v.papers.View(), "")
	}

	if p.QAVisible {
		sections = append(sections,
			v.styles.Heading.Render(v.labels.QASection),
			v.question.View(),
			v.renderAskControl(p), "",
		)
	}

	if p.AnswerVisible {
		sections = append(sections, v.renderAnswer(p.Answer), "")
	}

	sections = append(sections, v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderNotice(n *domain.Notice) string {
	text := plain(n.Message)
	if n.Title != "" {
		text = plain(n.Title) + ": " + text
	}
	return v.styles.Notice(n.Level).Render(text) + v.styles.Muted.Render("  (esc)")
}

func (v *View) renderAskControl(p domain.Page) string {
	if p.AskBusy {
		return v.spinner.View() + " " + v.styles.Busy.Render(p.AskLabel)
	}
	return v.styles.Muted.Render("[" + p.AskLabel + "]")
}

func (v *View) renderAnswer(a domain.AnswerView) string {
	wrap := v.styles.Normal.Width(v.textWidth())

	lines := []string{v.styles.Heading.Render(v.labels.Answer)}
	for _, l := range a.Lines {
		lines = append(lines, wrap.Render(plain(l)))
	}
	if a.SourcesVisible() {
		tags := make([]string, 0, len(a.Sources))
		for _, s := range a.Sources {
			tags = append(tags, v.styles.Tag.Render("["+plain(s)+"]"))
		}
		lines = append(lines, "", v.styles.Muted.Render(v.labels.Sources+":")+" "+strings.Join(tags, ""))
	}
	lines = append(lines, v.styles.Muted.Render(a.Timestamp))
	return strings.Join(lines, "\n")
}

func (v *View) textWidth() int {
	if v.width < 24 {
		return 20
	}
	return v.width - 4
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	v.query.SetWidth(width)
	v.question.SetWidth(width)
	v.papers.SetDimensions(width, max(height-chromeHeight, 0))
	v.statusbar.SetWidth(width)
}

// Focus returns the focused control.
func (v *View) Focus() Focus {
	return v.focus
}

// Query returns the text of the search input.
func (v *View) Query() string {
	return v.query.Value()
}

// Question returns the text of the question input.
func (v *View) Question() string {
	return v.question.Value()
}

// MaxResults returns the selected result count.
func (v *View) MaxResults() string {
	return v.maxResults.Value()
}

// Papers returns the paper list component.
func (v *View) Papers() *list.PaperList {
	return v.papers
}

// StatusBar returns the status bar component.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}

// plain removes terminal control sequences from backend text.
func plain(s string) string {
	return ansi.Strip(s)
}

func plainCard(c domain.PaperCard) domain.PaperCard {
	c.Title = plain(c.Title)
	c.Authors = plain(c.Authors)
	c.Published = plain(c.Published)
	c.Summary = plain(c.Summary)
	c.PDFURL = plain(c.PDFURL)
	return c
}
