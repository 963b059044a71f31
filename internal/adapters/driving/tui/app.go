package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/papers/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/papers/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/papers/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/papers/internal/adapters/driving/tui/views/page"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// pageView renders the search & ask page.
	pageView *page.View

	// width is the terminal width.
	width int

	// height is the terminal height.
	height int

	// ready indicates the terminal size is known.
	ready bool
}

// NewApp creates a new TUI application with the given ports.
// Returns an error if required ports are missing.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	options, initial := ports.options()

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   s,
		keymap:   km,
		pageView: page.NewView(s, km, ports.Page, options, initial),
	}, nil
}

// WithContext sets the context for the app.
// Backend requests started from the page use it.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.pageView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(a.ports.Page.Labels().Title),
		a.pageView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}

	case messages.Quit:
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.pageView, cmd = a.pageView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.pageView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Page returns the page view.
func (a *App) Page() *page.View {
	return a.pageView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.pageView.SetDimensions(width, height)
}
