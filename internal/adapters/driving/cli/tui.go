package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/papers/internal/adapters/driving/tui"
	"github.com/custodia-labs/papers/internal/logger"
)

// tuiLogFile receives log output while the TUI owns the terminal.
const tuiLogFile = "papers-tui.log"

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal page",
	Long: `Launch the interactive search & ask page in the terminal.

Type keywords and press Enter to search. Once papers are shown, Tab to the
question field and press Enter to ask about them.

Controls:
  Enter          - Search / Ask (depends on focused field)
  Tab/Shift+Tab  - Move between fields
  ←/→            - Change the number of papers (result-count selector)
  ↑/k, ↓/j       - Move through papers
  Esc            - Dismiss notice
  Ctrl+C         - Quit

With --verbose, logs are written to ` + tuiLogFile + ` in the temp directory.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	page, err := newPage()
	if err != nil {
		return err
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{
		Page:              page,
		MaxResultsOptions: settings.Search.MaxResultsOptions,
		DefaultMaxResults: settings.Search.DefaultMaxResults,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLogs keeps log lines off the alternate screen.
func redirectLogs() (func(), error) {
	previous := logger.Output()

	if !logger.IsVerbose() {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(previous) }, nil
	}

	f, err := tea.LogToFile(filepath.Join(os.TempDir(), tuiLogFile), "papers")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(previous)
		_ = f.Close()
	}, nil
}
