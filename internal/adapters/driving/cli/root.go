// Package cli provides the papers command line interface.
//
// Commands run against Services, which the composition root supplies through
// SetBootstrap. Tests inject Services directly with SetServices.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
	"github.com/custodia-labs/papers/internal/logger"
)

// EnvAPIURL overrides api.base_url when set.
const EnvAPIURL = "PAPERS_API_URL"

// version is set at build time via SetVersion.
var version = "dev"

var (
	verbose   bool
	apiURL    string
	configDir string
)

// Options carries the global flags to the bootstrap function.
type Options struct {
	// ConfigDir overrides the config directory. Empty uses the default.
	ConfigDir string

	// APIURL overrides api.base_url. Empty keeps the configured value.
	APIURL string
}

// Services holds what the commands run against.
type Services struct {
	Settings driving.SettingsService

	// NewPage returns a fresh page controller built from current settings.
	NewPage func() (driving.PageController, error)

	// NewHealth returns a health service built from current settings.
	NewHealth func() (driving.HealthService, error)

	// Watch reloads settings whenever the config file changes. Optional.
	Watch func(ctx context.Context, onChange func()) error
}

// Bootstrap builds Services from the global flags.
type Bootstrap func(opts Options) (*Services, error)

var (
	services  *Services
	bootstrap Bootstrap
)

// ErrNotConfigured indicates the command has no services to run against.
var ErrNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "papers",
	Short: "Search papers and ask questions about them",
	Long: `papers is a client for a paper search & question answering backend.

Search for papers by keyword, then ask questions that are answered from the
papers found. Use it from the shell, in the terminal UI, as a local web page,
or as an MCP server for AI assistants.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd == versionCmd {
			return nil
		}
		return ensureServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides api.base_url and $"+EnvAPIURL+")")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.papers)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function that builds Services on first use.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices sets the services directly, bypassing bootstrap.
func SetServices(s *Services) {
	services = s
}

func ensureServices() error {
	if services != nil {
		return nil
	}
	if bootstrap == nil {
		return ErrNotConfigured
	}

	url := apiURL
	if url == "" {
		url = os.Getenv(EnvAPIURL)
	}

	s, err := bootstrap(Options{ConfigDir: configDir, APIURL: url})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	services = s
	return nil
}

func newPage() (driving.PageController, error) {
	if services == nil || services.NewPage == nil {
		return nil, ErrNotConfigured
	}
	return services.NewPage()
}

// pageError turns a failed operation into the error the user sees.
// The page's notice holds the text; stale completions are not failures.
func pageError(page domain.Page, err error) error {
	if err == nil || errors.Is(err, domain.ErrStaleResponse) {
		return nil
	}
	if n := page.Notice; n != nil {
		if n.Title != "" {
			return fmt.Errorf("%s: %s", n.Title, n.Message)
		}
		return errors.New(n.Message)
	}
	return err
}

// currentSettings returns the stored settings, or the defaults when no
// settings service is configured.
func currentSettings() (*domain.AppSettings, error) {
	if services == nil || services.Settings == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	s, err := services.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return s, nil
}
