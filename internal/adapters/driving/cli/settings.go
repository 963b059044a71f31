package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Manage application settings",
	Long: `View and change settings such as the backend URL, the default number of
results and the display language.

Settings are stored in ~/.papers/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting. Run 'papers settings keys' for the list of keys.

Examples:
  papers settings set api.base_url http://localhost:5000
  papers settings set ui.locale zh
  papers settings set ui.results_count_format "(%d results)"
  papers settings set search.max_results_options 5,10,20`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Settings == nil {
		return ErrNotConfigured
	}

	settings, err := services.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	if settings.API.Timeout > 0 {
		cmd.Printf("  Timeout: %s\n", settings.API.Timeout)
	} else {
		cmd.Println("  Timeout: none")
	}
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Default max results: %d\n", settings.Search.DefaultMaxResults)
	cmd.Printf("  Max results options: %s\n", joinInts(settings.Search.MaxResultsOptions))
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  Locale: %s\n", settings.UI.Locale)
	cmd.Printf("  Results count: %s\n", settings.Labels().ResultsCount)
	cmd.Println()

	cmd.Println("[Web]")
	cmd.Printf("  Address: %s\n", settings.Web.Addr())
	cmd.Printf("  Rate limit: %g/s (burst %d)\n", settings.Web.RateLimit, settings.Web.RateBurst)
	cmd.Println()

	cmd.Printf("Config file: %s\n", services.Settings.ConfigPath())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if services == nil || services.Settings == nil {
		return ErrNotConfigured
	}

	if err := services.Settings.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Settings == nil {
		return ErrNotConfigured
	}

	for _, k := range services.Settings.Keys() {
		cmd.Println(k)
	}
	return nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
