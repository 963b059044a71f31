package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthJSON bool

var healthCmd = &cobra.Command{
	Use:     "health",
	Aliases: []string{"status"},
	Short:   "Check the backend",
	Long:    `Queries the backend's health endpoint and reports whether it can answer.`,
	Args:    cobra.NoArgs,
	RunE:    runHealth,
}

func init() {
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	if services == nil || services.NewHealth == nil {
		return ErrNotConfigured
	}
	svc, err := services.NewHealth()
	if err != nil {
		return err
	}

	h, err := svc.Check(cmd.Context())
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if healthJSON {
		if err := outputJSON(cmd, h); err != nil {
			return err
		}
	} else {
		cmd.Printf("Backend:          %s\n", svc.Endpoint())
		cmd.Printf("Status:           %s\n", h.Status)
		cmd.Printf("Ollama connected: %t\n", h.OllamaConnected)
		if h.Error != "" {
			cmd.Printf("Error:            %s\n", h.Error)
		}
	}

	if !h.Healthy() {
		return fmt.Errorf("backend is %s", h.Status)
	}
	return nil
}
