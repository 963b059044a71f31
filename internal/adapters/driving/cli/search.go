package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/papers/internal/core/domain"
)

var (
	searchMaxResults string
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for papers",
	Long: `Searches the backend for papers matching the query.

All arguments are joined into one query. The number of results defaults to
search.default_max_results.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchMaxResults, "max-results", "n", "", "maximum number of papers")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output papers as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchOutput is the JSON form of a search.
type searchOutput struct {
	Papers []domain.Paper `json:"papers"`
	Count  int            `json:"count"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	page, err := newPage()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	if err := page.Search(cmd.Context(), query, searchMaxResults); err != nil {
		return pageError(page.Page(), err)
	}

	if searchJSON {
		papers := page.Papers()
		return outputJSON(cmd, searchOutput{Papers: papers, Count: len(papers)})
	}

	outputPapers(cmd, page.Page(), page.Labels())
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputPapers(cmd *cobra.Command, page domain.Page, labels domain.Labels) {
	cmd.Printf("%s %s\n\n", labels.Papers, page.ResultsLabel)

	if page.NoResults {
		cmd.Println(labels.NoResults)
		return
	}

	for i, p := range page.Papers {
		cmd.Printf("  [%d] %s\n", i+1, p.Title)
		meta := p.Authors
		if p.Published != "" {
			if meta != "" {
				meta += " · "
			}
			meta += p.Published
		}
		if meta != "" {
			cmd.Printf("      %s\n", meta)
		}
		if p.Summary != "" {
			cmd.Printf("      %s\n", oneLine(p.Summary))
		}
		if p.PDFURL != "" {
			cmd.Printf("      %s: %s\n", labels.DownloadPDF, p.PDFURL)
		}
		cmd.Println()
	}
}

// oneLine collapses runs of whitespace so summaries print on one line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
