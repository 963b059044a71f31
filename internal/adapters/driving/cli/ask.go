package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/papers/internal/core/domain"
)

var askJSON bool

// stdin is the question source when no arguments are given.
var stdin io.Reader = os.Stdin

// stdinIsTerminal reports whether stdin is interactive.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the papers found",
	Long: `Asks the backend a question. It is answered from the papers of the most
recent search made against the backend.

All arguments are joined into one question. Without arguments the question
is read from piped stdin:

  echo "what is attention?" | papers ask`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

// askOutput is the JSON form of an answer.
type askOutput struct {
	Answer     string   `json:"answer"`
	Sources    []string `json:"sources,omitempty"`
	AnsweredAt string   `json:"answered_at"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	question, err := readQuestion(args)
	if err != nil {
		return err
	}

	page, err := newPage()
	if err != nil {
		return err
	}

	if err := page.Ask(cmd.Context(), question); err != nil {
		return pageError(page.Page(), err)
	}

	view := page.Page().Answer
	if askJSON {
		return outputJSON(cmd, askOutput{
			Answer:     view.Text,
			Sources:    view.Sources,
			AnsweredAt: view.RenderedAt.Format(time.RFC3339),
		})
	}

	outputAnswer(cmd, view, page.Labels())
	return nil
}

func readQuestion(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if stdinIsTerminal() {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read question: %w", err)
	}
	return string(data), nil
}

func outputAnswer(cmd *cobra.Command, view domain.AnswerView, labels domain.Labels) {
	cmd.Printf("%s\n\n", labels.Answer)
	for _, line := range view.Lines {
		cmd.Printf("  %s\n", line)
	}

	if view.SourcesVisible() {
		cmd.Printf("\n%s\n", labels.Sources)
		for _, s := range view.Sources {
			cmd.Printf("  [%s]\n", s)
		}
	}

	cmd.Printf("\n%s\n", view.Timestamp)
}
