package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/generate"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate test cases with the configured AI provider",
	}
	cmd.AddCommand(newGenerateStoryCmd())
	cmd.AddCommand(newGenerateEpicCmd())
	return cmd
}

func newGenerateStoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "story <story-id>",
		Short: "Generate test cases for one story (always calls the generator, even if cases exist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			orch := generate.New(c)
			cases, err := orch.GenerateOne(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = successColor.Fprintf(out, "Generated %d test cases\n", len(cases))
			for _, tc := range cases {
				_, _ = fmt.Fprintf(out, "  [%s] %s\n", tc.Priority, tc.Title)
			}
			return nil
		},
	}
}

func newGenerateEpicCmd() *cobra.Command {
	var useServer bool

	cmd := &cobra.Command{
		Use:   "epic <epic-id>",
		Short: "Generate test cases for every story of an epic that has none yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			var report *models.BulkGenerationReport
			if useServer {
				report, err = c.BulkGenerateTestCases(cmd.Context(), args[0])
			} else {
				report, err = generate.New(c).BulkGenerate(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useServer, "server", false, "Run the whole batch server-side instead of story by story")
	return cmd
}

func printReport(out io.Writer, r *models.BulkGenerationReport) {
	_, _ = fmt.Fprintf(out, "Stories: %d total, %d processed, %d test cases generated\n",
		r.TotalStories, r.StoriesProcessed, r.TestCasesGenerated)
	for _, s := range r.PerStory {
		label := s.Name
		if s.JiraKey != "" {
			label = s.JiraKey + " " + s.Name
		}
		switch s.Status {
		case models.StoryGenerated:
			_, _ = successColor.Fprintf(out, "  generated")
			_, _ = fmt.Fprintf(out, "  %s (%d cases)\n", label, s.TestCasesCreated)
		case models.StorySkipped:
			_, _ = warnColor.Fprintf(out, "  skipped  ")
			_, _ = fmt.Fprintf(out, "  %s (%s)\n", label, s.Reason)
		default:
			_, _ = errorColor.Fprintf(out, "  failed   ")
			_, _ = fmt.Fprintf(out, "  %s (%s)\n", label, s.Reason)
		}
	}
}
