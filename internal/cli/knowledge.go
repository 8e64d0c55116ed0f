package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/api"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

func newKnowledgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knowledge",
		Short: "Manage the historical test-case knowledge base",
	}
	cmd.AddCommand(newKnowledgeUploadCmd())
	cmd.AddCommand(newKnowledgeBatchesCmd())
	cmd.AddCommand(newKnowledgeEntriesCmd())
	return cmd
}

func newKnowledgeUploadCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a historical test-case file for generation context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			batch, err := c.UploadKnowledgeBatch(cmd.Context(), project, filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = successColor.Fprintf(out, "Uploaded %s (batch %s)\n", batch.FileName, batch.ID)
			_, _ = fmt.Fprintf(out, "Status: %s, %d/%d rows processed", batch.Status, batch.ProcessedCount, batch.RowCount)
			if batch.ErrorCount > 0 {
				_, _ = warnColor.Fprintf(out, ", %d errors", batch.ErrorCount)
			}
			_, _ = fmt.Fprintln(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newKnowledgeBatchesCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "batches",
		Short: "List a project's uploaded knowledge batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			batches, err := c.ListKnowledgeBatches(cmd.Context(), project)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(batches) == 0 {
				_, _ = fmt.Fprintln(out, "No knowledge batches, upload one with: testgen knowledge upload")
				return nil
			}
			for _, b := range batches {
				_, _ = keyColor.Fprintf(out, "%s", b.ID)
				_, _ = fmt.Fprintf(out, "  %s", b.FileName)
				switch b.Status {
				case models.BatchFailed:
					_, _ = errorColor.Fprintf(out, "  %s", b.Status)
				case models.BatchCompleted:
					_, _ = successColor.Fprintf(out, "  %s", b.Status)
				default:
					_, _ = fmt.Fprintf(out, "  %s", b.Status)
				}
				_, _ = fmt.Fprintf(out, "  %d/%d rows", b.ProcessedCount, b.RowCount)
				if b.ErrorCount > 0 {
					_, _ = fmt.Fprintf(out, " (%d errors)", b.ErrorCount)
				}
				_, _ = fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newKnowledgeEntriesCmd() *cobra.Command {
	var project, jiraKey string
	var limit int

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List extracted knowledge entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			entries, err := c.ListKnowledgeEntries(cmd.Context(), project, api.KnowledgeEntryFilter{
				JiraKey: jiraKey,
				Limit:   limit,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "No knowledge entries")
				return nil
			}
			for _, e := range entries {
				_, _ = keyColor.Fprintf(out, "%s", e.ID)
				if e.JiraKey != "" {
					_, _ = fmt.Fprintf(out, "  %s", e.JiraKey)
				}
				_, _ = fmt.Fprintf(out, "  %s (%d steps)\n", e.Title, len(e.Steps))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&jiraKey, "jira-key", "", "Only entries linked to this Jira key")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries to return (server default when 0)")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
