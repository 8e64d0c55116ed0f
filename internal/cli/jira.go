package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/jira"
)

func newJiraCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jira",
		Short: "Manage the Jira integration",
	}
	cmd.AddCommand(newJiraStatusCmd())
	cmd.AddCommand(newJiraConnectCmd())
	cmd.AddCommand(newJiraSyncCmd())
	cmd.AddCommand(newJiraImportCmd())
	return cmd
}

func newJiraStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the Jira connection state",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			st, err := c.JiraStatus(cmd.Context())
			if err != nil {
				return err
			}
			state := jira.FromStatus(st)
			if !state.Connected {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Jira not connected, run: testgen jira connect")
				return nil
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Connected to %s\n", state.SiteName)
			return nil
		},
	}
}

func newJiraConnectCmd() *cobra.Command {
	var wait bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Start the Jira OAuth flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			u, err := c.JiraConnectURL(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Open this URL in a browser to connect Jira:")
			_, _ = fmt.Fprintln(out, "  "+u)
			if !wait {
				_, _ = fmt.Fprintln(out, "Then check with: testgen jira status")
				return nil
			}
			_, _ = fmt.Fprintln(out, "Waiting for the connection to complete...")
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			state, err := jira.WaitConnected(ctx, c, 2*time.Second, 0)
			if err != nil {
				return err
			}
			_, _ = successColor.Fprintf(out, "Connected to %s\n", state.SiteName)
			return nil
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until the OAuth flow completes")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Give up waiting after this long (with --wait)")
	return cmd
}

func newJiraSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <project-id>",
		Short: "Re-sync a project's imported issues from Jira",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			if err := c.SyncJira(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Synced project %s\n", args[0])
			return nil
		},
	}
}

func newJiraImportCmd() *cobra.Command {
	var project, key string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import one issue (and its children, for epics) by Jira key",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			res, err := c.ImportByKey(cmd.Context(), project, key)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = successColor.Fprintf(out, "Imported %d issues\n", res.ImportedCount)
			for _, f := range res.Children {
				_, _ = fmt.Fprintf(out, "  %s  [%s] %s\n", f.JiraKey, f.JiraType, f.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&key, "key", "", "Jira issue key, e.g. PROJ-123")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
