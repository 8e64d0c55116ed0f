package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/api"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectShowCmd())
	cmd.AddCommand(newProjectCreateCmd())
	cmd.AddCommand(newProjectUpdateCmd())
	cmd.AddCommand(newProjectDeleteCmd())
	return cmd
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			projects, err := c.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				_, _ = fmt.Fprintln(out, "No projects")
				return nil
			}
			for _, p := range projects {
				_, _ = keyColor.Fprintf(out, "%s", p.ID)
				_, _ = fmt.Fprintf(out, "  %s", p.Name)
				if p.JiraProjectKey != "" {
					_, _ = fmt.Fprintf(out, "  [%s]", p.JiraProjectKey)
				}
				_, _ = fmt.Fprintf(out, "  (%d members)\n", p.MemberCount)
			}
			return nil
		},
	}
}

func newProjectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			p, err := c.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n", p.Name)
			if p.Description != "" {
				_, _ = fmt.Fprintf(out, "%s\n", p.Description)
			}
			if p.JiraProjectKey != "" {
				_, _ = fmt.Fprintf(out, "Jira key: %s\n", p.JiraProjectKey)
			}
			_, _ = fmt.Fprintf(out, "Members:  %d\n", p.MemberCount)
			return nil
		},
	}
}

func newProjectCreateCmd() *cobra.Command {
	var name, description, jiraKey string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			p, err := c.CreateProject(cmd.Context(), api.ProjectRequest{
				Name:           name,
				Description:    description,
				JiraProjectKey: jiraKey,
			})
			if err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&jiraKey, "jira-key", "", "Jira project key to link")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectUpdateCmd() *cobra.Command {
	var name, description, jiraKey string

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errors.New("--name is required")
			}
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			p, err := c.UpdateProject(cmd.Context(), args[0], api.ProjectRequest{
				Name:           name,
				Description:    description,
				JiraProjectKey: jiraKey,
			})
			if err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Updated project %s\n", p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&jiraKey, "jira-key", "", "Jira project key to link")
	return cmd
}

func newProjectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			if err := c.DeleteProject(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
			return nil
		},
	}
}
